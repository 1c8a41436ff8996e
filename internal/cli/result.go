package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/efrogs/rarity/internal/lookup"
	"github.com/efrogs/rarity/internal/model"
	"github.com/efrogs/rarity/internal/rarity"
	"github.com/efrogs/rarity/internal/ui"
)

// traitResult is one trait of a lookup result in JSON output.
type traitResult struct {
	Name             string           `json:"name"`
	Value            string           `json:"value"`
	Count            int              `json:"count"`
	RarityPercentage float64          `json:"rarity_percentage"`
	RarityScore      float64          `json:"rarity_score"`
	Intensity        rarity.Intensity `json:"intensity"`
	BarWidth         float64          `json:"bar_width"`
}

// lookupResult is a found item in JSON output.
type lookupResult struct {
	Query      string        `json:"query"`
	ID         model.ID      `json:"id"`
	Rank       int           `json:"rank"`
	Tier       rarity.Tier   `json:"tier"`
	TotalScore float64       `json:"total_score"`
	Traits     []traitResult `json:"traits"`
}

func newLookupResult(query string, item model.Item) lookupResult {
	traits := item.Traits()
	out := lookupResult{
		Query:      query,
		ID:         item.ID,
		Rank:       item.Rank,
		Tier:       rarity.Classify(item.Rank),
		TotalScore: item.TotalScore,
		Traits:     make([]traitResult, 0, len(traits)),
	}
	for _, t := range traits {
		out.Traits = append(out.Traits, traitResult{
			Name:             t.Name,
			Value:            t.Value,
			Count:            t.Count,
			RarityPercentage: t.RarityPercentage,
			RarityScore:      t.RarityScore,
			Intensity:        rarity.IntensityFor(t.RarityScore),
			BarWidth:         rarity.BarWidth(t.RarityScore),
		})
	}
	return out
}

// lookupErrorCode maps a failed search to its error code.
func lookupErrorCode(err error) string {
	var notFound *lookup.NotFoundError
	switch {
	case errors.Is(err, lookup.ErrEmptyQuery):
		return ErrEmptyQuery
	case errors.As(err, &notFound):
		return ErrNotFound
	default:
		return ErrInvalidInput
	}
}

func lookupSuggestion(code string) string {
	switch code {
	case ErrEmptyQuery:
		return "Pass an item id, e.g. 'efrog check 696'"
	case ErrNotFound:
		return "Run 'efrog top' to list ids in the dataset"
	}
	return ""
}

// writeLookup renders the controller's current state to w: the result card
// when found, the error message when invalid, nothing when idle.
func writeLookup(w io.Writer, ctrl *lookup.Controller, width int) {
	cfg := getConfig()

	if isJSONOutput() {
		if item, ok := ctrl.Result(); ok {
			writeJSON(w, Response{OK: true, Data: newLookupResult(ctrl.Query(), item), Meta: datasetMeta(1)})
			return
		}
		if err := ctrl.Err(); err != nil {
			code := lookupErrorCode(err)
			writeJSON(w, Response{Error: &ErrorInfo{Code: code, Message: err.Error(), Suggestion: lookupSuggestion(code)}})
		}
		return
	}

	switch ctrl.State() {
	case lookup.Found:
		item, _ := ctrl.Result()
		fmt.Fprintln(w, ui.RenderCard(item, ui.CardOptions{Label: cfg.Label(), Width: width}))
	case lookup.Invalid:
		fmt.Fprintln(w, ui.Error(ctrl.ErrorMessage()))
	}
}
