package dataset

import (
	"fmt"
	"math"

	"github.com/efrogs/rarity/internal/model"
)

// Issue codes reported by Verify.
const (
	IssueInvalidRank       = "INVALID_RANK"
	IssueDuplicateRank     = "DUPLICATE_RANK"
	IssueNegativeScore     = "NEGATIVE_SCORE"
	IssueScoreMismatch     = "SCORE_MISMATCH"
	IssueInvalidCount      = "INVALID_COUNT"
	IssueInvalidPercentage = "INVALID_PERCENTAGE"
	IssueScoreNotInverse   = "SCORE_NOT_INVERSE"
)

const (
	// totalTolerance bounds |Σ trait scores - total| relative to the total.
	totalTolerance = 1e-6
	// inverseTolerance bounds the relative error of score against 100/percentage;
	// percentages are stored rounded so this is looser than totalTolerance.
	inverseTolerance = 1e-3
)

// Issue is one integrity problem found in a record.
type Issue struct {
	ID      model.ID `json:"id"`
	Trait   string   `json:"trait,omitempty"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
}

// Verify checks the dataset's precomputed values for internal consistency.
// The lookup path never calls it; it backs the verify command and tests.
func Verify(d *Dataset) []Issue {
	var issues []Issue
	ranks := make(map[int]model.ID)

	for _, item := range d.items {
		if item.Rank < 1 {
			issues = append(issues, Issue{
				ID:      item.ID,
				Code:    IssueInvalidRank,
				Message: fmt.Sprintf("rank %d is not positive", item.Rank),
			})
		} else if other, ok := ranks[item.Rank]; ok {
			issues = append(issues, Issue{
				ID:      item.ID,
				Code:    IssueDuplicateRank,
				Message: fmt.Sprintf("rank %d already held by #%s", item.Rank, other),
			})
		} else {
			ranks[item.Rank] = item.ID
		}

		if item.TotalScore < 0 {
			issues = append(issues, Issue{
				ID:      item.ID,
				Code:    IssueNegativeScore,
				Message: fmt.Sprintf("total score %.4f is negative", item.TotalScore),
			})
		}

		if sum := item.TraitScoreSum(); !withinTolerance(sum, item.TotalScore, totalTolerance) {
			issues = append(issues, Issue{
				ID:      item.ID,
				Code:    IssueScoreMismatch,
				Message: fmt.Sprintf("trait scores sum to %.6f but total score is %.6f", sum, item.TotalScore),
			})
		}

		for _, trait := range item.Traits() {
			issues = append(issues, verifyTrait(item.ID, trait)...)
		}
	}

	return issues
}

func verifyTrait(id model.ID, trait model.NamedTrait) []Issue {
	var issues []Issue
	if trait.Count <= 0 {
		issues = append(issues, Issue{
			ID:      id,
			Trait:   trait.Name,
			Code:    IssueInvalidCount,
			Message: fmt.Sprintf("count %d is not positive", trait.Count),
		})
	}

	pct := trait.RarityPercentage
	if !(pct > 0 && pct <= 100) {
		issues = append(issues, Issue{
			ID:      id,
			Trait:   trait.Name,
			Code:    IssueInvalidPercentage,
			Message: fmt.Sprintf("rarity percentage %.4f is outside (0, 100]", pct),
		})
		return issues
	}

	if want := 100 / pct; !withinTolerance(trait.RarityScore, want, inverseTolerance) {
		issues = append(issues, Issue{
			ID:      id,
			Trait:   trait.Name,
			Code:    IssueScoreNotInverse,
			Message: fmt.Sprintf("rarity score %.4f, want %.4f for %.4f%%", trait.RarityScore, want, pct),
		})
	}
	return issues
}

func withinTolerance(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol*math.Max(1, math.Abs(want))
}
