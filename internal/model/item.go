// Package model defines the records of a ranked rarity dataset.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ID identifies an item within its collection.
//
// Datasets carry ids either as strings ("696") or as bare numbers (696); both
// decode to the same decimal string so lookups compare strings only.
type ID string

// String returns the id as stored.
func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts a JSON string or number. null is rejected.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("id must be a string or number, got null")
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// UnmarshalYAML accepts any scalar node and keeps its literal text.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("id must be a scalar, got node kind %d at line %d", node.Kind, node.Line)
	}
	*id = ID(node.Value)
	return nil
}

// Item is one ranked record of the dataset. Items are never mutated after load.
type Item struct {
	// ID is unique within the dataset.
	ID ID `json:"id" yaml:"id"`

	// Rank is the item's rarity position, 1 = rarest.
	Rank int `json:"rank" yaml:"rank"`

	// TotalScore is the sum of all trait rarity scores.
	TotalScore float64 `json:"total_score" yaml:"total_score"`

	// TraitScores maps trait name to its detail record.
	TraitScores map[string]TraitScore `json:"trait_scores" yaml:"trait_scores"`
}

// TraitScore describes how common one trait value is across the collection.
type TraitScore struct {
	Value            string  `json:"value" yaml:"value"`
	Count            int     `json:"count" yaml:"count"`
	RarityPercentage float64 `json:"rarity_percentage" yaml:"rarity_percentage"`
	RarityScore      float64 `json:"rarity_score" yaml:"rarity_score"`
}

// NamedTrait pairs a trait name with its score record.
type NamedTrait struct {
	Name string `json:"name"`
	TraitScore
}

// Traits returns the item's traits ordered by name.
func (it Item) Traits() []NamedTrait {
	traits := make([]NamedTrait, 0, len(it.TraitScores))
	for name, ts := range it.TraitScores {
		traits = append(traits, NamedTrait{Name: name, TraitScore: ts})
	}
	sort.Slice(traits, func(i, j int) bool {
		return traits[i].Name < traits[j].Name
	})
	return traits
}

// TraitScoreSum adds up the rarity scores of every trait.
func (it Item) TraitScoreSum() float64 {
	var sum float64
	for _, trait := range it.Traits() {
		sum += trait.RarityScore
	}
	return sum
}
