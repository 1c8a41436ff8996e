// Package dataset holds the read-only collection of ranked items.
//
// A Dataset is built once at process start and never mutated afterwards, so
// it can be shared freely without locking.
package dataset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/efrogs/rarity/internal/model"
)

var (
	// ErrDuplicateID indicates two records share the same id.
	ErrDuplicateID = errors.New("duplicate item id")
	// ErrUnsupportedFormat indicates a file extension no codec handles.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// Dataset is an immutable, id-indexed collection of items.
type Dataset struct {
	items  []model.Item
	byID   map[model.ID]int
	source string
}

// New indexes items by id. The slice is copied; records keep their input order.
func New(items []model.Item, source string) (*Dataset, error) {
	d := &Dataset{
		items:  make([]model.Item, len(items)),
		byID:   make(map[model.ID]int, len(items)),
		source: source,
	}
	copy(d.items, items)

	for i, item := range d.items {
		if prev, ok := d.byID[item.ID]; ok {
			return nil, fmt.Errorf("%w: %q at records %d and %d", ErrDuplicateID, item.ID, prev, i)
		}
		d.byID[item.ID] = i
	}
	return d, nil
}

// Find returns the item whose id equals id exactly. No trimming or case
// folding is applied.
func (d *Dataset) Find(id string) (model.Item, bool) {
	i, ok := d.byID[model.ID(id)]
	if !ok {
		return model.Item{}, false
	}
	return d.items[i], true
}

// Len returns the number of items.
func (d *Dataset) Len() int {
	return len(d.items)
}

// Source describes where the dataset was loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// Items returns a copy of all items in load order.
func (d *Dataset) Items() []model.Item {
	out := make([]model.Item, len(d.items))
	copy(out, d.items)
	return out
}

// ByRank returns all items ordered rarest first.
func (d *Dataset) ByRank() []model.Item {
	out := d.Items()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rank < out[j].Rank
	})
	return out
}

// Top returns the n rarest items. n <= 0 or larger than the dataset returns all.
func (d *Dataset) Top(n int) []model.Item {
	ranked := d.ByRank()
	if n <= 0 || n > len(ranked) {
		return ranked
	}
	return ranked[:n]
}
