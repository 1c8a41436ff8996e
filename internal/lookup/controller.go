// Package lookup holds the search state of an interactive session.
package lookup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/efrogs/rarity/internal/model"
)

// State is the observable state of a Controller.
type State int

const (
	// Idle means no search has been attempted yet.
	Idle State = iota
	// Found means the last search matched a record.
	Found
	// Invalid means the last search had empty input or no match.
	Invalid
)

func (s State) String() string {
	switch s {
	case Found:
		return "found"
	case Invalid:
		return "invalid"
	default:
		return "idle"
	}
}

// ErrEmptyQuery is returned when the search input is blank.
var ErrEmptyQuery = errors.New("Please enter an NFT ID")

// NotFoundError reports a query that matched no record. Query is the raw input.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("NFT #%s not found", e.Query)
}

// Finder resolves an id to a record by exact match.
type Finder interface {
	Find(id string) (model.Item, bool)
}

// Controller tracks the current query, result and error message. Result and
// error message are never both present.
type Controller struct {
	finder Finder
	state  State
	query  string
	result model.Item
	err    error
}

// NewController returns an Idle controller searching finder.
func NewController(finder Finder) *Controller {
	return &Controller{finder: finder}
}

// Search looks up raw and moves to Found or Invalid. Blank input is rejected
// before any lookup; otherwise raw is matched untrimmed. The returned error is
// nil, ErrEmptyQuery or a *NotFoundError and is also kept as the message.
func (c *Controller) Search(raw string) error {
	c.query = raw

	if strings.TrimSpace(raw) == "" {
		c.fail(ErrEmptyQuery)
		return c.err
	}

	item, ok := c.finder.Find(raw)
	if !ok {
		c.fail(&NotFoundError{Query: raw})
		return c.err
	}

	c.state = Found
	c.result = item
	c.err = nil
	return nil
}

func (c *Controller) fail(err error) {
	c.state = Invalid
	c.result = model.Item{}
	c.err = err
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Query returns the last raw input.
func (c *Controller) Query() string {
	return c.query
}

// Result returns the matched record, if any.
func (c *Controller) Result() (model.Item, bool) {
	if c.state != Found {
		return model.Item{}, false
	}
	return c.result, true
}

// Err returns the error of the last failed search, or nil.
func (c *Controller) Err() error {
	return c.err
}

// ErrorMessage returns the human-readable failure message, or "".
func (c *Controller) ErrorMessage() string {
	if c.err == nil {
		return ""
	}
	return c.err.Error()
}
