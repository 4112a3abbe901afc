package catalog

import (
	"slices"
	"sync"

	"github.com/Dosada05/tournament-finder/models"
)

// State is everything the visible list is derived from.
type State struct {
	Tournaments []models.Tournament   `json:"-"`
	Filters     models.FilterCriteria `json:"filters"`
	SortKey     models.SortKey        `json:"sortKey"`
}

func NewState(tournaments []models.Tournament) State {
	return State{
		Tournaments: slices.Clone(tournaments),
		Filters:     models.FilterCriteria{},
	}
}

// Reducers. Each returns a new State and leaves s untouched.

func WithTournaments(s State, tournaments []models.Tournament) State {
	s.Tournaments = slices.Clone(tournaments)
	return s
}

func WithFilters(s State, criteria models.FilterCriteria) State {
	s.Filters = criteria.Clone()
	return s
}

func WithoutFilter(s State, kind models.FilterKind) State {
	filters := s.Filters.Clone()
	delete(filters, kind)
	s.Filters = filters
	return s
}

func WithoutFilters(s State) State {
	s.Filters = models.FilterCriteria{}
	return s
}

func WithSort(s State, key models.SortKey) State {
	s.SortKey = key
	return s
}

// Visible filters, then sorts.
func Visible(s State) []models.Tournament {
	return Order(Apply(s.Tournaments, s.Filters), s.SortKey)
}

// Controller holds a State and the list derived from it. Every operation
// replaces the whole state and recomputes the list from scratch.
type Controller struct {
	mu      sync.RWMutex
	state   State
	visible []models.Tournament
}

func NewController(tournaments []models.Tournament) *Controller {
	c := &Controller{}
	c.replace(NewState(tournaments))
	return c
}

func (c *Controller) replace(next State) {
	c.state = next
	c.visible = Visible(next)
}

func (c *Controller) update(reduce func(State) State) []models.Tournament {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replace(reduce(c.state))
	return slices.Clone(c.visible)
}

func (c *Controller) SetTournaments(tournaments []models.Tournament) []models.Tournament {
	return c.update(func(s State) State { return WithTournaments(s, tournaments) })
}

func (c *Controller) SetFilters(criteria models.FilterCriteria) []models.Tournament {
	return c.update(func(s State) State { return WithFilters(s, criteria) })
}

func (c *Controller) RemoveFilter(kind models.FilterKind) []models.Tournament {
	return c.update(func(s State) State { return WithoutFilter(s, kind) })
}

func (c *Controller) ClearAllFilters() []models.Tournament {
	return c.update(WithoutFilters)
}

func (c *Controller) SetSort(key models.SortKey) []models.Tournament {
	return c.update(func(s State) State { return WithSort(s, key) })
}

func (c *Controller) Visible() []models.Tournament {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.visible)
}

// State returns a copy of the held state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.state
	s.Tournaments = slices.Clone(s.Tournaments)
	s.Filters = s.Filters.Clone()
	return s
}
