package catalog

import (
	"testing"

	"github.com/Dosada05/tournament-finder/models"
	"github.com/Dosada05/tournament-finder/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReducers_DoNotMutatePreviousState(t *testing.T) {
	s := NewState(repositories.FixtureTournaments())
	s = WithFilters(s, models.FilterCriteria{models.FilterEntryFee: models.EntryFeeFree})

	next := WithoutFilter(s, models.FilterEntryFee)
	assert.Contains(t, s.Filters, models.FilterEntryFee)
	assert.NotContains(t, next.Filters, models.FilterEntryFee)

	sorted := WithSort(next, models.SortNameAsc)
	assert.Equal(t, models.SortKey(""), next.SortKey)
	assert.Equal(t, models.SortNameAsc, sorted.SortKey)
}

func TestWithFilters_CopiesCriteria(t *testing.T) {
	criteria := models.FilterCriteria{models.FilterGameType: models.TagSet{"Valorant"}}
	s := WithFilters(NewState(nil), criteria)

	criteria[models.FilterEntryFee] = models.EntryFeePaid
	assert.NotContains(t, s.Filters, models.FilterEntryFee)
}

func TestController_RecomputesOnEveryChange(t *testing.T) {
	c := NewController(repositories.FixtureTournaments())
	assert.Len(t, c.Visible(), 6)

	visible := c.SetFilters(models.FilterCriteria{
		models.FilterLocation: models.TagSet{"Online"},
		models.FilterEntryFee: models.EntryFeeFree,
	})
	assert.Equal(t, []string{"Rookie League Tournament", "Solo Showdown"}, titles(visible))

	visible = c.SetSort(models.SortPrizeAsc)
	assert.Equal(t, []string{"Solo Showdown", "Rookie League Tournament"}, titles(visible))

	visible = c.RemoveFilter(models.FilterEntryFee)
	assert.Equal(t, []string{
		"Solo Showdown", "Rookie League Tournament", "Overwatch Open", "Spring Championship 2024",
	}, titles(visible))
	assert.Equal(t, models.FilterCriteria{models.FilterLocation: models.TagSet{"Online"}}, c.State().Filters)

	visible = c.ClearAllFilters()
	assert.Len(t, visible, 6)
	assert.Empty(t, c.State().Filters)
	assert.Equal(t, models.SortPrizeAsc, c.State().SortKey)
}

func TestController_SetTournamentsKeepsFiltersAndSort(t *testing.T) {
	c := NewController(nil)
	c.SetFilters(models.FilterCriteria{models.FilterGameType: models.TagSet{"Valorant"}})
	require.Empty(t, c.Visible())

	visible := c.SetTournaments(repositories.FixtureTournaments())
	assert.Equal(t, []string{"Spring Championship 2024"}, titles(visible))
}

func TestController_VisibleIsPureFunctionOfState(t *testing.T) {
	c := NewController(repositories.FixtureTournaments())
	c.SetFilters(models.FilterCriteria{models.FilterPrizePool: models.AmountRange{Min: ptr(20.0)}})
	c.SetSort(models.SortNameDesc)

	assert.Equal(t, Visible(c.State()), c.Visible())

	// Callers get copies.
	got := c.Visible()
	got[0].Title = "changed"
	assert.NotEqual(t, "changed", c.Visible()[0].Title)
}
