package catalog

import (
	"testing"
	"time"

	"github.com/Dosada05/tournament-finder/models"
	"github.com/Dosada05/tournament-finder/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func titles(ts []models.Tournament) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Title)
	}
	return out
}

func TestApply_EmptyCriteriaReturnsInputUnchanged(t *testing.T) {
	fixture := repositories.FixtureTournaments()

	assert.Equal(t, fixture, Apply(fixture, models.FilterCriteria{}))
	assert.Equal(t, fixture, Apply(fixture, nil))
}

func TestApply(t *testing.T) {
	cases := []struct {
		name     string
		criteria models.FilterCriteria
		want     []string
	}{
		{
			name:     "game type",
			criteria: models.FilterCriteria{models.FilterGameType: models.TagSet{"Valorant"}},
			want:     []string{"Spring Championship 2024"},
		},
		{
			name:     "plain string slice is accepted as a tag set",
			criteria: models.FilterCriteria{models.FilterLocation: []string{"Los Angeles, CA", "New York, NY"}},
			want:     []string{"Counter-Strike Masters", "Apex Legends Championship"},
		},
		{
			name:     "entry fee free",
			criteria: models.FilterCriteria{models.FilterEntryFee: models.EntryFeeFree},
			want:     []string{"Rookie League Tournament", "Solo Showdown"},
		},
		{
			name:     "entry fee paid",
			criteria: models.FilterCriteria{models.FilterEntryFee: models.EntryFeePaid},
			want: []string{
				"Spring Championship 2024", "Counter-Strike Masters",
				"Apex Legends Championship", "Overwatch Open",
			},
		},
		{
			name:     "entry fee as plain string",
			criteria: models.FilterCriteria{models.FilterEntryFee: "free"},
			want:     []string{"Rookie League Tournament", "Solo Showdown"},
		},
		{
			name:     "entry fee plain string paid",
			criteria: models.FilterCriteria{models.FilterEntryFee: "paid"},
			want: []string{
				"Spring Championship 2024", "Counter-Strike Masters",
				"Apex Legends Championship", "Overwatch Open",
			},
		},
		{
			name:     "prize pool in thousands",
			criteria: models.FilterCriteria{models.FilterPrizePool: models.AmountRange{Min: ptr(25.0), Max: ptr(75.0)}},
			want:     []string{"Spring Championship 2024", "Counter-Strike Masters", "Overwatch Open"},
		},
		{
			name:     "prize pool min only",
			criteria: models.FilterCriteria{models.FilterPrizePool: models.AmountRange{Min: ptr(80.0)}},
			want:     []string{"Apex Legends Championship"},
		},
		{
			name: "date range is inclusive",
			criteria: models.FilterCriteria{models.FilterDateRange: models.DateRange{
				Start: ptr(time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)),
				End:   ptr(time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)),
			}},
			want: []string{"Spring Championship 2024", "Rookie League Tournament", "Solo Showdown"},
		},
		{
			name: "criteria combine with AND",
			criteria: models.FilterCriteria{
				models.FilterLocation: models.TagSet{"Online"},
				models.FilterEntryFee: models.EntryFeeFree,
				models.FilterFormat:   models.TagSet{"Battle Royale"},
			},
			want: []string{"Solo Showdown"},
		},
		{
			name: "unknown kinds and malformed values are skipped",
			criteria: models.FilterCriteria{
				"platform":              "PC",
				models.FilterPrizePool:  "lots",
				models.FilterEntryFee:   models.EntryFeeOption("cheap"),
				models.FilterSkillLevel: models.TagSet{},
				models.FilterGameType:   models.TagSet{"Fortnite"},
			},
			want: []string{"Solo Showdown"},
		},
		{
			name:     "no match",
			criteria: models.FilterCriteria{models.FilterGameType: models.TagSet{"Chess"}},
			want:     []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(repositories.FixtureTournaments(), tc.criteria)
			assert.Equal(t, tc.want, titles(got))
		})
	}
}

func TestApply_ResultPartitionsInput(t *testing.T) {
	fixture := repositories.FixtureTournaments()
	criteria := models.FilterCriteria{
		models.FilterSkillLevel: models.TagSet{"Professional", "Intermediate"},
		models.FilterPrizePool:  models.AmountRange{Max: ptr(60.0)},
	}

	got := Apply(fixture, criteria)
	kept := map[int]bool{}
	for _, tr := range got {
		kept[tr.ID] = true
		for kind, value := range criteria {
			assert.True(t, Matches(tr, kind, value), "%s should satisfy %s", tr.Title, kind)
		}
	}
	for _, tr := range fixture {
		if kept[tr.ID] {
			continue
		}
		violates := false
		for kind, value := range criteria {
			if !Matches(tr, kind, value) {
				violates = true
			}
		}
		assert.True(t, violates, "%s was dropped without violating a criterion", tr.Title)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	fixture := repositories.FixtureTournaments()
	before := repositories.FixtureTournaments()

	got := Apply(fixture, models.FilterCriteria{models.FilterEntryFee: models.EntryFeeFree})
	require.NotEmpty(t, got)
	got[0].Title = "changed"

	assert.Equal(t, before, fixture)
}
