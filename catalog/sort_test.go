package catalog

import (
	"testing"
	"time"

	"github.com/Dosada05/tournament-finder/models"
	"github.com/Dosada05/tournament-finder/repositories"
	"github.com/stretchr/testify/assert"
)

func TestOrder(t *testing.T) {
	cases := []struct {
		name string
		key  models.SortKey
		want []string
	}{
		{
			name: "prize descending",
			key:  models.SortPrizeDesc,
			want: []string{
				"Apex Legends Championship", "Counter-Strike Masters", "Spring Championship 2024",
				"Overwatch Open", "Rookie League Tournament", "Solo Showdown",
			},
		},
		{
			name: "prize ascending",
			key:  models.SortPrizeAsc,
			want: []string{
				"Solo Showdown", "Rookie League Tournament", "Overwatch Open",
				"Spring Championship 2024", "Counter-Strike Masters", "Apex Legends Championship",
			},
		},
		{
			name: "date ascending",
			key:  models.SortDateAsc,
			want: []string{
				"Apex Legends Championship", "Spring Championship 2024", "Solo Showdown",
				"Rookie League Tournament", "Counter-Strike Masters", "Overwatch Open",
			},
		},
		{
			name: "date descending",
			key:  models.SortDateDesc,
			want: []string{
				"Overwatch Open", "Counter-Strike Masters", "Rookie League Tournament",
				"Solo Showdown", "Spring Championship 2024", "Apex Legends Championship",
			},
		},
		{
			name: "participants descending",
			key:  models.SortParticipantsDesc,
			want: []string{
				"Solo Showdown", "Apex Legends Championship", "Spring Championship 2024",
				"Counter-Strike Masters", "Overwatch Open", "Rookie League Tournament",
			},
		},
		{
			name: "participants ascending",
			key:  models.SortParticipantsAsc,
			want: []string{
				"Rookie League Tournament", "Overwatch Open", "Counter-Strike Masters",
				"Spring Championship 2024", "Apex Legends Championship", "Solo Showdown",
			},
		},
		{
			name: "deadline ascending",
			key:  models.SortDeadlineAsc,
			want: []string{
				"Apex Legends Championship", "Spring Championship 2024", "Solo Showdown",
				"Rookie League Tournament", "Counter-Strike Masters", "Overwatch Open",
			},
		},
		{
			name: "name ascending",
			key:  models.SortNameAsc,
			want: []string{
				"Apex Legends Championship", "Counter-Strike Masters", "Overwatch Open",
				"Rookie League Tournament", "Solo Showdown", "Spring Championship 2024",
			},
		},
		{
			name: "name descending",
			key:  models.SortNameDesc,
			want: []string{
				"Spring Championship 2024", "Solo Showdown", "Rookie League Tournament",
				"Overwatch Open", "Counter-Strike Masters", "Apex Legends Championship",
			},
		},
		{
			name: "unknown key keeps order",
			key:  "popularity",
			want: []string{
				"Spring Championship 2024", "Rookie League Tournament", "Counter-Strike Masters",
				"Solo Showdown", "Apex Legends Championship", "Overwatch Open",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fixture := repositories.FixtureTournaments()
			got := Order(fixture, tc.key)
			assert.Equal(t, tc.want, titles(got))
			assert.Len(t, got, len(fixture))
			assert.Equal(t, repositories.FixtureTournaments(), fixture, "input must not be reordered")
		})
	}
}

func TestOrder_IsStable(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	input := []models.Tournament{
		{ID: 1, Title: "b", PrizePool: 100, StartDate: start},
		{ID: 2, Title: "a", PrizePool: 200, StartDate: start},
		{ID: 3, Title: "c", PrizePool: 100, StartDate: start},
		{ID: 4, Title: "d", PrizePool: 200, StartDate: start},
	}

	byPrize := Order(input, models.SortPrizeDesc)
	assert.Equal(t, []int{2, 4, 1, 3}, ids(byPrize))

	byDate := Order(input, models.SortDateDesc)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(byDate))
}

func TestOrder_NameIsLocaleAware(t *testing.T) {
	input := []models.Tournament{
		{ID: 1, Title: "zeta Cup"},
		{ID: 2, Title: "Éclair Open"},
		{ID: 3, Title: "alpha League"},
		{ID: 4, Title: "Beta Series"},
	}

	got := Order(input, models.SortNameAsc)
	assert.Equal(t, []int{3, 4, 2, 1}, ids(got))
}

func TestOrder_EmptyInput(t *testing.T) {
	assert.Empty(t, Order(nil, models.SortNameAsc))
	assert.NotNil(t, Order(nil, models.SortNameAsc))
}

func ids(ts []models.Tournament) []int {
	out := make([]int, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}
