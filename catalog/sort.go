package catalog

import (
	"cmp"
	"slices"

	"github.com/Dosada05/tournament-finder/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order returns a stably sorted copy of tournaments. An unknown key keeps
// the original order.
func Order(tournaments []models.Tournament, key models.SortKey) []models.Tournament {
	result := slices.Clone(tournaments)
	if result == nil {
		result = []models.Tournament{}
	}
	compare := comparator(key)
	if compare == nil {
		return result
	}
	slices.SortStableFunc(result, compare)
	return result
}

// IsKnownSortKey reports whether key selects a comparator.
func IsKnownSortKey(key models.SortKey) bool {
	switch key {
	case models.SortDateAsc, models.SortDateDesc,
		models.SortPrizeAsc, models.SortPrizeDesc,
		models.SortParticipantsAsc, models.SortParticipantsDesc,
		models.SortDeadlineAsc,
		models.SortNameAsc, models.SortNameDesc:
		return true
	}
	return false
}

func comparator(key models.SortKey) func(a, b models.Tournament) int {
	switch key {
	case models.SortDateAsc:
		return func(a, b models.Tournament) int { return a.StartDate.Compare(b.StartDate) }
	case models.SortDateDesc:
		return func(a, b models.Tournament) int { return b.StartDate.Compare(a.StartDate) }
	case models.SortPrizeAsc:
		return func(a, b models.Tournament) int { return cmp.Compare(a.PrizePool, b.PrizePool) }
	case models.SortPrizeDesc:
		return func(a, b models.Tournament) int { return cmp.Compare(b.PrizePool, a.PrizePool) }
	case models.SortParticipantsAsc:
		return func(a, b models.Tournament) int { return cmp.Compare(a.CurrentParticipants, b.CurrentParticipants) }
	case models.SortParticipantsDesc:
		return func(a, b models.Tournament) int { return cmp.Compare(b.CurrentParticipants, a.CurrentParticipants) }
	case models.SortDeadlineAsc:
		return func(a, b models.Tournament) int { return a.RegistrationDeadline.Compare(b.RegistrationDeadline) }
	case models.SortNameAsc, models.SortNameDesc:
		// A Collator keeps internal buffers, so each Order call gets its own.
		col := collate.New(language.English)
		if key == models.SortNameAsc {
			return func(a, b models.Tournament) int { return col.CompareString(a.Title, b.Title) }
		}
		return func(a, b models.Tournament) int { return col.CompareString(b.Title, a.Title) }
	}
	return nil
}
