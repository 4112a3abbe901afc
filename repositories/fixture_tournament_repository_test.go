package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/tournament-finder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureTournaments_Consistency(t *testing.T) {
	seen := map[int]bool{}
	for _, tr := range FixtureTournaments() {
		assert.False(t, seen[tr.ID], "duplicate id %d", tr.ID)
		seen[tr.ID] = true
		assert.LessOrEqual(t, tr.CurrentParticipants, tr.MaxParticipants, tr.Title)
		assert.False(t, tr.RegistrationDeadline.After(tr.StartDate), tr.Title)
		assert.GreaterOrEqual(t, tr.EntryFee, 0.0)
		assert.Positive(t, tr.MaxTeamSize)
		if tr.RegistrationType == models.RegistrationIndividual {
			assert.Equal(t, 1, tr.MaxTeamSize)
		}
	}
	assert.Len(t, seen, 6)
}

func TestFixtureRepository_List(t *testing.T) {
	repo := NewFixtureTournamentRepository(0)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 6)

	statuses := map[models.TournamentStatus]int{}
	for i, tr := range all {
		assert.Equal(t, i+1, tr.ID, "listed in id order")
		statuses[tr.Status]++
	}
	assert.Equal(t, map[models.TournamentStatus]int{
		models.StatusOpen:    3,
		models.StatusFull:    1,
		models.StatusOngoing: 1,
		models.StatusClosed:  1,
	}, statuses)

	// Callers own the returned slice.
	all[0].Title = "changed"
	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Spring Championship 2024", again[0].Title)
}

func TestFixtureRepository_GetByID(t *testing.T) {
	repo := NewFixtureTournamentRepository(0)

	tr, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Solo Showdown", tr.Title)

	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestFixtureRepository_LatencyHonoursContext(t *testing.T) {
	repo := NewFixtureTournamentRepository(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
