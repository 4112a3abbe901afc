package repositories

import (
	"context"
	"slices"
	"time"

	"github.com/Dosada05/tournament-finder/models"
)

// fixtureTournamentRepository serves the static seed list, optionally after
// a delay that stands in for a network round trip.
type fixtureTournamentRepository struct {
	tournaments []models.Tournament
	latency     time.Duration
}

func NewFixtureTournamentRepository(latency time.Duration) TournamentRepository {
	return &fixtureTournamentRepository{tournaments: FixtureTournaments(), latency: latency}
}

func (r *fixtureTournamentRepository) wait(ctx context.Context) error {
	if r.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(r.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *fixtureTournamentRepository) List(ctx context.Context) ([]models.Tournament, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(r.tournaments), nil
}

func (r *fixtureTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(r.tournaments, func(t models.Tournament) bool { return t.ID == id })
	if idx < 0 {
		return nil, ErrTournamentNotFound
	}
	t := r.tournaments[idx]
	return &t, nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// FixtureTournaments returns a fresh copy of the six seed tournaments.
func FixtureTournaments() []models.Tournament {
	return []models.Tournament{
		{
			ID:                   1,
			Title:                "Spring Championship 2024",
			Description:          "Five-stack Valorant bracket with a pro-level field.",
			Organizer:            "Esports Arena",
			GameType:             "Valorant",
			Format:               "Single Elimination",
			SkillLevel:           "Professional",
			Location:             "Online",
			PrizePool:            50000,
			EntryFee:             50,
			CurrentParticipants:  24,
			MaxParticipants:      32,
			StartDate:            day(2024, time.April, 15),
			RegistrationDeadline: day(2024, time.April, 10),
			Status:               models.StatusOpen,
			RegistrationType:     models.RegistrationTeam,
			MaxTeamSize:          5,
		},
		{
			ID:                   2,
			Title:                "Rookie League Tournament",
			Description:          "Round robin league for teams new to competitive play.",
			Organizer:            "Rookie League",
			GameType:             "League of Legends",
			Format:               "Round Robin",
			SkillLevel:           "Beginner",
			Location:             "Online",
			PrizePool:            10000,
			EntryFee:             0,
			CurrentParticipants:  12,
			MaxParticipants:      16,
			StartDate:            day(2024, time.April, 20),
			RegistrationDeadline: day(2024, time.April, 18),
			Status:               models.StatusOpen,
			RegistrationType:     models.RegistrationTeam,
			MaxTeamSize:          5,
		},
		{
			ID:                   3,
			Title:                "Counter-Strike Masters",
			Description:          "LAN double elimination event.",
			Organizer:            "Pro Gaming League",
			GameType:             "Counter-Strike 2",
			Format:               "Double Elimination",
			SkillLevel:           "Advanced",
			Location:             "Los Angeles, CA",
			PrizePool:            75000,
			EntryFee:             100,
			CurrentParticipants:  16,
			MaxParticipants:      16,
			StartDate:            day(2024, time.May, 1),
			RegistrationDeadline: day(2024, time.April, 25),
			Status:               models.StatusFull,
			RegistrationType:     models.RegistrationTeam,
			MaxTeamSize:          5,
		},
		{
			ID:                   4,
			Title:                "Solo Showdown",
			Description:          "Free-for-all battle royale for solo players.",
			Organizer:            "Battle Royale Hub",
			GameType:             "Fortnite",
			Format:               "Battle Royale",
			SkillLevel:           "Intermediate",
			Location:             "Online",
			PrizePool:            5000,
			EntryFee:             0,
			CurrentParticipants:  87,
			MaxParticipants:      100,
			StartDate:            day(2024, time.April, 18),
			RegistrationDeadline: day(2024, time.April, 17),
			Status:               models.StatusOpen,
			RegistrationType:     models.RegistrationIndividual,
			MaxTeamSize:          1,
		},
		{
			ID:                   5,
			Title:                "Apex Legends Championship",
			Description:          "Trios championship running this week.",
			Organizer:            "Apex Circuit",
			GameType:             "Apex Legends",
			Format:               "Battle Royale",
			SkillLevel:           "Professional",
			Location:             "New York, NY",
			PrizePool:            100000,
			EntryFee:             150,
			CurrentParticipants:  60,
			MaxParticipants:      60,
			StartDate:            day(2024, time.March, 20),
			RegistrationDeadline: day(2024, time.March, 15),
			Status:               models.StatusOngoing,
			RegistrationType:     models.RegistrationTeam,
			MaxTeamSize:          3,
		},
		{
			ID:                   6,
			Title:                "Overwatch Open",
			Description:          "Swiss stage open to intermediate teams.",
			Organizer:            "Overwatch Community",
			GameType:             "Overwatch 2",
			Format:               "Swiss",
			SkillLevel:           "Intermediate",
			Location:             "Online",
			PrizePool:            25000,
			EntryFee:             25,
			CurrentParticipants:  14,
			MaxParticipants:      20,
			StartDate:            day(2024, time.May, 10),
			RegistrationDeadline: day(2024, time.May, 5),
			Status:               models.StatusClosed,
			RegistrationType:     models.RegistrationTeam,
			MaxTeamSize:          5,
		},
	}
}
