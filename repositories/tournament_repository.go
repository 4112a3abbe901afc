package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-finder/models"
	"github.com/lib/pq"
)

var (
	ErrTournamentNotFound     = errors.New("tournament not found")
	ErrTournamentTableMissing = errors.New("tournaments table does not exist")
)

// TournamentRepository is the tournament listing collaborator. List always
// returns every tournament ordered by id; narrowing happens on the loaded store.
type TournamentRepository interface {
	List(ctx context.Context) ([]models.Tournament, error)
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

const tournamentColumns = `
	id, title, description, organizer, image_url, game_type, format, skill_level, location,
	prize_pool, entry_fee, current_participants, max_participants,
	start_date, registration_deadline, status, registration_type, max_team_size`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTournament(row rowScanner) (models.Tournament, error) {
	var t models.Tournament
	var description, organizer sql.NullString
	err := row.Scan(
		&t.ID, &t.Title, &description, &organizer, &t.ImageURL, &t.GameType, &t.Format, &t.SkillLevel, &t.Location,
		&t.PrizePool, &t.EntryFee, &t.CurrentParticipants, &t.MaxParticipants,
		&t.StartDate, &t.RegistrationDeadline, &t.Status, &t.RegistrationType, &t.MaxTeamSize,
	)
	t.Description = description.String
	t.Organizer = organizer.String
	return t, err
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `SELECT` + tournamentColumns + ` FROM tournaments WHERE id = $1`

	t, err := scanTournament(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, r.handleTournamentError(err)
	}
	return &t, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context) ([]models.Tournament, error) {
	// Stable default order; clients re-sort with the sort engine.
	query := `SELECT` + tournamentColumns + ` FROM tournaments ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, r.handleTournamentError(err)
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		t, scanErr := scanTournament(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tournaments = append(tournaments, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tournaments, nil
}

func (r *postgresTournamentRepository) handleTournamentError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "undefined_table":
			return fmt.Errorf("%w: %s", ErrTournamentTableMissing, pqErr.Message)
		}
	}
	return err
}
