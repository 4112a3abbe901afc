package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/tournament-finder/models"
	_ "github.com/lib/pq" // Import postgres driver
)

func Connect(dsn string, timeout time.Duration, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database handle: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database handle after ping error", slog.Any("error", closeErr))
		}
		return nil, fmt.Errorf("failed to ping database within %v: %w", timeout, err)
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS tournaments (
	id                    SERIAL PRIMARY KEY,
	title                 TEXT NOT NULL,
	description           TEXT,
	organizer             TEXT,
	image_url             TEXT,
	game_type             TEXT NOT NULL,
	format                TEXT NOT NULL,
	skill_level           TEXT NOT NULL,
	location              TEXT NOT NULL,
	prize_pool            NUMERIC(12, 2) NOT NULL DEFAULT 0,
	entry_fee             NUMERIC(10, 2) NOT NULL DEFAULT 0,
	current_participants  INTEGER NOT NULL DEFAULT 0,
	max_participants      INTEGER NOT NULL,
	start_date            TIMESTAMPTZ NOT NULL,
	registration_deadline TIMESTAMPTZ NOT NULL,
	status                TEXT NOT NULL DEFAULT 'open',
	registration_type     TEXT NOT NULL DEFAULT 'team',
	max_team_size         INTEGER NOT NULL DEFAULT 5,
	CHECK (registration_deadline <= start_date),
	CHECK (current_participants <= max_participants)
)`

// EnsureSchema creates the tournaments table when it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create tournaments table: %w", err)
	}
	return nil
}

// SeedTournaments inserts tournaments into an empty table and reports how
// many rows were written. A table that already has rows is left alone.
func SeedTournaments(ctx context.Context, db *sql.DB, tournaments []models.Tournament) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tournaments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tournaments: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	const insert = `
		INSERT INTO tournaments (
			id, title, description, organizer, image_url, game_type, format, skill_level, location,
			prize_pool, entry_fee, current_participants, max_participants,
			start_date, registration_deadline, status, registration_type, max_team_size
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	for _, t := range tournaments {
		_, err := tx.ExecContext(ctx, insert,
			t.ID, t.Title, t.Description, t.Organizer, t.ImageURL, t.GameType, t.Format, t.SkillLevel, t.Location,
			t.PrizePool, t.EntryFee, t.CurrentParticipants, t.MaxParticipants,
			t.StartDate, t.RegistrationDeadline, t.Status, t.RegistrationType, t.MaxTeamSize,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to seed tournament %d: %w", t.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `SELECT setval(pg_get_serial_sequence('tournaments', 'id'), (SELECT MAX(id) FROM tournaments))`); err != nil {
		return 0, fmt.Errorf("failed to advance tournament id sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return len(tournaments), nil
}
