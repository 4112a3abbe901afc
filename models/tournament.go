package models

import "time"

// TournamentStatus представляет статус турнира в каталоге.
type TournamentStatus string

const (
	StatusOpen    TournamentStatus = "open"
	StatusFull    TournamentStatus = "full"
	StatusClosed  TournamentStatus = "closed"
	StatusOngoing TournamentStatus = "ongoing"
)

type RegistrationType string

const (
	RegistrationIndividual RegistrationType = "individual"
	RegistrationTeam       RegistrationType = "team"
)

// DefaultMaxTeamSize is used by team registration forms when a listing
// leaves MaxTeamSize unset.
const DefaultMaxTeamSize = 5

// Tournament представляет турнир из каталога. A value is never modified
// after it has been fetched; a refresh replaces the whole list.
type Tournament struct {
	ID                   int              `json:"id" db:"id"`
	Title                string           `json:"title" db:"title"`
	Description          string           `json:"description,omitempty" db:"description"`
	Organizer            string           `json:"organizer,omitempty" db:"organizer"`
	ImageURL             *string          `json:"imageUrl,omitempty" db:"image_url"`
	GameType             string           `json:"gameType" db:"game_type"`
	Format               string           `json:"format" db:"format"`
	SkillLevel           string           `json:"skillLevel" db:"skill_level"`
	Location             string           `json:"location" db:"location"`
	PrizePool            float64          `json:"prizePool" db:"prize_pool"`
	EntryFee             float64          `json:"entryFee" db:"entry_fee"`
	CurrentParticipants  int              `json:"currentParticipants" db:"current_participants"`
	MaxParticipants      int              `json:"maxParticipants" db:"max_participants"`
	StartDate            time.Time        `json:"startDate" db:"start_date"`
	RegistrationDeadline time.Time        `json:"registrationDeadline" db:"registration_deadline"`
	Status               TournamentStatus `json:"status" db:"status"`
	RegistrationType     RegistrationType `json:"registrationType" db:"registration_type"`
	MaxTeamSize          int              `json:"maxTeamSize" db:"max_team_size"`
}

// TeamSizeLimit returns how many member entries a registration for t may hold.
func (t Tournament) TeamSizeLimit() int {
	if t.RegistrationType != RegistrationTeam {
		return 1
	}
	if t.MaxTeamSize <= 0 {
		return DefaultMaxTeamSize
	}
	return t.MaxTeamSize
}

func (t Tournament) IsFree() bool {
	return t.EntryFee == 0
}

// SpotsLeft never goes below zero, even for inconsistent listings.
func (t Tournament) SpotsLeft() int {
	if left := t.MaxParticipants - t.CurrentParticipants; left > 0 {
		return left
	}
	return 0
}

func IsValidTournamentStatus(s TournamentStatus) bool {
	switch s {
	case StatusOpen, StatusFull, StatusClosed, StatusOngoing:
		return true
	}
	return false
}
