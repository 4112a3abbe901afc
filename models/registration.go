package models

import "time"

type SortKey string

const (
	SortDateAsc          SortKey = "date-asc"
	SortDateDesc         SortKey = "date-desc"
	SortPrizeAsc         SortKey = "prize-asc"
	SortPrizeDesc        SortKey = "prize-desc"
	SortParticipantsAsc  SortKey = "participants-asc"
	SortParticipantsDesc SortKey = "participants-desc"
	SortDeadlineAsc      SortKey = "deadline-asc"
	SortNameAsc          SortKey = "name-asc"
	SortNameDesc         SortKey = "name-desc"
)

// RegistrationData is the payload collected by the registration form.
type RegistrationData struct {
	PlayerName   string   `json:"playerName"`
	Email        string   `json:"email"`
	TeamName     string   `json:"teamName,omitempty"`
	TeamMembers  []string `json:"teamMembers"`
	AgreeToTerms bool     `json:"agreeToTerms"`
	AgreeToRules bool     `json:"agreeToRules"`
}

// Confirmation is returned once a registration payload has been accepted.
type Confirmation struct {
	ID           string           `json:"id"`
	TournamentID int              `json:"tournamentId"`
	Registration RegistrationData `json:"registration"`
	SubmittedAt  time.Time        `json:"submittedAt"`
	ReceiptToken string           `json:"receiptToken"`
	ArchiveKey   string           `json:"archiveKey,omitempty"`
}
