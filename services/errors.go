package services

import (
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-finder/registration"
)

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	ErrNotFound           = errors.New("not found")
	ErrTournamentNotFound = fmt.Errorf("tournament %w", ErrNotFound)
	ErrSessionNotFound    = fmt.Errorf("browsing session %w", ErrNotFound)

	ErrValidationFailed = errors.New("validation failed")

	// LoadFailure: fetching the tournament list failed; the previous list stays in place.
	ErrLoadFailed = errors.New("failed to load tournaments")
	// SubmissionFailure: the confirmation step rejected or could not store a registration.
	ErrSubmissionFailed = registration.ErrSubmissionFailed

	ErrRegistrationNotOpen  = errors.New("tournament registration is not open")
	ErrTournamentFull       = errors.New("tournament registration is full")
	ErrRegistrationConflict = errors.New("this email is already registered for the tournament")
	ErrArchiveFailed        = errors.New("failed to archive registration")
	ErrInvalidReceipt       = errors.New("invalid registration receipt")
)
