package registration

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/Dosada05/tournament-finder/models"
)

type FormState string

const (
	StateEditing    FormState = "editing"
	StateSubmitting FormState = "submitting"
)

// Submitter is the confirmation collaborator a finished form is handed to.
type Submitter interface {
	Submit(ctx context.Context, tournament models.Tournament, data models.RegistrationData) (*models.Confirmation, error)
}

// Form collects registration data for one tournament.
type Form struct {
	mu         sync.Mutex
	tournament models.Tournament
	data       models.RegistrationData
	state      FormState
	logger     *slog.Logger
}

// NewForm starts in the editing state with a single empty member entry.
func NewForm(tournament models.Tournament, logger *slog.Logger) *Form {
	if logger == nil {
		logger = slog.Default()
	}
	return &Form{
		tournament: tournament,
		data:       models.RegistrationData{TeamMembers: []string{""}},
		state:      StateEditing,
		logger:     logger,
	}
}

func (f *Form) Tournament() models.Tournament { return f.tournament }

func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Data returns a copy of the collected payload.
func (f *Form) Data() models.RegistrationData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyData(f.data)
}

func (f *Form) SetPlayer(name, email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.PlayerName = name
	f.data.Email = email
}

func (f *Form) SetTeamName(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.TeamName = name
}

func (f *Form) SetConsents(terms, rules bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.AgreeToTerms = terms
	f.data.AgreeToRules = rules
}

// MaxMembers is the team size limit of the tournament.
func (f *Form) MaxMembers() int {
	return f.tournament.TeamSizeLimit()
}

func (f *Form) AddMember(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.data.TeamMembers) >= f.MaxMembers() {
		return ErrTeamFull
	}
	f.data.TeamMembers = append(f.data.TeamMembers, name)
	return nil
}

func (f *Form) RemoveMember(index int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.data.TeamMembers) {
		return ErrMemberIndexOutOfRange
	}
	if len(f.data.TeamMembers) <= 1 {
		return ErrLastTeamMember
	}
	f.data.TeamMembers = slices.Delete(f.data.TeamMembers, index, index+1)
	return nil
}

func (f *Form) SetMember(index int, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.data.TeamMembers) {
		return ErrMemberIndexOutOfRange
	}
	f.data.TeamMembers[index] = name
	return nil
}

// Valid is the submit guard.
func (f *Form) Valid() bool {
	return f.Validate() == nil
}

// Validate returns the first rule the collected data breaks.
func (f *Form) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Validate(f.tournament.RegistrationType, f.data)
}

// Validate checks data against the rules for the given registration type.
// Individual registrations only need both consents.
func Validate(kind models.RegistrationType, data models.RegistrationData) error {
	if !data.AgreeToTerms || !data.AgreeToRules {
		return ErrTermsNotAccepted
	}
	if kind != models.RegistrationTeam {
		return nil
	}
	if strings.TrimSpace(data.TeamName) == "" {
		return ErrTeamNameRequired
	}
	for _, member := range data.TeamMembers {
		if strings.TrimSpace(member) == "" {
			return ErrTeamMemberNameRequired
		}
	}
	return nil
}

// Submit hands a valid payload to s. The form is in StateSubmitting for the
// duration of the call and back in StateEditing afterwards, whatever the outcome.
// A failed submission is logged and not retried.
func (f *Form) Submit(ctx context.Context, s Submitter) (*models.Confirmation, error) {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if err := Validate(f.tournament.RegistrationType, f.data); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	f.state = StateSubmitting
	payload := copyData(f.data)
	f.mu.Unlock()

	confirmation, err := s.Submit(ctx, f.tournament, payload)

	f.mu.Lock()
	f.state = StateEditing
	f.mu.Unlock()

	if err != nil {
		f.logger.Error("registration submission failed",
			slog.Int("tournament_id", f.tournament.ID),
			slog.String("player", payload.PlayerName),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	return confirmation, nil
}

func copyData(d models.RegistrationData) models.RegistrationData {
	d.TeamMembers = slices.Clone(d.TeamMembers)
	return d
}
