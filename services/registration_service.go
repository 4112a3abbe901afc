package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Dosada05/tournament-finder/live"
	"github.com/Dosada05/tournament-finder/models"
	"github.com/Dosada05/tournament-finder/registration"
	"github.com/Dosada05/tournament-finder/storage"
	"github.com/Dosada05/tournament-finder/utils"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const receiptIssuer = "tournament-finder"

// ReceiptClaims are carried by the token handed back with a confirmation.
type ReceiptClaims struct {
	ConfirmationID string `json:"cid"`
	TournamentID   int    `json:"tid"`
	jwt.RegisteredClaims
}

type RegistrationServiceConfig struct {
	JWTSecret       []byte
	Latency         time.Duration
	EnforceDeadline bool
	ReceiptTTL      time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// RegistrationService confirms registration payloads handed over by a
// registration.Form.
type RegistrationService struct {
	tournaments *TournamentService
	store       storage.ObjectStore
	hub         Broadcaster
	logger      *slog.Logger
	cfg         RegistrationServiceConfig

	mu        sync.Mutex
	keys      map[string]string // registration key -> confirmation id
	confirmed map[int]int       // tournament id -> confirmations accepted here
}

// NewRegistrationService создаёт RegistrationService с внедрением зависимостей.
func NewRegistrationService(
	tournaments *TournamentService,
	store storage.ObjectStore,
	hub Broadcaster,
	logger *slog.Logger,
	cfg RegistrationServiceConfig,
) *RegistrationService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &RegistrationService{
		tournaments: tournaments,
		store:       store,
		hub:         broadcasterOrNoop(hub),
		logger:      logger,
		cfg:         cfg,
		keys:        make(map[string]string),
		confirmed:   make(map[int]int),
	}
}

var _ registration.Submitter = (*RegistrationService)(nil)

// Register fills a registration form for the tournament from input and
// submits it. Validation errors come from the registration package; anything
// the confirmation step rejects wraps ErrSubmissionFailed.
func (s *RegistrationService) Register(ctx context.Context, tournamentID int, input models.RegistrationData) (*models.Confirmation, error) {
	tournament, err := s.tournaments.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	form := registration.NewForm(tournament, s.logger)
	form.SetPlayer(strings.TrimSpace(input.PlayerName), strings.TrimSpace(input.Email))
	form.SetTeamName(strings.TrimSpace(input.TeamName))
	form.SetConsents(input.AgreeToTerms, input.AgreeToRules)

	members := input.TeamMembers
	if tournament.RegistrationType != models.RegistrationTeam && len(members) == 0 {
		members = []string{input.PlayerName}
	}
	for i, name := range members {
		name = strings.TrimSpace(name)
		if i == 0 {
			err = form.SetMember(0, name)
		} else {
			err = form.AddMember(name)
		}
		if err != nil {
			return nil, err
		}
	}

	return form.Submit(ctx, s)
}

// Submit implements registration.Submitter.
func (s *RegistrationService) Submit(ctx context.Context, tournament models.Tournament, data models.RegistrationData) (*models.Confirmation, error) {
	if err := sleepContext(ctx, s.cfg.Latency); err != nil {
		return nil, err
	}

	if err := registration.Validate(tournament.RegistrationType, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if len(data.TeamMembers) > tournament.TeamSizeLimit() {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, registration.ErrTeamFull)
	}

	now := s.cfg.Now().UTC()
	key, err := s.reserve(tournament, data.Email, now)
	if err != nil {
		s.logger.Warn("registration rejected",
			slog.Int("tournament_id", tournament.ID),
			slog.String("reason", err.Error()),
		)
		return nil, err
	}

	confirmation := &models.Confirmation{
		ID:           uuid.NewString(),
		TournamentID: tournament.ID,
		Registration: data,
		SubmittedAt:  now,
	}

	archiveKey, err := s.archive(ctx, tournament, confirmation)
	if err != nil {
		s.release(tournament.ID, key)
		return nil, err
	}
	confirmation.ArchiveKey = archiveKey

	token, err := s.issueReceipt(confirmation)
	if err != nil {
		s.release(tournament.ID, key)
		if delErr := s.store.Delete(context.WithoutCancel(ctx), archiveKey); delErr != nil {
			s.logger.Error("failed to remove archived registration after receipt failure",
				slog.String("archive_key", archiveKey),
				slog.Any("error", delErr),
			)
		}
		return nil, fmt.Errorf("failed to sign registration receipt: %w", err)
	}
	confirmation.ReceiptToken = token

	s.mu.Lock()
	if key != "" {
		s.keys[key] = confirmation.ID
	}
	s.mu.Unlock()

	spotsLeft := tournament.SpotsLeft() - s.ConfirmedCount(tournament.ID)
	if spotsLeft < 0 {
		spotsLeft = 0
	}
	s.hub.BroadcastToRoom(live.TournamentRoom(tournament.ID), live.EventRegistrationConfirmed, map[string]interface{}{
		"tournamentId":   tournament.ID,
		"confirmationId": confirmation.ID,
		"spotsLeft":      spotsLeft,
	})

	s.logger.Info("registration confirmed",
		slog.Int("tournament_id", tournament.ID),
		slog.String("confirmation_id", confirmation.ID),
		slog.String("registration_type", string(tournament.RegistrationType)),
		slog.Int("members", len(data.TeamMembers)),
	)
	return confirmation, nil
}

// reserve checks the business rules and holds a slot for the registration.
// The returned key is empty when the payload has no email to deduplicate on.
func (s *RegistrationService) reserve(t models.Tournament, email string, now time.Time) (string, error) {
	switch t.Status {
	case models.StatusOpen:
	case models.StatusFull:
		return "", ErrTournamentFull
	default:
		return "", fmt.Errorf("%w (status: %s)", ErrRegistrationNotOpen, t.Status)
	}
	if s.cfg.EnforceDeadline && !t.RegistrationDeadline.IsZero() && now.After(t.RegistrationDeadline) {
		return "", fmt.Errorf("%w (deadline %s passed)", ErrRegistrationNotOpen, t.RegistrationDeadline.Format(time.RFC3339))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t.CurrentParticipants+s.confirmed[t.ID] >= t.MaxParticipants {
		return "", ErrTournamentFull
	}

	var key string
	if strings.TrimSpace(email) != "" {
		key = utils.RegistrationKey(t.ID, email)
		if _, exists := s.keys[key]; exists {
			return "", ErrRegistrationConflict
		}
		// Held until the confirmation id is known.
		s.keys[key] = ""
	}
	s.confirmed[t.ID]++
	return key, nil
}

func (s *RegistrationService) release(tournamentID int, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key != "" {
		delete(s.keys, key)
	}
	if s.confirmed[tournamentID] > 0 {
		s.confirmed[tournamentID]--
	}
}

type archivedRegistration struct {
	ConfirmationID   string                  `json:"confirmationId"`
	TournamentID     int                     `json:"tournamentId"`
	TournamentTitle  string                  `json:"tournamentTitle"`
	RegistrationType models.RegistrationType `json:"registrationType"`
	Registration     models.RegistrationData `json:"registration"`
	SubmittedAt      time.Time               `json:"submittedAt"`
}

func archiveKey(tournamentID int, confirmationID string) string {
	return fmt.Sprintf("registrations/%d/%s.json", tournamentID, confirmationID)
}

func (s *RegistrationService) archive(ctx context.Context, t models.Tournament, c *models.Confirmation) (string, error) {
	body, err := json.Marshal(archivedRegistration{
		ConfirmationID:   c.ID,
		TournamentID:     t.ID,
		TournamentTitle:  t.Title,
		RegistrationType: t.RegistrationType,
		Registration:     c.Registration,
		SubmittedAt:      c.SubmittedAt,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrArchiveFailed, err)
	}

	key := archiveKey(t.ID, c.ID)
	result, err := s.store.Upload(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w (key: %s): %w", ErrArchiveFailed, key, err)
	}
	s.logger.Debug("registration archived", slog.String("archive_key", result.Key), slog.String("etag", result.ETag))
	return result.Key, nil
}

func (s *RegistrationService) issueReceipt(c *models.Confirmation) (string, error) {
	claims := ReceiptClaims{
		ConfirmationID: c.ID,
		TournamentID:   c.TournamentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   receiptIssuer,
			Subject:  c.ID,
			IssuedAt: jwt.NewNumericDate(c.SubmittedAt),
		},
	}
	if s.cfg.ReceiptTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(c.SubmittedAt.Add(s.cfg.ReceiptTTL))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.cfg.JWTSecret)
}

// VerifyReceipt checks the signature of a receipt token and returns its claims.
func (s *RegistrationService) VerifyReceipt(tokenString string) (*ReceiptClaims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidReceipt)
	}
	claims := &ReceiptClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.cfg.JWTSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidReceipt, err)
	}
	if !token.Valid || claims.Issuer != receiptIssuer {
		return nil, ErrInvalidReceipt
	}
	return claims, nil
}

// ConfirmedCount is how many registrations for the tournament were accepted
// by this process.
func (s *RegistrationService) ConfirmedCount(tournamentID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirmed[tournamentID]
}

// IsValidationError reports whether err comes from form rules rather than
// from the confirmation step.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrValidationFailed,
		registration.ErrTermsNotAccepted,
		registration.ErrTeamNameRequired,
		registration.ErrTeamMemberNameRequired,
		registration.ErrTeamFull,
		registration.ErrLastTeamMember,
		registration.ErrMemberIndexOutOfRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
