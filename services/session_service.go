package services

import (
	"log/slog"
	"sync"
	"time"

	"github.com/Dosada05/tournament-finder/catalog"
	"github.com/Dosada05/tournament-finder/models"
	"github.com/google/uuid"
)

// SessionView is a browsing session as the client sees it.
type SessionView struct {
	ID          string                `json:"id"`
	CreatedAt   time.Time             `json:"createdAt"`
	Filters     models.FilterCriteria `json:"filters"`
	SortKey     models.SortKey        `json:"sortKey"`
	Total       int                   `json:"total"`
	Tournaments []models.Tournament   `json:"tournaments"`
}

type session struct {
	id         string
	createdAt  time.Time
	controller *catalog.Controller
}

// SessionService keeps one catalog controller per browsing session.
type SessionService struct {
	tournaments *TournamentService
	logger      *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewSessionService subscribes to tournament reloads so every open session
// sees the new list with its own filters and sort reapplied.
func NewSessionService(tournaments *TournamentService, logger *slog.Logger) *SessionService {
	s := &SessionService{
		tournaments: tournaments,
		logger:      logger,
		sessions:    make(map[string]*session),
	}
	tournaments.OnReload(s.propagate)
	return s
}

func (s *SessionService) propagate(list []models.Tournament) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sess := range s.sessions {
		sess.controller.SetTournaments(list)
	}
	s.logger.Debug("tournament list propagated to sessions", slog.Int("sessions", len(s.sessions)))
}

func (s *SessionService) Create() SessionView {
	s.mu.Lock()
	sess := &session{
		id:         uuid.NewString(),
		createdAt:  time.Now().UTC(),
		controller: catalog.NewController(s.tournaments.Tournaments()),
	}
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.Info("browsing session created", slog.String("session_id", sess.id))
	return sess.view(sess.controller.Visible())
}

func (s *SessionService) Get(id string) (SessionView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SessionView{}, err
	}
	return sess.view(sess.controller.Visible()), nil
}

func (s *SessionService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	s.logger.Info("browsing session closed", slog.String("session_id", id))
	return nil
}

// SetFilters replaces the whole criteria set of the session.
func (s *SessionService) SetFilters(id string, criteria models.FilterCriteria) (SessionView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SessionView{}, err
	}
	return sess.view(sess.controller.SetFilters(criteria)), nil
}

func (s *SessionService) RemoveFilter(id string, kind models.FilterKind) (SessionView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SessionView{}, err
	}
	return sess.view(sess.controller.RemoveFilter(kind)), nil
}

func (s *SessionService) ClearFilters(id string) (SessionView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SessionView{}, err
	}
	return sess.view(sess.controller.ClearAllFilters()), nil
}

// SetSort accepts unknown keys; they leave the filtered order as it is.
func (s *SessionService) SetSort(id string, key models.SortKey) (SessionView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SessionView{}, err
	}
	if key != "" && !catalog.IsKnownSortKey(key) {
		s.logger.Warn("unknown sort key, keeping source order",
			slog.String("session_id", id),
			slog.String("sort_key", string(key)),
		)
	}
	return sess.view(sess.controller.SetSort(key)), nil
}

func (s *SessionService) Visible(id string) ([]models.Tournament, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return sess.controller.Visible(), nil
}

func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionService) lookup(id string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (sess *session) view(visible []models.Tournament) SessionView {
	state := sess.controller.State()
	return SessionView{
		ID:          sess.id,
		CreatedAt:   sess.createdAt,
		Filters:     state.Filters,
		SortKey:     state.SortKey,
		Total:       len(state.Tournaments),
		Tournaments: visible,
	}
}
