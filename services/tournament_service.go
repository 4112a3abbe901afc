package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/Dosada05/tournament-finder/catalog"
	"github.com/Dosada05/tournament-finder/live"
	"github.com/Dosada05/tournament-finder/models"
	"github.com/Dosada05/tournament-finder/repositories"
	"golang.org/x/sync/singleflight"
)

const loadTimeout = 30 * time.Second

// TournamentService holds the current tournament list (the store) and
// reloads it from the listing source.
type TournamentService struct {
	repo   repositories.TournamentRepository
	hub    Broadcaster
	logger *slog.Logger

	group singleflight.Group

	mu          sync.RWMutex
	tournaments []models.Tournament
	loadedAt    time.Time
	listeners   []func([]models.Tournament)
}

func NewTournamentService(repo repositories.TournamentRepository, hub Broadcaster, logger *slog.Logger) *TournamentService {
	return &TournamentService{
		repo:        repo,
		hub:         broadcasterOrNoop(hub),
		logger:      logger,
		tournaments: []models.Tournament{},
	}
}

// OnReload registers fn to receive every successfully loaded list.
func (s *TournamentService) OnReload(fn func([]models.Tournament)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Load fetches the list and replaces the store. Concurrent calls share one
// fetch. On failure the previous list is kept and the error wraps ErrLoadFailed.
//
// The shared fetch is detached from the callers' contexts and bounded by
// loadTimeout. A caller whose ctx ends stops waiting; the fetch carries on for
// the others.
func (s *TournamentService) Load(ctx context.Context) ([]models.Tournament, error) {
	ch := s.group.DoChan("load", func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		return s.load(loadCtx)
	})
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, ctx.Err())
	case res := <-ch:
		if res.Shared {
			s.logger.Debug("tournament load coalesced with an in-flight request")
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]models.Tournament)), nil
	}
}

// Refresh is Load triggered by a user rather than at startup.
func (s *TournamentService) Refresh(ctx context.Context) ([]models.Tournament, error) {
	s.logger.Info("tournament refresh requested")
	return s.Load(ctx)
}

func (s *TournamentService) load(ctx context.Context) ([]models.Tournament, error) {
	start := time.Now()
	tournaments, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to load tournaments", slog.Any("error", err), slog.Duration("elapsed", time.Since(start)))
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	s.mu.Lock()
	s.tournaments = slices.Clone(tournaments)
	s.loadedAt = time.Now()
	loadedAt := s.loadedAt
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(slices.Clone(tournaments))
	}

	s.logger.Info("tournaments loaded", slog.Int("count", len(tournaments)), slog.Duration("elapsed", time.Since(start)))
	s.hub.BroadcastToRoom(live.RoomAll, live.EventTournamentsRefreshed, map[string]interface{}{
		"count":    len(tournaments),
		"loadedAt": loadedAt,
	})
	return tournaments, nil
}

// Tournaments returns a copy of the store.
func (s *TournamentService) Tournaments() []models.Tournament {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tournaments)
}

func (s *TournamentService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// List derives a visible list without keeping any state.
func (s *TournamentService) List(criteria models.FilterCriteria, sortKey models.SortKey) []models.Tournament {
	state := catalog.WithSort(catalog.WithFilters(catalog.NewState(s.Tournaments()), criteria), sortKey)
	return catalog.Visible(state)
}

// GetByID looks the tournament up in the store. Before the first successful
// load it asks the listing source directly.
func (s *TournamentService) GetByID(ctx context.Context, id int) (models.Tournament, error) {
	s.mu.RLock()
	loaded := !s.loadedAt.IsZero()
	idx := slices.IndexFunc(s.tournaments, func(t models.Tournament) bool { return t.ID == id })
	var found models.Tournament
	if idx >= 0 {
		found = s.tournaments[idx]
	}
	s.mu.RUnlock()

	if idx >= 0 {
		return found, nil
	}
	if loaded {
		return models.Tournament{}, ErrTournamentNotFound
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return models.Tournament{}, ErrTournamentNotFound
		}
		return models.Tournament{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return *t, nil
}
