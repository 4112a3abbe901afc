package services

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/Dosada05/tournament-finder/models"
	"github.com/Dosada05/tournament-finder/repositories"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubRepository serves a fixed list. When gate is set, List blocks until it is closed.
type stubRepository struct {
	mu    sync.Mutex
	list  []models.Tournament
	err   error
	calls int
	gate  chan struct{}
}

func (r *stubRepository) List(ctx context.Context) ([]models.Tournament, error) {
	r.mu.Lock()
	r.calls++
	list, err, gate := slices.Clone(r.list), r.err, r.gate
	r.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *stubRepository) GetByID(_ context.Context, id int) (*models.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.list {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, repositories.ErrTournamentNotFound
}

func (r *stubRepository) set(list []models.Tournament, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = list
	r.err = err
}

func (r *stubRepository) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type broadcast struct {
	room    string
	event   string
	payload interface{}
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []broadcast
}

func (b *recordingBroadcaster) BroadcastToRoom(roomID string, eventType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, broadcast{room: roomID, event: eventType, payload: payload})
}

func (b *recordingBroadcaster) recorded() []broadcast {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.events)
}
