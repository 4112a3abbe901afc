package handlers

import (
	"net/http"
	"time"

	"github.com/Dosada05/tournament-finder/services"
)

type HealthHandler struct {
	tournamentService *services.TournamentService
	sessionService    *services.SessionService
}

func NewHealthHandler(ts *services.TournamentService, ss *services.SessionService) *HealthHandler {
	return &HealthHandler{tournamentService: ts, sessionService: ss}
}

// HealthzHandler godoc
// @Summary Liveness
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /healthz [get]
func (h *HealthHandler) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	resp := jsonResponse{
		"status":      "ok",
		"tournaments": len(h.tournamentService.Tournaments()),
		"sessions":    h.sessionService.Count(),
	}
	if loadedAt := h.tournamentService.LoadedAt(); !loadedAt.IsZero() {
		resp["loadedAt"] = loadedAt.Format(time.RFC3339)
	}
	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
