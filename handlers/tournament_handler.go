package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Dosada05/tournament-finder/models"
	"github.com/Dosada05/tournament-finder/services"
)

type TournamentHandler struct {
	tournamentService *services.TournamentService
}

func NewTournamentHandler(ts *services.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
	}
}

type tournamentDetails struct {
	models.Tournament
	SpotsLeft int  `json:"spotsLeft"`
	IsFree    bool `json:"isFree"`
}

// ListHandler godoc
// @Summary Список турниров
// @Tags tournaments
// @Description Returns the loaded tournaments with filters and sort applied. Filters are combined with AND.
// @Produce json
// @Param gameType query []string false "Game titles (repeatable or comma separated)"
// @Param skillLevel query []string false "Skill levels"
// @Param format query []string false "Formats"
// @Param location query []string false "Locations"
// @Param prizeMin query number false "Minimum prize pool, in thousands"
// @Param prizeMax query number false "Maximum prize pool, in thousands"
// @Param dateStart query string false "Earliest start date (YYYY-MM-DD or RFC3339)"
// @Param dateEnd query string false "Latest start date (YYYY-MM-DD or RFC3339)"
// @Param entryFee query string false "free or paid"
// @Param sort query string false "Sort key, e.g. prize-desc"
// @Param status query string false "open, full, closed or ongoing"
// @Param limit query int false "Maximum number of tournaments"
// @Success 200 {object} map[string]interface{} "Турниры"
// @Failure 400 {object} map[string]string "Некорректные параметры"
// @Router /tournaments [get]
func (h *TournamentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var status *models.TournamentStatus
	if statusStr := query.Get("status"); statusStr != "" {
		s := models.TournamentStatus(statusStr)
		if !models.IsValidTournamentStatus(s) {
			badRequestResponse(w, r, errors.New("invalid status query parameter"))
			return
		}
		status = &s
	}

	limit := 0
	if limitStr := query.Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 {
			badRequestResponse(w, r, errors.New("invalid limit query parameter"))
			return
		}
		limit = l
	}

	criteria := models.CriteriaFromQuery(query)
	sortKey := models.SortKey(query.Get("sort"))

	visible := h.tournamentService.List(criteria, sortKey)
	if status != nil {
		kept := visible[:0]
		for _, t := range visible {
			if t.Status == *status {
				kept = append(kept, t)
			}
		}
		visible = kept
	}
	if limit > 0 && len(visible) > limit {
		visible = visible[:limit]
	}

	resp := jsonResponse{
		"tournaments": visible,
		"count":       len(visible),
		"filters":     criteria,
		"sortKey":     sortKey,
	}
	if loadedAt := h.tournamentService.LoadedAt(); !loadedAt.IsZero() {
		resp["loadedAt"] = loadedAt.Format(time.RFC3339)
	}
	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler godoc
// @Summary Получить турнир по ID
// @Tags tournaments
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {object} map[string]interface{} "Турнир"
// @Failure 400 {object} map[string]string "Некорректный ID"
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Router /tournaments/{tournamentID} [get]
func (h *TournamentHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	details := tournamentDetails{
		Tournament: tournament,
		SpotsLeft:  tournament.SpotsLeft(),
		IsFree:     tournament.IsFree(),
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": details}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RefreshHandler godoc
// @Summary Перезагрузить список турниров
// @Tags tournaments
// @Description Reloads the list from the listing source. On failure the previous list is kept.
// @Produce json
// @Success 200 {object} map[string]interface{} "Обновлённый список"
// @Failure 502 {object} map[string]string "Источник недоступен"
// @Router /tournaments/refresh [post]
func (h *TournamentHandler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentService.Refresh(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	resp := jsonResponse{
		"tournaments": tournaments,
		"count":       len(tournaments),
		"loadedAt":    h.tournamentService.LoadedAt().Format(time.RFC3339),
	}
	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
