package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/tournament-finder/models"
	"github.com/Dosada05/tournament-finder/services"
	"github.com/go-chi/chi/v5"
)

// SessionHandler exposes browsing sessions: a filter set and sort key kept
// on the server for one client.
type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(ss *services.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: ss,
	}
}

type setSortInput struct {
	SortKey models.SortKey `json:"sortKey"`
}

func (h *SessionHandler) respond(w http.ResponseWriter, r *http.Request, status int, view services.SessionView, err error) {
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, status, jsonResponse{"session": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateHandler godoc
// @Summary Создать сессию просмотра
// @Tags sessions
// @Produce json
// @Success 201 {object} services.SessionView
// @Router /sessions [post]
func (h *SessionHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusCreated, h.sessionService.Create(), nil)
}

// GetHandler godoc
// @Summary Состояние сессии и видимый список
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} services.SessionView
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Router /sessions/{sessionID} [get]
func (h *SessionHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionService.Get(chi.URLParam(r, "sessionID"))
	h.respond(w, r, http.StatusOK, view, err)
}

// DeleteHandler godoc
// @Summary Закрыть сессию
// @Tags sessions
// @Param sessionID path string true "Session ID"
// @Success 204 "Сессия закрыта"
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Router /sessions/{sessionID} [delete]
func (h *SessionHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.Delete(chi.URLParam(r, "sessionID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetFiltersHandler godoc
// @Summary Заменить набор фильтров
// @Tags sessions
// @Description Replaces the whole criteria set. Unknown kinds and malformed values are ignored.
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body object true "Criteria keyed by filter kind"
// @Success 200 {object} services.SessionView
// @Failure 400 {object} map[string]string "Некорректный JSON"
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Router /sessions/{sessionID}/filters [put]
func (h *SessionHandler) SetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	var criteria models.FilterCriteria
	if err := readJSON(w, r, &criteria); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	view, err := h.sessionService.SetFilters(chi.URLParam(r, "sessionID"), criteria)
	h.respond(w, r, http.StatusOK, view, err)
}

// ClearFiltersHandler godoc
// @Summary Сбросить все фильтры
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} services.SessionView
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Router /sessions/{sessionID}/filters [delete]
func (h *SessionHandler) ClearFiltersHandler(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessionService.ClearFilters(chi.URLParam(r, "sessionID"))
	h.respond(w, r, http.StatusOK, view, err)
}

// RemoveFilterHandler godoc
// @Summary Убрать один фильтр
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param kind path string true "Filter kind, e.g. gameType"
// @Success 200 {object} services.SessionView
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Router /sessions/{sessionID}/filters/{kind} [delete]
func (h *SessionHandler) RemoveFilterHandler(w http.ResponseWriter, r *http.Request) {
	kind := models.FilterKind(chi.URLParam(r, "kind"))
	view, err := h.sessionService.RemoveFilter(chi.URLParam(r, "sessionID"), kind)
	h.respond(w, r, http.StatusOK, view, err)
}

// SetSortHandler godoc
// @Summary Выбрать сортировку
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body setSortInput true "Sort key"
// @Success 200 {object} services.SessionView
// @Failure 400 {object} map[string]string "Некорректный JSON"
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Router /sessions/{sessionID}/sort [put]
func (h *SessionHandler) SetSortHandler(w http.ResponseWriter, r *http.Request) {
	var input setSortInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.SortKey == "" {
		badRequestResponse(w, r, errors.New("sortKey must be provided"))
		return
	}
	view, err := h.sessionService.SetSort(chi.URLParam(r, "sessionID"), input.SortKey)
	h.respond(w, r, http.StatusOK, view, err)
}
