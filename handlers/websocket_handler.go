package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/Dosada05/tournament-finder/live"
	"github.com/Dosada05/tournament-finder/middleware"
	"github.com/Dosada05/tournament-finder/services"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	hub               *live.Hub
	tournamentService *services.TournamentService
	upgrader          websocket.Upgrader
}

// NewWebSocketHandler accepts connections from allowedOrigins; "*" allows any origin.
func NewWebSocketHandler(hub *live.Hub, ts *services.TournamentService, allowedOrigins []string) *WebSocketHandler {
	allowAll := slices.Contains(allowedOrigins, "*")
	return &WebSocketHandler{
		hub:               hub,
		tournamentService: ts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowAll || origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// ServeWs godoc
// @Summary Живые обновления каталога
// @Tags live
// @Description Without a tournament id the client joins the catalog room (TOURNAMENTS_REFRESHED); with one it joins that tournament's room (REGISTRATION_CONFIRMED).
// @Param tournamentID path int false "Tournament ID"
// @Success 101 "Switching Protocols"
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Router /ws/tournaments/{tournamentID} [get]
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	roomID := live.RoomAll
	if chi.URLParam(r, "tournamentID") != "" {
		id, err := getIDFromURL(r, "tournamentID")
		if err != nil {
			badRequestResponse(w, r, err)
			return
		}
		if _, err := h.tournamentService.GetByID(r.Context(), id); err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		roomID = live.TournamentRoom(id)
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logger.Warn("failed to upgrade websocket connection", slog.String("room", roomID), slog.Any("error", err))
		return
	}

	client := &live.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: roomID,
	}
	if !client.Hub.Subscribe(client) {
		logger.Warn("websocket hub stopped, dropping connection", slog.String("room", roomID))
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()

	logger.Info("websocket client connected", slog.String("room", roomID))
}
