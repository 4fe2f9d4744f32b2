package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Dosada05/club-records/live"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	hub      *live.Hub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler accepts upgrades only from allowedOrigins, the same list
// the CORS middleware uses. "*" allows any origin.
func NewWebSocketHandler(hub *live.Hub, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// originChecker matches the Origin header case-insensitively. Requests without
// one do not come from a browser and are let through.
func originChecker(allowedOrigins []string) func(r *http.Request) bool {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origin = strings.ToLower(strings.TrimSpace(origin))
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
		allowed[origin] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := allowed[strings.ToLower(origin)]
		return ok
	}
}

// ServeFixtures streams every match and stat change.
// @Summary Live feed of every match and stat change
// @Tags live
// @Success 101 "Switching protocols"
// @Router /ws/fixtures [get]
func (h *WebSocketHandler) ServeFixtures(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, live.RoomFixtures)
}

// ServeMatch streams changes for a single match.
// @Summary Live feed for one match
// @Tags live
// @Param matchID path int true "Match ID"
// @Success 101 "Switching protocols"
// @Failure 400 {object} map[string]string "Invalid match id"
// @Router /ws/matches/{matchID} [get]
func (h *WebSocketHandler) ServeMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	h.serve(w, r, live.MatchRoom(matchID))
}

func (h *WebSocketHandler) serve(w http.ResponseWriter, r *http.Request, room string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		slog.Default().Debug("websocket upgrade failed", slog.String("room", room), slog.Any("error", err))
		return
	}

	client := live.NewClient(h.hub, conn, room)
	if !h.hub.Join(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
