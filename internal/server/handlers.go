// Package server exposes HTTP handlers, including WebSocket upgrades, health
// checks, and the built-in chat page.
package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
)

// WebSocketHandler upgrades GET requests to WebSocket and hands the
// connection to hub, joining the room and nickname given in the "room" and
// "nick" query parameters.
func WebSocketHandler(hub *Hub, cfg *Config) http.HandlerFunc {
	policy := newOriginPolicy(cfg.AllowedOrigins, hub.logger)
	upgrader := websocket.Upgrader{
		ReadBufferSize:    1024,
		WriteBufferSize:   1024,
		CheckOrigin:       policy.checkOrigin,
		EnableCompression: true,
	}
	maxMessageSize := cfg.MaxMessageSize

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed. WebSocket endpoint only accepts GET requests.", http.StatusMethodNotAllowed)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			hub.logger.Debug().Err(err).Str("remote", r.RemoteAddr).Msg("WebSocket upgrade failed")
			return
		}

		query := r.URL.Query()
		hub.Connect(conn, query.Get("room"), query.Get("nick"), r.RemoteAddr, maxMessageSize)
	}
}

// HealthHandler reports liveness together with current occupancy.
func HealthHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		registry := hub.Registry()
		_, _ = fmt.Fprintf(w, "roomrelay is running: %d participants in %d rooms\n",
			registry.Count(), len(registry.Rooms()))
	}
}

// ChatPageHandler serves the browser client.
func ChatPageHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprint(w, chatPage)
}
