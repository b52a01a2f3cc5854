// Package server wires HTTP handlers into a ServeMux for the relay via
// routing helpers.
package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// SetupRoutes returns the relay's HTTP handler. "/" serves the chat page and
// also accepts WebSocket upgrades, as browsers connect back to the page URL.
// "/ws" accepts upgrades only and "/healthz" reports liveness.
func SetupRoutes(hub *Hub, cfg *Config, logger zerolog.Logger) http.Handler {
	ws := WebSocketHandler(hub, cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", ws)
	mux.HandleFunc("/healthz", HealthHandler(hub))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if websocket.IsWebSocketUpgrade(r) {
			ws(w, r)
			return
		}
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		ChatPageHandler(w, r)
	})

	return withMiddleware(mux, logger)
}
