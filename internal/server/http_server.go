// Package server constructs and starts the relay's HTTP service with helpers
// that apply sensible production defaults.
package server

import (
	"context"
	"net"
	"net/http"
	"time"
)

// CreateServer creates and configures an HTTP server with the specified address and handler.
// It sets reasonable timeout values for production use.
func CreateServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Listen binds the server's address. Failing here is the relay's only fatal
// startup error, so callers bind before serving in the background.
func Listen(server *http.Server) (net.Listener, error) {
	return net.Listen("tcp", server.Addr)
}

// StartServer serves HTTP on ln until the server is shut down. It returns
// http.ErrServerClosed after a graceful shutdown.
func StartServer(server *http.Server, ln net.Listener) error {
	return server.Serve(ln)
}

// ShutdownServer gracefully shuts down the HTTP server without interrupting active connections.
// Hijacked WebSocket connections are not tracked by http.Server; Hub.Shutdown closes those.
func ShutdownServer(ctx context.Context, server *http.Server) error {
	return server.Shutdown(ctx)
}
