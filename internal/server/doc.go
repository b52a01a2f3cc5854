// Package server exposes the relay over HTTP and WebSocket.
//
// The Hub is the connection lifecycle controller: it admits upgraded
// connections into a room, turns inbound frames into broadcasts and runs the
// departure cleanup exactly once per connection. Client owns the read and
// write pumps of a single WebSocket. The remaining files hold configuration,
// origin checks, routing, middleware and the embedded chat page.
package server
