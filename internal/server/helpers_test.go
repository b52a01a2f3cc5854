package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/Tyrowin/roomrelay/internal/logx"
	"github.com/Tyrowin/roomrelay/internal/room"
	"github.com/Tyrowin/roomrelay/internal/server"
)

const readTimeout = 2 * time.Second

// newTestServer starts the full relay handler on an httptest server. The
// optional customize func adjusts the default config before wiring.
func newTestServer(t *testing.T, customize func(cfg *server.Config)) (*server.Hub, *httptest.Server) {
	t.Helper()

	cfg := server.NewConfig()
	if customize != nil {
		customize(cfg)
	}
	cfg.Sanitize()

	hub := server.NewHub(room.NewRegistry(), logx.Nop(), cfg.SendBuffer)
	ts := httptest.NewServer(server.SetupRoutes(hub, cfg, logx.Nop()))
	t.Cleanup(ts.Close)
	return hub, ts
}

// wsURL converts the test server URL into a WebSocket URL for path with the
// given room and nick query parameters. Empty values are omitted.
func wsURL(ts *httptest.Server, path, roomName, nick string) string {
	q := url.Values{}
	if roomName != "" {
		q.Set("room", roomName)
	}
	if nick != "" {
		q.Set("nick", nick)
	}
	u := "ws" + strings.TrimPrefix(ts.URL, "http") + path
	if encoded := q.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// dial opens a WebSocket on "/" and closes it when the test ends.
func dial(t *testing.T, ts *httptest.Server, roomName, nick string) *websocket.Conn {
	t.Helper()
	return dialURL(t, wsURL(ts, "/", roomName, nick), nil)
}

func dialURL(t *testing.T, rawURL string, header http.Header) *websocket.Conn {
	t.Helper()

	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, resp, err := dialer.Dial(rawURL, header)
	if resp != nil {
		_ = resp.Body.Close()
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// readEvent reads one frame and decodes it as a JSON object.
func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(readTimeout)))
	messageType, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.TextMessage, messageType)

	var ev map[string]any
	require.NoError(t, json.Unmarshal(raw, &ev), "frame %q", raw)
	return ev
}

// expectNoEvent asserts that nothing arrives within timeout. A timed-out
// read leaves the connection unusable, so call it last.
func expectNoEvent(t *testing.T, conn *websocket.Conn, timeout time.Duration) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(timeout)))
	_, raw, err := conn.ReadMessage()
	if err == nil {
		t.Fatalf("expected no frame, got %s", raw)
	}
}

func sendJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(v))
}

func sendText(t *testing.T, conn *websocket.Conn, text string) {
	t.Helper()
	sendJSON(t, conn, map[string]string{"type": "msg", "text": text})
}

func sendNick(t *testing.T, conn *websocket.Conn, nick string) {
	t.Helper()
	sendJSON(t, conn, map[string]string{"type": "nick", "nick": nick})
}

// closeGracefully sends a close frame before closing the socket.
func closeGracefully(t *testing.T, conn *websocket.Conn) {
	t.Helper()

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	_ = conn.Close()
}

// receive pulls one queued frame from a participant without a socket.
func receive(t *testing.T, p *room.Participant) map[string]any {
	t.Helper()

	select {
	case frame, ok := <-p.Send():
		require.True(t, ok, "queue of %s closed", p.ID())
		var ev map[string]any
		require.NoError(t, json.Unmarshal(frame, &ev))
		return ev
	case <-time.After(readTimeout):
		t.Fatalf("timed out waiting for a frame for %s", p.ID())
		return nil
	}
}

func assertQueueEmpty(t *testing.T, p *room.Participant) {
	t.Helper()

	select {
	case frame, ok := <-p.Send():
		if ok {
			t.Fatalf("unexpected frame for %s: %s", p.ID(), frame)
		}
	default:
	}
}
