// Package server coordinates participant admission, inbound event dispatch,
// and departure cleanup for the relay via the Hub type.
package server

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/Tyrowin/roomrelay/internal/event"
	"github.com/Tyrowin/roomrelay/internal/identity"
	"github.com/Tyrowin/roomrelay/internal/room"
)

// Hub drives every connection through Connecting -> Joined -> Closed. It owns
// no membership state itself; rooms live in the injected Registry.
type Hub struct {
	registry    *room.Registry
	broadcaster *room.Broadcaster
	logger      zerolog.Logger
	sendBuffer  int
	now         func() time.Time

	mutex   sync.Mutex
	clients map[*Client]struct{}
	closing bool
	wg      sync.WaitGroup
}

// NewHub creates a Hub that records membership in registry. sendBuffer is the
// outbound queue length of each participant.
func NewHub(registry *room.Registry, logger zerolog.Logger, sendBuffer int) *Hub {
	return &Hub{
		registry:    registry,
		broadcaster: room.NewBroadcaster(registry, logger),
		logger:      logger.With().Str("component", "hub").Logger(),
		sendBuffer:  sendBuffer,
		now:         time.Now,
		clients:     make(map[*Client]struct{}),
	}
}

// Registry returns the registry the hub records membership in.
func (h *Hub) Registry() *room.Registry {
	return h.registry
}

func (h *Hub) timestamp() int64 {
	return event.Millis(h.now())
}

// Join admits a new participant into roomName and announces it to the room,
// the newcomer included. Room and nickname are normalized first.
func (h *Hub) Join(roomName, nick string) *room.Participant {
	roomName = identity.NormalizeRoom(roomName)
	nick = identity.NormalizeNick(nick)

	p := room.NewParticipant(identity.NewID(), roomName, nick, h.sendBuffer)
	members := h.registry.Join(roomName, p)

	h.logger.Info().
		Str("room", roomName).
		Str("participant", p.ID()).
		Str("nick", nick).
		Int("members", members).
		Msg("Participant joined")

	h.broadcaster.Broadcast(roomName, event.Joined{
		ID:    p.ID(),
		Nick:  nick,
		Color: p.Color(),
		Time:  h.timestamp(),
	})
	return p
}

// Handle processes one inbound frame from p. Frames that do not decode, and
// renames to a blank nickname, are dropped without a reply.
func (h *Hub) Handle(p *room.Participant, raw []byte) {
	cmd, err := event.Decode(raw)
	if err != nil {
		h.logger.Debug().Err(err).Str("participant", p.ID()).Msg("Dropped inbound frame")
		return
	}

	switch cmd := cmd.(type) {
	case event.SendText:
		h.relayText(p, cmd.Text)
	case event.ChangeNick:
		h.rename(p, cmd.Nick)
	}
}

func (h *Hub) relayText(p *room.Participant, text string) {
	nick, color := p.Identity()
	h.broadcaster.Broadcast(p.Room(), event.Message{
		ID:    p.ID(),
		Nick:  nick,
		Color: color,
		Text:  identity.ClampText(text),
		Time:  h.timestamp(),
	})
}

func (h *Hub) rename(p *room.Participant, requested string) {
	nick, ok := identity.ClampNick(requested)
	if !ok {
		h.logger.Debug().Str("participant", p.ID()).Msg("Ignored blank nickname")
		return
	}

	old := p.Rename(nick)
	h.logger.Info().
		Str("room", p.Room()).
		Str("participant", p.ID()).
		Str("old", old).
		Str("nick", nick).
		Msg("Participant renamed")

	h.broadcaster.Broadcast(p.Room(), event.Renamed{
		ID:    p.ID(),
		Old:   old,
		Nick:  nick,
		Color: p.Color(),
		Time:  h.timestamp(),
	})
}

// Leave removes p from its room, closes its outbound queue and tells the
// remaining members. Calling Leave again for the same participant does
// nothing.
func (h *Hub) Leave(p *room.Participant) {
	remaining, removed := h.registry.Leave(p.Room(), p)
	p.Close()
	if !removed {
		return
	}

	h.logger.Info().
		Str("room", p.Room()).
		Str("participant", p.ID()).
		Str("nick", p.Nick()).
		Int("members", remaining).
		Msg("Participant left")

	h.broadcaster.Broadcast(p.Room(), event.Parted{
		ID:   p.ID(),
		Nick: p.Nick(),
		Time: h.timestamp(),
	})
}

// Connect joins a freshly upgraded connection to the room named in the
// request and starts its pumps.
func (h *Hub) Connect(conn *websocket.Conn, roomName, nick, addr string, maxMessageSize int64) {
	h.mutex.Lock()
	if h.closing {
		h.mutex.Unlock()
		h.logger.Debug().Str("remote", addr).Msg("Rejected connection during shutdown")
		_ = conn.Close()
		return
	}

	p := h.Join(roomName, nick)
	client := NewClient(conn, h, p, addr, maxMessageSize)
	h.clients[client] = struct{}{}
	h.wg.Add(2)
	h.mutex.Unlock()

	go func() {
		defer h.wg.Done()
		client.writePump()
	}()
	go func() {
		defer h.wg.Done()
		defer h.forget(client)
		client.readPump()
	}()
}

func (h *Hub) forget(client *Client) {
	h.mutex.Lock()
	delete(h.clients, client)
	h.mutex.Unlock()
}

// ClientCount returns the number of connections with running pumps.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Shutdown stops admitting connections, closes every open one and waits for
// their pumps to finish or for ctx to expire.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("Initiating hub shutdown")

	h.mutex.Lock()
	h.closing = true
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mutex.Unlock()

	for _, client := range clients {
		client.closeConnection()
	}
	h.logger.Info().Int("clients", len(clients)).Msg("Closed client connections")

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		h.logger.Info().Msg("Hub shutdown completed")
		return nil
	case <-ctx.Done():
		h.logger.Warn().Msg("Hub shutdown timed out, some connections may still be running")
		return ctx.Err()
	}
}
