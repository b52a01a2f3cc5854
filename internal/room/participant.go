package room

import (
	"sync"

	"github.com/Tyrowin/roomrelay/internal/identity"
)

// DefaultSendBuffer is the outbound queue length used when none is given.
const DefaultSendBuffer = 256

// Participant is one connected client. The ID and room never change. The
// nickname and color change together on rename and are only written by the
// connection that owns the participant.
type Participant struct {
	id   string
	room string

	mu    sync.RWMutex
	nick  string
	color string

	sendMu sync.Mutex
	send   chan []byte
	closed bool
}

// NewParticipant creates a participant with an outbound queue of sendBuffer
// frames. The color is derived from nick.
func NewParticipant(id, roomName, nick string, sendBuffer int) *Participant {
	if sendBuffer <= 0 {
		sendBuffer = DefaultSendBuffer
	}
	return &Participant{
		id:    id,
		room:  roomName,
		nick:  nick,
		color: identity.Color(nick),
		send:  make(chan []byte, sendBuffer),
	}
}

// ID returns the connection identifier.
func (p *Participant) ID() string { return p.id }

// Room returns the room the participant joined.
func (p *Participant) Room() string { return p.room }

// Nick returns the current nickname.
func (p *Participant) Nick() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.nick
}

// Color returns the color of the current nickname.
func (p *Participant) Color() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.color
}

// Identity returns nickname and color as one consistent pair.
func (p *Participant) Identity() (nick, color string) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.nick, p.color
}

// Rename replaces the nickname, recomputes the color and returns the previous
// nickname.
func (p *Participant) Rename(nick string) (old string) {
	color := identity.Color(nick)

	p.mu.Lock()
	defer p.mu.Unlock()
	old = p.nick
	p.nick = nick
	p.color = color
	return old
}

// Send returns the outbound queue. It is closed by Close.
func (p *Participant) Send() <-chan []byte {
	return p.send
}

// Deliver queues frame without blocking. It reports false when the queue is
// full or already closed.
func (p *Participant) Deliver(frame []byte) bool {
	p.sendMu.Lock()
	defer p.sendMu.Unlock()

	if p.closed {
		return false
	}

	select {
	case p.send <- frame:
		return true
	default:
		return false
	}
}

// Close closes the outbound queue. Later calls are no-ops.
func (p *Participant) Close() {
	p.sendMu.Lock()
	defer p.sendMu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	close(p.send)
}

// Closed reports whether Close has been called.
func (p *Participant) Closed() bool {
	p.sendMu.Lock()
	defer p.sendMu.Unlock()
	return p.closed
}
