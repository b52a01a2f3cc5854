package room

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/Tyrowin/roomrelay/internal/event"
)

// Broadcaster delivers events to every member of a room. Delivery is best
// effort: members whose queue is full or closed are skipped.
type Broadcaster struct {
	registry *Registry
	logger   zerolog.Logger
	dropLog  *rate.Sometimes
}

// NewBroadcaster returns a Broadcaster reading membership from registry.
func NewBroadcaster(registry *Registry, logger zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		registry: registry,
		logger:   logger.With().Str("component", "broadcast").Logger(),
		dropLog:  &rate.Sometimes{First: 5, Interval: 10 * time.Second},
	}
}

// Broadcast serializes ev once and queues the same bytes for every current
// member of roomName. It returns how many members accepted the frame.
func (b *Broadcaster) Broadcast(roomName string, ev event.Event) int {
	frame, err := json.Marshal(ev)
	if err != nil {
		b.logger.Error().Err(err).Str("room", roomName).Msg("Failed to encode event")
		return 0
	}

	members := b.registry.Snapshot(roomName)
	delivered := 0
	for _, p := range members {
		if p.Deliver(frame) {
			delivered++
			continue
		}
		b.dropLog.Do(func() {
			b.logger.Warn().
				Str("room", roomName).
				Str("participant", p.ID()).
				Bool("closed", p.Closed()).
				Msg("Skipped delivery to unreachable participant")
		})
	}

	b.logger.Trace().
		Str("room", roomName).
		Int("members", len(members)).
		Int("delivered", delivered).
		Msg("Broadcast")
	return delivered
}
