package identity

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

const (
	// DefaultRoom is used when the requested room has no valid characters.
	DefaultRoom = "lobby"

	// MaxNickLength is the longest nickname kept, in characters.
	MaxNickLength = 32

	// MaxTextLength is the longest message body relayed, in characters.
	MaxTextLength = 2000

	anonPrefix = "anon"
)

// NormalizeRoom strips every character outside [A-Za-z0-9_-]. An empty result
// becomes DefaultRoom. Case is preserved.
func NormalizeRoom(raw string) string {
	room := strings.Map(func(r rune) rune {
		if isRoomRune(r) {
			return r
		}
		return -1
	}, raw)
	if room == "" {
		return DefaultRoom
	}
	return room
}

func isRoomRune(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_'
}

// NormalizeNick prepares the nickname requested at join time. Blank input
// is replaced by an anonymous name such as "anon417".
func NormalizeNick(raw string) string {
	if nick, ok := ClampNick(raw); ok {
		return nick
	}
	return anonPrefix + strconv.Itoa(rand.IntN(1000))
}

// ClampNick truncates raw to MaxNickLength and then trims surrounding
// whitespace. ok is false when nothing is left, so leading padding counts
// toward the limit.
func ClampNick(raw string) (nick string, ok bool) {
	nick = strings.TrimSpace(truncate(raw, MaxNickLength))
	return nick, nick != ""
}

// ClampText truncates a message body to MaxTextLength. Longer text is clipped,
// never rejected.
func ClampText(raw string) string {
	return truncate(raw, MaxTextLength)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
