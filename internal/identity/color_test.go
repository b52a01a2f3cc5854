package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHueIsDeterministicAndInRange checks that repeated calls agree and that
// every hue lands in [0, 360), including inputs that overflow the accumulator.
func TestHueIsDeterministicAndInRange(t *testing.T) {
	names := []string{
		"",
		"alice",
		"bob",
		"ünïcødé",
		"日本語のニックネーム",
		"😀 emoji",
		strings.Repeat("z", 500),
		strings.Repeat("overflow", 64),
	}

	for _, name := range names {
		first := Hue(name)
		require.Equal(t, first, Hue(name), "hue for %q changed between calls", name)
		assert.GreaterOrEqual(t, first, 0, "hue for %q", name)
		assert.Less(t, first, 360, "hue for %q", name)
	}
}

// TestHueKnownValues pins the rolling hash for short inputs.
func TestHueKnownValues(t *testing.T) {
	tests := []struct {
		name string
		nick string
		want int
	}{
		{name: "empty", nick: "", want: 0},
		{name: "single char", nick: "a", want: 97},
		{name: "two chars", nick: "ab", want: (97*31 + 98) % 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hue(tt.nick))
		})
	}
}

// TestColorFormat verifies the HSL string layout.
func TestColorFormat(t *testing.T) {
	assert.Equal(t, "hsl(97 70% 45%)", Color("a"))
	assert.Equal(t, Color("alice"), Color("alice"))
}
