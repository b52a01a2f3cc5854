package identity

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRoom(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "", want: "lobby"},
		{raw: "r1", want: "r1"},
		{raw: "My_Room-2", want: "My_Room-2"},
		{raw: "bad room!", want: "badroom"},
		{raw: "../../etc", want: "etc"},
		{raw: "!!!", want: "lobby"},
		{raw: "café", want: "caf"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRoom(tt.raw))
		})
	}
}

func TestNormalizeNickDefaultsToAnon(t *testing.T) {
	anon := regexp.MustCompile(`^anon\d{1,3}$`)

	for _, raw := range []string{"", "   ", "\t\n"} {
		assert.Regexp(t, anon, NormalizeNick(raw))
	}
	assert.Equal(t, "alice", NormalizeNick("alice"))
	assert.Equal(t, "alice", NormalizeNick("  alice "))
	assert.Regexp(t, anon, NormalizeNick(strings.Repeat(" ", MaxNickLength)+"bob"))
}

func TestClampNick(t *testing.T) {
	long := strings.Repeat("n", 40)
	nick, ok := ClampNick(long)
	require.True(t, ok)
	assert.Equal(t, strings.Repeat("n", MaxNickLength), nick)

	exact := strings.Repeat("x", MaxNickLength)
	nick, ok = ClampNick(exact)
	require.True(t, ok)
	assert.Equal(t, exact, nick)

	wide := strings.Repeat("ß", 40)
	nick, ok = ClampNick(wide)
	require.True(t, ok)
	assert.Equal(t, MaxNickLength, utf8.RuneCountInString(nick))

	_, ok = ClampNick("   ")
	assert.False(t, ok)

	_, ok = ClampNick(strings.Repeat(" ", MaxNickLength) + "bob")
	assert.False(t, ok, "padding past the limit leaves nothing")

	nick, ok = ClampNick("  " + long)
	require.True(t, ok)
	assert.Equal(t, strings.Repeat("n", MaxNickLength-2), nick)

	_, ok = ClampNick("")
	assert.False(t, ok)
}

func TestClampText(t *testing.T) {
	short := "hi"
	assert.Equal(t, short, ClampText(short))

	exact := strings.Repeat("a", MaxTextLength)
	assert.Equal(t, exact, ClampText(exact))

	long := strings.Repeat("b", MaxTextLength+500)
	assert.Len(t, ClampText(long), MaxTextLength)

	multibyte := strings.Repeat("é", MaxTextLength+1)
	clipped := ClampText(multibyte)
	assert.Equal(t, MaxTextLength, utf8.RuneCountInString(clipped))
	assert.True(t, utf8.ValidString(clipped))
}

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := NewID()
		require.Len(t, id, idLength)
		seen[id] = struct{}{}
	}
	assert.Greater(t, len(seen), 95)
}
