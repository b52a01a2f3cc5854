package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tyrowin/roomrelay/internal/logx"
)

func requestWithOrigin(host, origin string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "http://"+host+"/ws", http.NoBody)
	if origin != "" {
		r.Header.Set("Origin", origin)
	}
	return r
}

// TestOriginPolicySameOriginDefault verifies behavior with no configured
// origins.
func TestOriginPolicySameOriginDefault(t *testing.T) {
	p := newOriginPolicy(nil, logx.Nop())

	assert.True(t, p.checkOrigin(requestWithOrigin("chat.example:8080", "")))
	assert.True(t, p.checkOrigin(requestWithOrigin("chat.example:8080", "http://chat.example:8080")))
	assert.True(t, p.checkOrigin(requestWithOrigin("chat.example:8080", "https://CHAT.example:8080")))
	assert.False(t, p.checkOrigin(requestWithOrigin("chat.example:8080", "http://evil.example")))
}

func TestOriginPolicyAllowList(t *testing.T) {
	p := newOriginPolicy([]string{" HTTP://Allowed.Example ", "not a url", ""}, logx.Nop())

	assert.True(t, p.checkOrigin(requestWithOrigin("relay.local", "http://allowed.example")))
	assert.False(t, p.checkOrigin(requestWithOrigin("relay.local", "http://relay.local")))
	assert.False(t, p.checkOrigin(requestWithOrigin("relay.local", "::bad::")))
	assert.Len(t, p.allowed, 1)
}

func TestOriginPolicyWildcard(t *testing.T) {
	p := newOriginPolicy([]string{"*"}, logx.Nop())
	assert.True(t, p.checkOrigin(requestWithOrigin("relay.local", "http://anything.example")))
}
