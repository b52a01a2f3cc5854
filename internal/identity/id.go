package identity

import (
	"strings"

	"github.com/google/uuid"
)

const idLength = 8

// NewID returns a short random connection identifier. IDs are unique enough
// for one process lifetime; collisions are tolerated, not checked.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:idLength]
}
