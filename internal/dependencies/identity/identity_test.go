package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_IsUUID(t *testing.T) {
	id := New().NewID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestNewID_Unique(t *testing.T) {
	g := New()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.NewID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
