package mocks

import (
	"fmt"

	"github.com/mcoot/rockpaperscissors/internal/dependencies/identity"
)

// MockIdentity is a mock implementation of identity.Generator for testing.
// Queued IDs are returned first, then sequential "id-N" values.
type MockIdentity struct {
	queued []string
	next   int
}

// Ensure MockIdentity implements Generator
var _ identity.Generator = (*MockIdentity)(nil)

// NewMockIdentity creates a new MockIdentity
func NewMockIdentity() *MockIdentity {
	return &MockIdentity{}
}

// NewID returns the next queued ID or the next sequential one
func (g *MockIdentity) NewID() string {
	if len(g.queued) > 0 {
		id := g.queued[0]
		g.queued = g.queued[1:]
		return id
	}
	g.next++
	return fmt.Sprintf("id-%d", g.next)
}

// QueueIDs adds IDs to be returned before sequential ones
func (g *MockIdentity) QueueIDs(ids ...string) {
	g.queued = append(g.queued, ids...)
}
