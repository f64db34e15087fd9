package identity

import "github.com/google/uuid"

// Generator produces identifiers that are unique per call
type Generator interface {
	NewID() string
}

// UUIDGenerator implements Generator with random (version 4) UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new UUID string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
