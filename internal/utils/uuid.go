package utils

import "github.com/google/uuid"

// UUIDGenerator issues UUID v7 identifiers, so rows keyed by them sort by
// creation time. Safe for concurrent use.
type UUIDGenerator struct {
	newUUID func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newUUID: uuid.NewV7}
}

// Generate falls back to a random v4 when the v7 source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newUUID()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
