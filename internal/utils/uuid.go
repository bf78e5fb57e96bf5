package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers for accounts and ciphers.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7 string so ids sort by creation time in the
// store. A random v4 is used if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	newV7 := g.newV7
	if newV7 == nil {
		newV7 = uuid.NewV7
	}

	v7, err := newV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
