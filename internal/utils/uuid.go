package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers used to correlate the log
// lines of a single dispatched request.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// CompactUUID parses a player UUID in any form google/uuid accepts (dashed,
// undashed, braced or urn) and returns it as 32 lowercase hex digits, the form
// the java Realms API reports in player lists. Values that are not UUIDs, such
// as bedrock XUIDs, are returned trimmed and unchanged with ok == false.
func CompactUUID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	id, err := uuid.Parse(s)
	if err != nil {
		return s, false
	}
	return strings.ReplaceAll(id.String(), "-", ""), true
}
