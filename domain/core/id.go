package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Falls back to v4 if v7 is not available
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	DrawID   ID
	ReportID ID
)

func (id DrawID) String() string   { return ID(id).String() }
func (id ReportID) String() string { return ID(id).String() }

// GameType identifies a lottery game variant (e.g. "lotto", "mini").
type GameType string

func (g GameType) String() string { return string(g) }

// ParseGameType parses a string into a GameType
func ParseGameType(s string) (GameType, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("game type cannot be empty")
	}
	return GameType(strings.ToLower(strings.TrimSpace(s))), nil
}
