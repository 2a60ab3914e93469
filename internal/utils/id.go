package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ShortID returns ten lowercase hex characters taken from a random UUID.
func ShortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

// NewID returns "<prefix>-<short id>".
func NewID(prefix string) string {
	return prefix + "-" + ShortID()
}
