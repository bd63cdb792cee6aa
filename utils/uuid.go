package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique bid identifier
func GenerateID() string {
	return uuid.New().String()
}
