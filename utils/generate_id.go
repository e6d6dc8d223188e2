package utils

import "github.com/google/uuid"

// GenerateID returns a new opaque identifier for habits, logs, users and
// sessions. IDs are never reused.
func GenerateID() string {
	return uuid.New().String()
}
