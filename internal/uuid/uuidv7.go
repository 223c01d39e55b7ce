// Package uuid generates and checks the string identifiers used as primary
// keys. Identifiers are UUIDv7, so they sort by creation time.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a new UUIDv7 string. If the time-ordered generator fails it
// falls back to a random UUIDv4 so inserts never fail on id generation.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates s and returns it in canonical lower-case form.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}
