package model

import "github.com/google/uuid"

// NewID returns a fresh unique identifier. UUIDv7 ids are
// time-ordered, so later ids always sort after earlier ones; task ids
// and plant instance ids both rely on that.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the random source does; fall back to v4
		// rather than crash over an id.
		return uuid.NewString()
	}
	return id.String()
}
