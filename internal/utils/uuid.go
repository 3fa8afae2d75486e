package utils

import "github.com/google/uuid"

// IDFunc issues entity identifiers.
type IDFunc func() string

func (f IDFunc) Generate() string { return f() }

// NewUUIDGenerator issues version 7 UUIDs. They sort by creation time, so
// versions of a prompt ordered by id come out oldest first.
func NewUUIDGenerator() IDFunc {
	return newUUIDv7
}

func newUUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
