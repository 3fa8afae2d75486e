package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	seen := make(map[string]struct{}, 100)
	for range 100 {
		id := g.Generate()

		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())

		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestUUIDGenerator_SortsByCreation(t *testing.T) {
	g := NewUUIDGenerator()
	first := g.Generate()
	second := g.Generate()
	assert.Less(t, first, second)
}

func TestIDFunc(t *testing.T) {
	n := 0
	g := IDFunc(func() string { n++; return "id-" + string(rune('0'+n)) })
	assert.Equal(t, "id-1", g.Generate())
	assert.Equal(t, "id-2", g.Generate())
}
