package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobOwner(t *testing.T) {
	poster := User{ID: uuid.New(), Name: "Alice", Role: RoleAlumni}

	bare := (&Job{PostedByID: poster.ID}).Owner()
	assert.False(t, bare.Expanded())
	assert.Nil(t, bare.Record())
	assert.Equal(t, poster.ID, bare.ID())
	assert.True(t, bare.Is(poster.ID))

	expanded := (&Job{PostedByID: poster.ID, PostedBy: &poster}).Owner()
	require.True(t, expanded.Expanded())
	assert.Equal(t, "Alice", expanded.Record().Name)
	assert.Equal(t, poster.ID, expanded.ID())

	// An empty preloaded record falls back to the bare id.
	assert.False(t, (&Job{PostedByID: poster.ID, PostedBy: &User{}}).Owner().Expanded())

	assert.False(t, bare.Is(uuid.Nil))
	assert.False(t, bare.Is(uuid.New()))
}
