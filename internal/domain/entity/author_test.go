package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthor(t *testing.T) {
	author, err := NewAuthor("Bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", author.Name())
	assert.Equal(t, "Bob", author.String())
}

func TestNewAuthor_EmptyName(t *testing.T) {
	author, err := NewAuthor("")
	assert.Nil(t, author)
	assert.ErrorIs(t, err, ErrValue)
}

func TestAuthor_SetName_Immutable(t *testing.T) {
	author, err := NewAuthor("Bob")
	require.NoError(t, err)

	for _, name := range []string{"Robert", "", "Bob"} {
		err := author.SetName(name)
		assert.ErrorIs(t, err, ErrImmutable)
	}
	assert.Equal(t, "Bob", author.Name())
}

func TestAuthor_DistinctIdentity(t *testing.T) {
	a1, err := NewAuthor("Alice")
	require.NoError(t, err)
	a2, err := NewAuthor("Alice")
	require.NoError(t, err)

	assert.NotSame(t, a1, a2)
	assert.NotEqual(t, a1.ID(), a2.ID())
}
