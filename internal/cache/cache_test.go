package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	c := New()

	c.Set("key", "value", time.Minute)

	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestGetMissing(t *testing.T) {
	c := New()

	_, ok := c.Get("nothing")
	assert.False(t, ok)
}

func TestExpiredEntryNotReturned(t *testing.T) {
	c := New()

	c.Set("ephemeral", 42, -time.Second)

	_, ok := c.Get("ephemeral")
	assert.False(t, ok)
}

func TestGenerateKeyDistinguishesParts(t *testing.T) {
	c := New()

	// Boundary between parts matters
	assert.NotEqual(t, c.GenerateKey("ab", "c"), c.GenerateKey("a", "bc"))
	assert.Equal(t, c.GenerateKey("a", "b"), c.GenerateKey("a", "b"))
}
