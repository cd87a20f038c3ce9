package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeenStoreHashStability(t *testing.T) {
	s := NewSeenStore("unused.json", 48)

	h1 := s.Hash("Breaking: markets tumble", "https://www.example.com/a")
	h2 := s.Hash("  breaking:   markets  tumble ", "http://example.com/b")
	assert.Equal(t, h1, h2, "case, spacing and path must not change the hash")

	h3 := s.Hash("Breaking: markets tumble", "https://other-site.example/a")
	assert.NotEqual(t, h1, h3, "different domain must change the hash")

	assert.Len(t, h1, 16)
}

func TestSeenStoreMarkAndCheck(t *testing.T) {
	s := NewSeenStore("unused.json", 48)

	h := s.Hash("Some headline", "https://example.com/x")
	assert.False(t, s.IsSeen(h))

	s.MarkSeen(h, "Some headline", "https://example.com/x", "Example News")
	assert.True(t, s.IsSeen(h))
	assert.Equal(t, 1, s.Count())
}

func TestSeenStoreSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")

	s := NewSeenStore(path, 48)
	h := s.Hash("Persisted headline", "https://example.com/y")
	s.MarkSeen(h, "Persisted headline", "https://example.com/y", "Example News")
	require.NoError(t, s.Save())

	reloaded := NewSeenStore(path, 48)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.IsSeen(h))
	assert.Equal(t, 1, reloaded.Count())
}

func TestSeenStoreLoadMissingFile(t *testing.T) {
	s := NewSeenStore(filepath.Join(t.TempDir(), "nope.json"), 48)
	assert.NoError(t, s.Load())
	assert.Zero(t, s.Count())
}

func TestWriteJSONCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "result.json")

	payload := map[string]any{"stacks": []string{"JP", "US"}}
	require.NoError(t, WriteJSON(path, payload))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "stacks")

	// Temp file from the atomic write must be gone
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
