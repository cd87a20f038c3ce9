package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// SeenArticle records an article that already went through the pipeline,
// so repeated runs in loop mode do not reprocess the same items.
type SeenArticle struct {
	Hash   string    `json:"hash"`
	Title  string    `json:"title"`
	Link   string    `json:"link"`
	Source string    `json:"source"`
	SeenAt time.Time `json:"seen_at"`
}

// SeenStore persists seen-article hashes in a JSON file with a TTL.
type SeenStore struct {
	filePath string
	ttlHours int
	items    map[string]SeenArticle
	mu       sync.RWMutex
}

func NewSeenStore(filePath string, ttlHours int) *SeenStore {
	return &SeenStore{
		filePath: filePath,
		ttlHours: ttlHours,
		items:    make(map[string]SeenArticle),
	}
}

// Load reads the store from disk, dropping entries past the TTL. A missing
// or empty file is not an error.
func (s *SeenStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read seen store: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	var items []SeenArticle
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to unmarshal seen store: %w", err)
	}

	cutoff := time.Now().Add(-time.Duration(s.ttlHours) * time.Hour)
	for _, item := range items {
		if item.SeenAt.After(cutoff) {
			s.items[item.Hash] = item
		}
	}

	return nil
}

func (s *SeenStore) Save() error {
	s.mu.RLock()
	items := make([]SeenArticle, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal seen store: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write seen store: %w", err)
	}

	return nil
}

// Hash builds a stable key from the normalized title and the link's domain.
func (s *SeenStore) Hash(title, link string) string {
	normalized := strings.ToLower(strings.TrimSpace(title))
	normalized = strings.Join(strings.Fields(normalized), " ")

	h := sha256.New()
	h.Write([]byte(normalized + "|" + extractDomain(link)))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (s *SeenStore) IsSeen(hash string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[hash]
	if !exists {
		return false
	}

	cutoff := time.Now().Add(-time.Duration(s.ttlHours) * time.Hour)
	return item.SeenAt.After(cutoff)
}

func (s *SeenStore) MarkSeen(hash, title, link, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[hash] = SeenArticle{
		Hash:   hash,
		Title:  title,
		Link:   link,
		Source: source,
		SeenAt: time.Now(),
	}
}

// Cleanup removes expired entries from memory.
func (s *SeenStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-time.Duration(s.ttlHours) * time.Hour)
	for hash, item := range s.items {
		if item.SeenAt.Before(cutoff) {
			delete(s.items, hash)
		}
	}
}

func (s *SeenStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func extractDomain(url string) string {
	if url == "" {
		return "unknown"
	}

	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "https://")

	parts := strings.Split(url, "/")
	if len(parts) == 0 {
		return "unknown"
	}

	domain := strings.TrimPrefix(parts[0], "www.")
	return strings.ToLower(domain)
}
