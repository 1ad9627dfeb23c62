package casing

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// MemoizedNormalizer caches the output of another LineNormalizer for repeated lines.
// Normalization is pure, so cached and fresh results are identical.
type MemoizedNormalizer struct {
	next  LineNormalizer
	cache *lru.Cache
}

// NewMemoizedNormalizer wraps next with an LRU cache holding up to size lines.
func NewMemoizedNormalizer(next LineNormalizer, size int) (*MemoizedNormalizer, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("casing: create line cache: %w", err)
	}
	return &MemoizedNormalizer{next: next, cache: cache}, nil
}

// Normalize returns the cached result for line, computing it on a miss.
func (m *MemoizedNormalizer) Normalize(line string) string {
	if cached, ok := m.cache.Get(line); ok {
		return cached.(string)
	}
	out := m.next.Normalize(line)
	m.cache.Add(line, out)
	return out
}
