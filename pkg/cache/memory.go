package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// DefaultMaxEntries bounds a Memory store built without WithMaxEntries.
const DefaultMaxEntries = 10000

// Memory is a single-process Store with per-entry expiry. It holds at most
// maxEntries bodies; when full, expired entries go first, then the oldest.
type Memory struct {
	mu         sync.RWMutex
	items      map[string]memItem
	tags       map[string]map[string]struct{}
	order      *list.List // keys, oldest first
	maxEntries int
}

type memItem struct {
	b    []byte
	exp  time.Time
	tags []string
	elem *list.Element
}

type MemoryOption func(*Memory)

// WithMaxEntries caps the number of stored bodies. n <= 0 keeps the default.
func WithMaxEntries(n int) MemoryOption {
	return func(m *Memory) {
		if n > 0 {
			m.maxEntries = n
		}
	}
}

func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		items:      make(map[string]memItem),
		tags:       make(map[string]map[string]struct{}),
		order:      list.New(),
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	it, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !it.exp.IsZero() && time.Now().After(it.exp) {
		m.mu.Lock()
		// re-check
		if it2, ok2 := m.items[key]; ok2 && !it2.exp.IsZero() && time.Now().After(it2.exp) {
			m.deleteLocked(key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}
	out := make([]byte, len(it.b))
	copy(out, it.b)
	return out, true, nil
}

func (m *Memory) Set(_ context.Context, key string, data []byte, ttl time.Duration, tags ...string) error {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	b := make([]byte, len(data))
	copy(b, data)
	tags = uniqueTags(tags)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.deleteLocked(key)
	if len(m.items) >= m.maxEntries {
		m.evictLocked()
	}
	m.items[key] = memItem{b: b, exp: exp, tags: tags, elem: m.order.PushBack(key)}
	for _, t := range tags {
		keys, ok := m.tags[t]
		if !ok {
			keys = make(map[string]struct{})
			m.tags[t] = keys
		}
		keys[key] = struct{}{}
	}
	return nil
}

func (m *Memory) InvalidateTags(_ context.Context, tags ...string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range uniqueTags(tags) {
		for key := range m.tags[t] {
			if _, ok := m.items[key]; ok {
				m.deleteLocked(key)
				n++
			}
		}
		delete(m.tags, t)
	}
	return n, nil
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// evictLocked frees at least one slot. m.mu must be held.
func (m *Memory) evictLocked() {
	now := time.Now()
	for key, it := range m.items {
		if !it.exp.IsZero() && now.After(it.exp) {
			m.deleteLocked(key)
		}
	}
	for len(m.items) >= m.maxEntries {
		oldest := m.order.Front()
		if oldest == nil {
			return
		}
		m.deleteLocked(oldest.Value.(string))
	}
}

// deleteLocked drops key and its tag index entries. m.mu must be held.
func (m *Memory) deleteLocked(key string) {
	it, ok := m.items[key]
	if !ok {
		return
	}
	delete(m.items, key)
	m.order.Remove(it.elem)
	for _, t := range it.tags {
		if keys, ok := m.tags[t]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(m.tags, t)
			}
		}
	}
}
