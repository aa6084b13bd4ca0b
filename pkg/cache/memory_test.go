package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_TTL(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 20*time.Millisecond))

	b, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(b))

	time.Sleep(30 * time.Millisecond)
	_, ok, err = m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "expected expired key")
	assert.Equal(t, 0, m.Len())
}

func TestMemory_ZeroTTLNeverExpires(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 0, "blog"))
	time.Sleep(5 * time.Millisecond)

	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemory_InvalidateTags(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "/api/blogs?a", []byte("1"), 0, "blog"))
	require.NoError(t, m.Set(ctx, "/api/blogs?b", []byte("2"), 0, "blog", "explore-blog"))
	require.NoError(t, m.Set(ctx, "/api/faq", []byte("3"), 0, "faq"))

	n, err := m.InvalidateTags(ctx, "explore-blog")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, ok, _ := m.Get(ctx, "/api/blogs?b")
	assert.False(t, ok)
	_, ok, _ = m.Get(ctx, "/api/blogs?a")
	assert.True(t, ok)

	n, err = m.InvalidateTags(ctx, "blog", "blog", "missing")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, ok, _ = m.Get(ctx, "/api/faq")
	assert.True(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestMemory_SetReplacesTags(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("old"), 0, "a"))
	require.NoError(t, m.Set(ctx, "k", []byte("new"), 0, "b"))

	n, err := m.InvalidateTags(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	b, ok, _ := m.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "new", string(b))
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("abc"), 0))
	b, _, _ := m.Get(ctx, "k")
	b[0] = 'z'

	b2, _, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(b2))
}

func TestParseTTL(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"5m", 5 * time.Minute},
		{"30", 30 * time.Second},
		{"bogus", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTTL(tt.in), "ParseTTL(%q)", tt.in)
	}
}

func TestKey(t *testing.T) {
	k1 := Key("contentd", "GET", "/api/faq")
	k2 := Key("contentd", "GET", "/api/faq")
	k3 := Key("contentd", "GET", "/api/about-us")

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.Regexp(t, `^contentd:[0-9a-f]{40}$`, k1)
}

func TestMemory_EvictsOldestWhenFull(t *testing.T) {
	m := NewMemory(WithMaxEntries(3))
	ctx := context.Background()

	for i, k := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, m.Set(ctx, k, []byte{byte('0' + i)}, 0, "page-"+k))
	}
	assert.Equal(t, 3, m.Len())

	for _, k := range []string{"a", "b"} {
		_, ok, _ := m.Get(ctx, k)
		assert.False(t, ok, "%s should have been evicted", k)
	}
	for _, k := range []string{"c", "d", "e"} {
		_, ok, _ := m.Get(ctx, k)
		assert.True(t, ok, "%s should be kept", k)
	}

	// the evicted entry's tag index is gone too
	n, err := m.InvalidateTags(ctx, "page-a")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestMemory_EvictsExpiredBeforeOldest(t *testing.T) {
	m := NewMemory(WithMaxEntries(2))
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "old", []byte("1"), 0))
	require.NoError(t, m.Set(ctx, "short", []byte("2"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	require.NoError(t, m.Set(ctx, "new", []byte("3"), 0))

	_, ok, _ := m.Get(ctx, "old")
	assert.True(t, ok, "expired entry should be evicted first")
	_, ok, _ = m.Get(ctx, "new")
	assert.True(t, ok)
	assert.Equal(t, 2, m.Len())
}

func TestMemory_OverwriteDoesNotEvict(t *testing.T) {
	m := NewMemory(WithMaxEntries(2))
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), 0))
	require.NoError(t, m.Set(ctx, "a", []byte("3"), 0))

	_, ok, _ := m.Get(ctx, "b")
	assert.True(t, ok)
	b, ok, _ := m.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, "3", string(b))
}
