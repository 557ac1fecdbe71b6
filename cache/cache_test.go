package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Basic(t *testing.T) {
	c := New[string, int](10)

	c.Set("disp-1", 1)
	c.Set("erx-1", 2)

	v, ok := c.Get("disp-1")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestCache_Eviction(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), c.Stats().Evicts)
}

func TestCache_Update(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("a", 2)
	v, _ := c.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Delete("a")
	assert.Equal(t, 1, c.Len())
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCache_GetOrLoad(t *testing.T) {
	c := New[string, string](4)
	calls := 0
	load := func() (string, error) {
		calls++
		return "compiled", nil
	}

	v, hit, err := c.GetOrLoad("expr", load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "compiled", v)

	v, hit, err = c.GetOrLoad("expr", load)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "compiled", v)
	assert.Equal(t, 1, calls)

	_, _, err = c.GetOrLoad("bad", func() (string, error) { return "", errors.New("syntax error") })
	assert.Error(t, err)
	_, ok := c.Get("bad")
	assert.False(t, ok, "failed loads must not be cached")
}

func TestCache_Stats(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1)
	c.Get("a")
	c.Get("b")

	s := c.Stats()
	assert.Equal(t, 100, s.Capacity)
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.InDelta(t, 0.5, s.HitRate, 0.0001)
}

func TestCache_Concurrent(t *testing.T) {
	c := New[string, int](50)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%80)
				_, _, _ = c.GetOrLoad(key, func() (int, error) { return i, nil })
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 50)
}

func BenchmarkCache_GetOrLoad(b *testing.B) {
	c := New[string, int](64)
	for i := 0; i < b.N; i++ {
		_, _, _ = c.GetOrLoad("k", func() (int, error) { return i, nil })
	}
}
