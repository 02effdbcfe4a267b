package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndExpire(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("catalog:list:a", 1)
	c.Set("catalog:list:b", 2, 10*time.Second)

	v, ok := c.GetValue("catalog:list:a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	now = now.Add(30 * time.Second)
	_, ok = c.GetValue("catalog:list:b")
	assert.False(t, ok)
	_, ok = c.GetValue("catalog:list:a")
	assert.True(t, ok)

	c.purge()
	assert.Equal(t, 1, c.Size())
}

func TestDeleteByPrefixAndClear(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set("catalog:list:1", "x")
	c.Set("catalog:list:2", "y")
	c.Set("blog:list", "z")

	c.DeleteByPrefix("catalog:list:")
	assert.Equal(t, 1, c.Size())

	c.Delete("blog:list")
	c.Set("k", 1)
	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestCloseIsIdempotent(t *testing.T) {
	c := New(time.Minute)
	c.Close()
	assert.NotPanics(t, c.Close)
}
