package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNewestFirstWithoutBody(t *testing.T) {
	posts := Default().List("")
	require.Len(t, posts, 3)
	assert.Equal(t, "why-polarized-sunglasses", posts[0].Slug)
	for _, p := range posts {
		assert.Empty(t, p.Body)
	}
}

func TestListByTag(t *testing.T) {
	b := Default()
	assert.Len(t, b.List("LENSES"), 2)
	assert.Empty(t, b.List("contacts"))
}

func TestBySlug(t *testing.T) {
	p, ok := Default().BySlug("blue-light-glasses-do-they-work")
	require.True(t, ok)
	assert.NotEmpty(t, p.Body)

	_, ok = Default().BySlug("missing")
	assert.False(t, ok)
}

func TestSearchAndTags(t *testing.T) {
	b := Default()
	assert.Len(t, b.Search("glare"), 1)
	assert.Equal(t, []string{"frames", "guide", "health", "lenses", "sunglasses"}, b.Tags())
}

func TestFindCombinesTagAndQuery(t *testing.T) {
	b := Default()
	assert.Len(t, b.Find("lenses", "glare"), 1)
	assert.Empty(t, b.Find("frames", "glare"))
	assert.Len(t, b.Find("guide", ""), 1)
	assert.Len(t, b.Find("", ""), 3)
}
