package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(25, 2, 10)

	assert.Equal(t, int64(25), meta.TotalItems)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage)
}

func TestNewPageMetaExactFit(t *testing.T) {
	meta := NewPageMeta(20, 2, 10)

	assert.Equal(t, 2, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage)
}

func TestNewPageMetaEmpty(t *testing.T) {
	meta := NewPageMeta(0, 1, 10)

	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPreviousPage)
}

func TestNewPageMetaPastEnd(t *testing.T) {
	meta := NewPageMeta(5, 9, 10)

	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage)
}
