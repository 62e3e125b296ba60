package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDefaultsToFirstPage(t *testing.T) {
	for _, param := range []string{"", "abc", "0", "-3", "1.5", " "} {
		window := Resolve(param, 13, 10)
		assert.Equalf(t, 1, window.Number, "param %q", param)
		assert.Equal(t, 0, window.Offset)
	}
}

func TestResolvePageSizes(t *testing.T) {
	const total, size = 13, 10

	first := Resolve("1", total, size)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 0, first.Offset)
	assert.Equal(t, 2, first.Pages)

	second := Resolve("2", total, size)
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, 10, second.Offset)
}

func TestResolveClampsToLastPage(t *testing.T) {
	// Requesting far past the end returns the same window as the last page.
	last := Resolve("2", 13, 10)
	overflow := Resolve("7", 13, 10)
	assert.Equal(t, last, overflow)
}

func TestResolveEmptyCollection(t *testing.T) {
	window := Resolve("3", 0, 10)
	assert.Equal(t, 1, window.Number)
	assert.Equal(t, 1, window.Pages)
	assert.Equal(t, 0, window.Offset)
}

func TestResolveExactMultiple(t *testing.T) {
	window := Resolve("2", 20, 10)
	assert.Equal(t, 2, window.Pages)
	assert.Equal(t, 10, window.Offset)
}

func TestNewPageNavigation(t *testing.T) {
	items := []int{1, 2, 3}

	first := NewPage(items, Resolve("1", 13, 10))
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)

	last := NewPage(items, Resolve("2", 13, 10))
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
	assert.Equal(t, 13, last.Total)
	assert.Equal(t, items, last.Items)
}
