package pagination

import (
	"strconv"
	"strings"
)

// DefaultPageSize is the shared page size for every feed unless overridden in
// config.
const DefaultPageSize = 10

// Window describes which slice of an ordered collection one request sees.
type Window struct {
	Number int
	Size   int
	Offset int
	Total  int
	Pages  int
}

// Resolve turns a raw page query parameter into a valid window over total
// items. An absent, non-numeric, zero or negative parameter falls back to the
// first page; a number past the end clamps to the last page, so callers never
// serve an empty page for an out-of-range request.
func Resolve(param string, total, size int) Window {
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}

	number, err := strconv.Atoi(strings.TrimSpace(param))
	if err != nil || number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}

	return Window{
		Number: number,
		Size:   size,
		Offset: (number - 1) * size,
		Total:  total,
		Pages:  pages,
	}
}

// Page is one bounded page of items plus the metadata needed to render
// next/previous navigation.
type Page[T any] struct {
	Items   []T  `json:"items"`
	Number  int  `json:"number"`
	Pages   int  `json:"pages"`
	Total   int  `json:"total"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

func NewPage[T any](items []T, w Window) Page[T] {
	return Page[T]{
		Items:   items,
		Number:  w.Number,
		Pages:   w.Pages,
		Total:   w.Total,
		HasNext: w.Number < w.Pages,
		HasPrev: w.Number > 1,
	}
}
