package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostPreview(t *testing.T) {
	assert.Equal(t, "short", Post{Text: "short"}.Preview())
	assert.Equal(t, "exactly fifteen", Post{Text: "exactly fifteen chars and more"}.Preview())
	assert.Len(t, []rune(Post{Text: "это длинный текст на кириллице"}.Preview()), 15)
}
