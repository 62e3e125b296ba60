package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanEditPost(t *testing.T) {
	author := uuid.New()
	other := uuid.New()

	decision := CanEditPost(author, author, 42)
	assert.True(t, decision.Allowed)

	decision = CanEditPost(other, author, 42)
	assert.False(t, decision.Allowed)
	assert.Equal(t, "/posts/42/", decision.RedirectTo)
}

func TestCanFollowRejectsSelf(t *testing.T) {
	me := uuid.New()

	decision := CanFollow(me, me, "me")
	assert.False(t, decision.Allowed)
	assert.Equal(t, "/profile/me/", decision.RedirectTo)

	decision = CanFollow(me, uuid.New(), "someone")
	assert.True(t, decision.Allowed)
}
