package service_test

import (
	"context"
	"testing"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository/repotest"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	follower := store.AddUser(model.User{Username: "follower"})
	store.AddUser(model.User{Username: "author"})

	services := newTestService(store)

	require.NoError(t, services.Follow.Follow(ctx, follower.ID, "author"))
	require.NoError(t, services.Follow.Follow(ctx, follower.ID, "author"))

	assert.Equal(t, 1, store.FollowCount())
}

func TestSelfFollowCreatesNoEdge(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	me := store.AddUser(model.User{Username: "me"})

	services := newTestService(store)

	require.NoError(t, services.Follow.Follow(ctx, me.ID, "me"))

	assert.Equal(t, 0, store.FollowCount())
}

func TestUnfollowMissingEdgeSucceeds(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	follower := store.AddUser(model.User{Username: "follower"})
	store.AddUser(model.User{Username: "author"})

	services := newTestService(store)

	require.NoError(t, services.Follow.Unfollow(ctx, follower.ID, "author"))
	assert.Equal(t, 0, store.FollowCount())
}

func TestFollowUnknownUser(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	follower := store.AddUser(model.User{Username: "follower"})

	services := newTestService(store)

	err := services.Follow.Follow(ctx, follower.ID, "ghost")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestIsFollowingTracksEdges(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	follower := store.AddUser(model.User{Username: "follower"})
	author := store.AddUser(model.User{Username: "author"})

	services := newTestService(store)

	following, err := services.Follow.IsFollowing(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, following)

	require.NoError(t, services.Follow.Follow(ctx, follower.ID, "author"))

	following, err = services.Follow.IsFollowing(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// The edge is directional: author does not follow follower.
	reverse, err := services.Follow.IsFollowing(ctx, author.ID, follower.ID)
	require.NoError(t, err)
	assert.False(t, reverse)
}
