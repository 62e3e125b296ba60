package service_test

import (
	"context"
	"testing"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository/repotest"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreate(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	author := store.AddUser(model.User{Username: "author"})
	commenter := store.AddUser(model.User{Username: "commenter"})
	post := store.AddPost(model.Post{AuthorID: author.ID, Text: "a post"})

	services := newTestService(store)

	comment, err := services.Comment.Create(ctx, commenter.ID, post.ID, dto.CommentForm{Text: "nice post"})
	require.NoError(t, err)
	assert.Equal(t, commenter.ID, comment.AuthorID)
	require.NotNil(t, comment.PostID)
	assert.Equal(t, post.ID, *comment.PostID)
	assert.False(t, comment.Created.IsZero())

	detail, err := services.Post.FindByID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "nice post", detail.Comments[0].Comment.Text)
	assert.Equal(t, "commenter", detail.Comments[0].Author.Username)
}

func TestCommentCreateMissingPost(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	commenter := store.AddUser(model.User{Username: "commenter"})

	services := newTestService(store)

	_, err := services.Comment.Create(ctx, commenter.ID, 999, dto.CommentForm{Text: "into the void"})
	assert.ErrorIs(t, err, service.ErrPostNotFound)
	assert.Empty(t, store.Comments())
}

func TestGroupCreateDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	store.AddGroup(model.Group{Title: "Cats", Slug: "cats", Description: "cat posts"})

	services := newTestService(store)

	_, err := services.Group.Create(ctx, model.Group{Title: "Other cats", Slug: "cats", Description: "dupe"})
	assert.ErrorIs(t, err, service.ErrSlugTaken)
}
