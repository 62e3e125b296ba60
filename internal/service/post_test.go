package service_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository/repotest"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPosts(store *repotest.Store, author model.User, n int) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		store.AddPost(model.Post{
			AuthorID: author.ID,
			Text:     fmt.Sprintf("post %d", i),
			PubDate:  base.Add(time.Duration(i) * time.Minute),
		})
	}
}

func TestHomeFeedPagination(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	author := store.AddUser(model.User{Username: "author"})
	seedPosts(store, author, 13)

	services := newTestService(store)

	first, err := services.Post.HomeFeed(ctx, "")
	require.NoError(t, err)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, first.Pages)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)

	second, err := services.Post.HomeFeed(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, second.Items, 3)
	assert.False(t, second.HasNext)

	// Out-of-range page numbers clamp to the last page.
	overflow, err := services.Post.HomeFeed(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, second.Number, overflow.Number)
	assert.Len(t, overflow.Items, 3)

	// Non-numeric parameters fall back to page 1.
	fallback, err := services.Post.HomeFeed(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, fallback.Number)
	assert.Len(t, fallback.Items, 10)
}

func TestHomeFeedNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	author := store.AddUser(model.User{Username: "author"})
	seedPosts(store, author, 13)

	services := newTestService(store)

	page, err := services.Post.HomeFeed(ctx, "1")
	require.NoError(t, err)
	require.NotEmpty(t, page.Items)

	assert.Equal(t, "post 12", page.Items[0].Post.Text)
	for i := 1; i < len(page.Items); i++ {
		prev, cur := page.Items[i-1].Post, page.Items[i].Post
		assert.True(t, prev.PubDate.After(cur.PubDate) || (prev.PubDate.Equal(cur.PubDate) && prev.ID > cur.ID))
	}
}

func TestHomeFeedServedFromCache(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	author := store.AddUser(model.User{Username: "author"})
	seedPosts(store, author, 5)

	services := newTestService(store)

	before, err := services.Post.HomeFeed(ctx, "1")
	require.NoError(t, err)
	require.Len(t, before.Items, 5)

	// A write after the page was cached is not visible until the TTL expires.
	store.AddPost(model.Post{AuthorID: author.ID, Text: "fresh"})

	after, err := services.Post.HomeFeed(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, after.Items, 5)
	assert.Equal(t, before.Items[0].Post.Text, after.Items[0].Post.Text)
}

func TestGroupFeedFiltersAndResolvesGroup(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	author := store.AddUser(model.User{Username: "author"})
	group := store.AddGroup(model.Group{Title: "Cats", Slug: "cats", Description: "cat posts"})
	store.AddPost(model.Post{AuthorID: author.ID, GroupID: &group.ID, Text: "in group"})
	store.AddPost(model.Post{AuthorID: author.ID, Text: "no group"})

	services := newTestService(store)

	resolved, page, err := services.Post.GroupFeed(ctx, "cats", "")
	require.NoError(t, err)
	assert.Equal(t, "Cats", resolved.Title)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "in group", page.Items[0].Post.Text)
	require.NotNil(t, page.Items[0].Group)
	assert.Equal(t, "cats", page.Items[0].Group.Slug)

	_, _, err = services.Post.GroupFeed(ctx, "unknown", "")
	assert.ErrorIs(t, err, service.ErrGroupNotFound)
}

func TestProfileFeedUnknownUser(t *testing.T) {
	store := repotest.New()
	services := newTestService(store)

	_, _, err := services.Post.ProfileFeed(context.Background(), "ghost", "")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestFollowingFeedOnlyFollowedAuthors(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	reader := store.AddUser(model.User{Username: "reader"})
	followed := store.AddUser(model.User{Username: "followed"})
	ignored := store.AddUser(model.User{Username: "ignored"})
	store.AddPost(model.Post{AuthorID: followed.ID, Text: "wanted"})
	store.AddPost(model.Post{AuthorID: ignored.ID, Text: "unwanted"})

	services := newTestService(store)
	require.NoError(t, services.Follow.Follow(ctx, reader.ID, "followed"))

	page, err := services.Post.FollowingFeed(ctx, reader.ID, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "wanted", page.Items[0].Post.Text)
}

func TestCreateSetsAuthorAndGroup(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	author := store.AddUser(model.User{Username: "author"})
	group := store.AddGroup(model.Group{Title: "Cats", Slug: "cats", Description: "cat posts"})

	services := newTestService(store)

	post, err := services.Post.Create(ctx, author.ID, dto.PostForm{Text: "hello", Group: "cats"}, nil)
	require.NoError(t, err)
	assert.Equal(t, author.ID, post.AuthorID)
	require.NotNil(t, post.GroupID)
	assert.Equal(t, group.ID, *post.GroupID)
	assert.False(t, post.PubDate.IsZero())

	_, err = services.Post.Create(ctx, author.ID, dto.PostForm{Text: "hello", Group: "nope"}, nil)
	assert.ErrorIs(t, err, service.ErrGroupNotFound)
}

func imageFileHeader(t *testing.T, filename string) *multipart.FileHeader {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a png"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("image")
	require.NoError(t, err)
	return header
}

func TestCreateWithImageStoresUploadedURL(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	author := store.AddUser(model.User{Username: "author"})

	services, storage := newTestServiceWithStorage(store)

	post, err := services.Post.Create(ctx, author.ID, dto.PostForm{Text: "with image"}, imageFileHeader(t, "cat.png"))
	require.NoError(t, err)
	require.NotNil(t, post.ImageURL)
	assert.Equal(t, "https://cdn.test/posts/cat.png", *post.ImageURL)
	assert.Equal(t, []string{"https://cdn.test/posts/cat.png"}, storage.uploads)

	// An edit without a replacement image keeps the stored one.
	require.NoError(t, services.Post.Edit(ctx, post.ID, dto.PostForm{Text: "edited"}, nil))

	stored := store.PostByID(post.ID)
	require.NotNil(t, stored)
	require.NotNil(t, stored.ImageURL)
	assert.Equal(t, "https://cdn.test/posts/cat.png", *stored.ImageURL)
	assert.Equal(t, "edited", stored.Text)
	assert.Len(t, storage.uploads, 1)
}

func TestCreateInvalidatesCachedFirstPage(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	author := store.AddUser(model.User{Username: "author"})
	seedPosts(store, author, 5)

	services := newTestService(store)

	before, err := services.Post.HomeFeed(ctx, "1")
	require.NoError(t, err)
	require.Len(t, before.Items, 5)

	_, err = services.Post.Create(ctx, author.ID, dto.PostForm{Text: "fresh"}, nil)
	require.NoError(t, err)

	// Unlike a write that bypasses the service, a created post is visible on
	// the first page right away.
	after, err := services.Post.HomeFeed(ctx, "1")
	require.NoError(t, err)
	require.Len(t, after.Items, 6)
	assert.Equal(t, "fresh", after.Items[0].Post.Text)
}

func TestEditUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	author := store.AddUser(model.User{Username: "author"})
	post := store.AddPost(model.Post{AuthorID: author.ID, Text: "before"})

	services := newTestService(store)

	require.NoError(t, services.Post.Edit(ctx, post.ID, dto.PostForm{Text: "after"}, nil))

	stored := store.PostByID(post.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "after", stored.Text)
	assert.Equal(t, post.ID, stored.ID)
	assert.Equal(t, author.ID, stored.AuthorID)
	assert.True(t, stored.PubDate.Equal(post.PubDate))
}
