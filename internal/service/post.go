package service

import (
	"context"
	"mime/multipart"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/pagination"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// postImagePath namespaces uploaded images in the storage backend.
const postImagePath = "posts"

type postService struct {
	logger  *zap.Logger
	repo    *repository.Repository
	storage FileStorage
}

func newPostService(logger *zap.Logger, repo *repository.Repository, storage FileStorage) Post {
	return &postService{
		logger:  logger,
		repo:    repo,
		storage: storage,
	}
}

// HomeFeed serves the requested page from redis when possible. The cache key
// ignores the principal, and staleness up to the TTL is acceptable; every
// other feed is computed fresh.
func (s *postService) HomeFeed(ctx context.Context, pageParam string) (pagination.Page[*model.FeedPost], error) {
	size := pageSize()

	total, err := s.repo.Postgres.Post.CountAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count posts: %s", err.Error())
		return pagination.Page[*model.FeedPost]{}, ErrInternal
	}
	window := pagination.Resolve(pageParam, total, size)

	key := redisrepo.HomeFeedKey(window.Number, size)
	cached, err := redisrepo.Get[pagination.Page[*model.FeedPost]](s.repo.Redis.Default, ctx, key)
	if err == nil && cached != nil {
		return *cached, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get home feed page(%d) from redis: %s", window.Number, err.Error())
	}

	posts, err := s.repo.Postgres.Post.FindAll(ctx, window.Size, window.Offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts from postgres: %s", err.Error())
		return pagination.Page[*model.FeedPost]{}, ErrInternal
	}

	page := pagination.NewPage(posts, window)

	if err := s.repo.Redis.Default.SetJSON(ctx, key, page, homeFeedTTL()); err != nil {
		s.logger.Sugar().Errorf("failed to set home feed page(%d) in redis: %s", window.Number, err.Error())
	}

	return page, nil
}

func (s *postService) GroupFeed(ctx context.Context, slug string, pageParam string) (*model.Group, pagination.Page[*model.FeedPost], error) {
	var zero pagination.Page[*model.FeedPost]

	group, err := s.repo.Postgres.Group.FindBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, zero, ErrGroupNotFound
		}
		s.logger.Sugar().Errorf("failed to find group(%s) from postgres: %s", slug, err.Error())
		return nil, zero, ErrInternal
	}

	total, err := s.repo.Postgres.Post.CountByGroup(ctx, group.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count group(%s) posts: %s", slug, err.Error())
		return nil, zero, ErrInternal
	}
	window := pagination.Resolve(pageParam, total, pageSize())

	posts, err := s.repo.Postgres.Post.FindByGroup(ctx, group.ID, window.Size, window.Offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find group(%s) posts from postgres: %s", slug, err.Error())
		return nil, zero, ErrInternal
	}

	return group, pagination.NewPage(posts, window), nil
}

func (s *postService) ProfileFeed(ctx context.Context, username string, pageParam string) (*model.User, pagination.Page[*model.FeedPost], error) {
	var zero pagination.Page[*model.FeedPost]

	author, err := s.repo.Postgres.User.FindByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, zero, ErrUserNotFound
		}
		s.logger.Sugar().Errorf("failed to find user(%s) from postgres: %s", username, err.Error())
		return nil, zero, ErrInternal
	}

	total, err := s.repo.Postgres.Post.CountByAuthor(ctx, author.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count author(%s) posts: %s", username, err.Error())
		return nil, zero, ErrInternal
	}
	window := pagination.Resolve(pageParam, total, pageSize())

	posts, err := s.repo.Postgres.Post.FindByAuthor(ctx, author.ID, window.Size, window.Offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find author(%s) posts from postgres: %s", username, err.Error())
		return nil, zero, ErrInternal
	}

	return author, pagination.NewPage(posts, window), nil
}

func (s *postService) FollowingFeed(ctx context.Context, userID uuid.UUID, pageParam string) (pagination.Page[*model.FeedPost], error) {
	var zero pagination.Page[*model.FeedPost]

	total, err := s.repo.Postgres.Post.CountFollowing(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count followed posts for user(%s): %s", userID.String(), err.Error())
		return zero, ErrInternal
	}
	window := pagination.Resolve(pageParam, total, pageSize())

	posts, err := s.repo.Postgres.Post.FindFollowing(ctx, userID, window.Size, window.Offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find followed posts for user(%s): %s", userID.String(), err.Error())
		return zero, ErrInternal
	}

	return pagination.NewPage(posts, window), nil
}

// FindByID returns one post with its comments and their authors resolved.
func (s *postService) FindByID(ctx context.Context, id int64) (*model.PostDetail, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d) from postgres: %s", id, err.Error())
		return nil, ErrInternal
	}

	comments, err := s.repo.Postgres.Comment.FindPostComments(ctx, id)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) comments from postgres: %s", id, err.Error())
		return nil, ErrInternal
	}

	return &model.PostDetail{
		FeedPost: *post,
		Comments: comments,
	}, nil
}

func (s *postService) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := s.repo.Postgres.Post.Exists(ctx, id)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check post(%d) existence: %s", id, err.Error())
		return false, ErrInternal
	}
	return exists, nil
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, input dto.PostForm, image *multipart.FileHeader) (*model.Post, error) {
	groupID, err := s.resolveGroup(ctx, input.Group)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.uploadImage(image)
	if err != nil {
		return nil, err
	}

	post := model.Post{
		AuthorID: authorID,
		GroupID:  groupID,
		Text:     input.Text,
		ImageURL: imageURL,
	}

	createdPost, err := s.repo.Postgres.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	// A new post lands on the first home page; drop that cache entry so it
	// shows up without waiting out the TTL. Deeper pages age out on their own.
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.HomeFeedKey(1, pageSize())).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate home feed first page in redis: %s", err.Error())
	}

	return createdPost, nil
}

// Edit updates the mutable fields in place. The author gate runs before this
// is called; identifier, author and pub_date never change.
func (s *postService) Edit(ctx context.Context, id int64, input dto.PostForm, image *multipart.FileHeader) error {
	groupID, err := s.resolveGroup(ctx, input.Group)
	if err != nil {
		return err
	}

	imageURL, err := s.uploadImage(image)
	if err != nil {
		return err
	}

	if err := s.repo.Postgres.Post.Update(ctx, id, input.Text, groupID, imageURL); err != nil {
		s.logger.Sugar().Errorf("failed to update post(%d): %s", id, err.Error())
		return ErrInternal
	}

	return nil
}

func (s *postService) resolveGroup(ctx context.Context, slug string) (*int64, error) {
	if slug == "" {
		return nil, nil
	}

	group, err := s.repo.Postgres.Group.FindBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrGroupNotFound
		}
		s.logger.Sugar().Errorf("failed to find group(%s) from postgres: %s", slug, err.Error())
		return nil, ErrInternal
	}

	return &group.ID, nil
}

func (s *postService) uploadImage(image *multipart.FileHeader) (*string, error) {
	if image == nil {
		return nil, nil
	}

	file, err := image.Open()
	if err != nil {
		s.logger.Sugar().Errorf("failed to open uploaded image: %s", err.Error())
		return nil, ErrInternal
	}
	defer file.Close()

	url, err := s.storage.Upload(postImagePath, file, image)
	if err != nil {
		return nil, err
	}

	return &url, nil
}
