package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/pagination"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Post interface {
	HomeFeed(ctx context.Context, pageParam string) (pagination.Page[*model.FeedPost], error)
	GroupFeed(ctx context.Context, slug string, pageParam string) (*model.Group, pagination.Page[*model.FeedPost], error)
	ProfileFeed(ctx context.Context, username string, pageParam string) (*model.User, pagination.Page[*model.FeedPost], error)
	FollowingFeed(ctx context.Context, userID uuid.UUID, pageParam string) (pagination.Page[*model.FeedPost], error)
	FindByID(ctx context.Context, id int64) (*model.PostDetail, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, authorID uuid.UUID, input dto.PostForm, image *multipart.FileHeader) (*model.Post, error)
	Edit(ctx context.Context, id int64, input dto.PostForm, image *multipart.FileHeader) error
}

type Comment interface {
	Create(ctx context.Context, authorID uuid.UUID, postID int64, input dto.CommentForm) (*model.Comment, error)
}

type Follow interface {
	Follow(ctx context.Context, userID uuid.UUID, username string) error
	Unfollow(ctx context.Context, userID uuid.UUID, username string) error
	IsFollowing(ctx context.Context, userID uuid.UUID, authorID uuid.UUID) (bool, error)
}

type Group interface {
	Create(ctx context.Context, group model.Group) (*model.Group, error)
	FindBySlug(ctx context.Context, slug string) (*model.Group, error)
}

type User interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type Service struct {
	Post
	Comment
	Follow
	Group
	User
}

func New(logger *zap.Logger, repo *repository.Repository, storage FileStorage) *Service {
	return &Service{
		Post:    newPostService(logger, repo, storage),
		Comment: newCommentService(logger, repo),
		Follow:  newFollowService(logger, repo),
		Group:   newGroupService(logger, repo),
		User:    newUserService(logger, repo),
	}
}

// pageSize is shared by every feed; changing the config value changes all of
// them uniformly.
func pageSize() int {
	if size := viper.GetInt("feed.page_size"); size > 0 {
		return size
	}
	return pagination.DefaultPageSize
}

func homeFeedTTL() time.Duration {
	if seconds := viper.GetInt("feed.home_ttl_seconds"); seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return time.Minute
}
