package postgres

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type User interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type Group interface {
	Create(ctx context.Context, group model.Group) (*model.Group, error)
	FindBySlug(ctx context.Context, slug string) (*model.Group, error)
}

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	Update(ctx context.Context, id int64, text string, groupID *int64, imageURL *string) error
	Exists(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*model.FeedPost, error)
	CountAll(ctx context.Context) (int, error)
	FindAll(ctx context.Context, limit int, offset int) ([]*model.FeedPost, error)
	CountByGroup(ctx context.Context, groupID int64) (int, error)
	FindByGroup(ctx context.Context, groupID int64, limit int, offset int) ([]*model.FeedPost, error)
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.FeedPost, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int, error)
	FindFollowing(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*model.FeedPost, error)
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64) ([]*model.FullComment, error)
}

type Follow interface {
	Create(ctx context.Context, follow model.Follow) error
	Delete(ctx context.Context, follow model.Follow) error
	Exists(ctx context.Context, follow model.Follow) (bool, error)
}

type PostgresRepository struct {
	User
	Group
	Post
	Comment
	Follow
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		User:    newUserRepo(db),
		Group:   newGroupRepo(db),
		Post:    newPostRepo(db),
		Comment: newCommentRepo(db),
		Follow:  newFollowRepo(db),
	}
}
