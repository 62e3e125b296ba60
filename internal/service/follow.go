package service

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type followService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newFollowService(logger *zap.Logger, repo *repository.Repository) Follow {
	return &followService{
		logger: logger,
		repo:   repo,
	}
}

// Follow creates the edge (userID follows username's owner) if it does not
// already exist. Self-follows are dropped silently; a repeated follow is a
// no-op thanks to the idempotent insert.
func (s *followService) Follow(ctx context.Context, userID uuid.UUID, username string) error {
	author, err := s.resolveAuthor(ctx, username)
	if err != nil {
		return err
	}

	if decision := CanFollow(userID, author.ID, username); !decision.Allowed {
		return nil
	}

	edge := model.Follow{UserID: userID, AuthorID: author.ID}
	if err := s.repo.Postgres.Follow.Create(ctx, edge); err != nil {
		s.logger.Sugar().Errorf("failed to create follow(%s -> %s): %s", userID.String(), author.ID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

// Unfollow removes the edge if present; absence is not an error.
func (s *followService) Unfollow(ctx context.Context, userID uuid.UUID, username string) error {
	author, err := s.resolveAuthor(ctx, username)
	if err != nil {
		return err
	}

	edge := model.Follow{UserID: userID, AuthorID: author.ID}
	if err := s.repo.Postgres.Follow.Delete(ctx, edge); err != nil {
		s.logger.Sugar().Errorf("failed to delete follow(%s -> %s): %s", userID.String(), author.ID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

func (s *followService) IsFollowing(ctx context.Context, userID uuid.UUID, authorID uuid.UUID) (bool, error) {
	following, err := s.repo.Postgres.Follow.Exists(ctx, model.Follow{UserID: userID, AuthorID: authorID})
	if err != nil {
		s.logger.Sugar().Errorf("failed to check follow(%s -> %s): %s", userID.String(), authorID.String(), err.Error())
		return false, ErrInternal
	}
	return following, nil
}

func (s *followService) resolveAuthor(ctx context.Context, username string) (*model.User, error) {
	author, err := s.repo.Postgres.User.FindByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		s.logger.Sugar().Errorf("failed to find user(%s) from postgres: %s", username, err.Error())
		return nil, ErrInternal
	}
	return author, nil
}
