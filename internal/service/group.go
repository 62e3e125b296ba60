package service

import (
	"context"
	"errors"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// uniqueViolation is the postgres error code for a unique constraint failure.
const uniqueViolation = "23505"

type groupService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newGroupService(logger *zap.Logger, repo *repository.Repository) Group {
	return &groupService{
		logger: logger,
		repo:   repo,
	}
}

// Create is administrative; a duplicate slug surfaces as ErrSlugTaken to the
// caller rather than being swallowed.
func (s *groupService) Create(ctx context.Context, group model.Group) (*model.Group, error) {
	createdGroup, err := s.repo.Postgres.Group.Create(ctx, group)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrSlugTaken
		}
		s.logger.Sugar().Errorf("failed to create group(%s): %s", group.Slug, err.Error())
		return nil, ErrInternal
	}

	return createdGroup, nil
}

func (s *groupService) FindBySlug(ctx context.Context, slug string) (*model.Group, error) {
	group, err := s.repo.Postgres.Group.FindBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrGroupNotFound
		}
		s.logger.Sugar().Errorf("failed to find group(%s) from postgres: %s", slug, err.Error())
		return nil, ErrInternal
	}

	return group, nil
}
