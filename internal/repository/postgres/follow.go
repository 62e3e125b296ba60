package postgres

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type followRepo struct {
	db *pgxpool.Pool
}

func newFollowRepo(db *pgxpool.Pool) Follow {
	return &followRepo{
		db: db,
	}
}

// Create inserts the edge if absent. ON CONFLICT against the unique
// (user_id, author_id) pair keeps a concurrent double-submission from
// producing duplicate edges.
func (r *followRepo) Create(ctx context.Context, follow model.Follow) error {
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO follows(user_id, author_id) VALUES($1, $2) ON CONFLICT (user_id, author_id) DO NOTHING",
		follow.UserID,
		follow.AuthorID,
	)
	return err
}

// Delete removes the edge; a missing edge is not an error.
func (r *followRepo) Delete(ctx context.Context, follow model.Follow) error {
	_, err := r.db.Exec(ctx, "DELETE FROM follows WHERE user_id = $1 AND author_id = $2", follow.UserID, follow.AuthorID)
	return err
}

func (r *followRepo) Exists(ctx context.Context, follow model.Follow) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM follows WHERE user_id = $1 AND author_id = $2)",
		follow.UserID,
		follow.AuthorID,
	).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
