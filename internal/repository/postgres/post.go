package postgres

import (
	"context"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// feedSelect resolves the author and the optional group in the same pass as
// the posts themselves, so every feed costs a constant number of round trips.
const feedSelect = `SELECT
	p.id, p.author_id, p.group_id, p.text, p.image_url, p.pub_date,
	u.id, u.username, u.display_name, u.avatar_url,
	g.id, g.title, g.slug, g.description
	FROM posts p
	JOIN users u ON p.author_id = u.id
	LEFT JOIN groups g ON p.group_id = g.id`

// feedOrder is the default newest-first ordering; the id tiebreak keeps it
// strict for posts sharing a pub_date.
const feedOrder = ` ORDER BY p.pub_date DESC, p.id DESC`

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	post.PubDate = time.Now()
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO posts(text, pub_date, author_id, group_id, image_url) VALUES($1, $2, $3, $4, $5) RETURNING id",
		post.Text,
		post.PubDate,
		post.AuthorID,
		post.GroupID,
		post.ImageURL,
	).Scan(&post.ID); err != nil {
		return nil, err
	}

	return &post, nil
}

// Update rewrites the mutable fields only; pub_date and author_id are set once
// at creation. A nil imageURL keeps whatever image the post already has.
func (r *postRepo) Update(ctx context.Context, id int64, text string, groupID *int64, imageURL *string) error {
	_, err := r.db.Exec(
		ctx,
		"UPDATE posts SET text = $1, group_id = $2, image_url = COALESCE($3, image_url) WHERE id = $4",
		text,
		groupID,
		imageURL,
		id,
	)
	return err
}

func (r *postRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)", id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.FeedPost, error) {
	row := r.db.QueryRow(ctx, feedSelect+" WHERE p.id = $1", id)

	post, err := scanFeedPostRow(row)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (r *postRepo) CountAll(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM posts").Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *postRepo) FindAll(ctx context.Context, limit int, offset int) ([]*model.FeedPost, error) {
	rows, err := r.db.Query(ctx, feedSelect+feedOrder+" LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeedPosts(rows)
}

func (r *postRepo) CountByGroup(ctx context.Context, groupID int64) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM posts WHERE group_id = $1", groupID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *postRepo) FindByGroup(ctx context.Context, groupID int64, limit int, offset int) ([]*model.FeedPost, error) {
	rows, err := r.db.Query(ctx, feedSelect+" WHERE p.group_id = $1"+feedOrder+" LIMIT $2 OFFSET $3", groupID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeedPosts(rows)
}

func (r *postRepo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM posts WHERE author_id = $1", authorID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *postRepo) FindByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.FeedPost, error) {
	rows, err := r.db.Query(ctx, feedSelect+" WHERE p.author_id = $1"+feedOrder+" LIMIT $2 OFFSET $3", authorID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeedPosts(rows)
}

func (r *postRepo) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	var total int
	if err := r.db.QueryRow(
		ctx,
		"SELECT COUNT(*) FROM posts p JOIN follows f ON f.author_id = p.author_id WHERE f.user_id = $1",
		userID,
	).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *postRepo) FindFollowing(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*model.FeedPost, error) {
	rows, err := r.db.Query(
		ctx,
		feedSelect+" JOIN follows f ON f.author_id = p.author_id WHERE f.user_id = $1"+feedOrder+" LIMIT $2 OFFSET $3",
		userID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeedPosts(rows)
}

func scanFeedPostRow(row pgx.Row) (*model.FeedPost, error) {
	var (
		post        model.Post
		author      model.User
		groupID     *int64
		title       *string
		slug        *string
		description *string
	)
	if err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.GroupID,
		&post.Text,
		&post.ImageURL,
		&post.PubDate,
		&author.ID,
		&author.Username,
		&author.DisplayName,
		&author.AvatarURL,
		&groupID,
		&title,
		&slug,
		&description,
	); err != nil {
		return nil, err
	}

	feedPost := &model.FeedPost{
		Post:   post,
		Author: author,
	}
	if groupID != nil {
		feedPost.Group = &model.Group{
			ID:          *groupID,
			Title:       *title,
			Slug:        *slug,
			Description: *description,
		}
	}

	return feedPost, nil
}

func scanFeedPosts(rows pgx.Rows) ([]*model.FeedPost, error) {
	var posts []*model.FeedPost
	for rows.Next() {
		post, err := scanFeedPostRow(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
