package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DeletePolicy string

const (
	Cascade DeletePolicy = "CASCADE"
	SetNull DeletePolicy = "SET NULL"
)

// DeletionPolicies spells out, per relationship, what happens to a row when
// the entity it references is deleted. A post outlives its group (the
// reference is cleared); everything else dies with its parent.
var DeletionPolicies = map[string]DeletePolicy{
	"posts.author_id":    Cascade,
	"posts.group_id":     SetNull,
	"comments.post_id":   Cascade,
	"comments.author_id": Cascade,
	"follows.user_id":    Cascade,
	"follows.author_id":  Cascade,
}

func fk(table string, relation string) string {
	return fmt.Sprintf("REFERENCES %s(id) ON DELETE %s", table, DeletionPolicies[relation])
}

// Schema returns the DDL for all tables. The follows unique constraint is what
// makes the idempotent "create if absent" follow insert race-free.
func Schema() string {
	return fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	display_name TEXT,
	avatar_url TEXT
);

CREATE TABLE IF NOT EXISTS groups (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	slug TEXT UNIQUE NOT NULL,
	description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS posts (
	id BIGSERIAL PRIMARY KEY,
	text TEXT NOT NULL,
	pub_date TIMESTAMPTZ NOT NULL,
	author_id UUID NOT NULL %s,
	group_id BIGINT %s,
	image_url TEXT
);

CREATE INDEX IF NOT EXISTS idx_posts_pub_date ON posts(pub_date DESC, id DESC);
CREATE INDEX IF NOT EXISTS idx_posts_author ON posts(author_id);
CREATE INDEX IF NOT EXISTS idx_posts_group ON posts(group_id);

CREATE TABLE IF NOT EXISTS comments (
	id BIGSERIAL PRIMARY KEY,
	post_id BIGINT %s,
	author_id UUID NOT NULL %s,
	text TEXT NOT NULL,
	created TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_comments_post ON comments(post_id);

CREATE TABLE IF NOT EXISTS follows (
	user_id UUID NOT NULL %s,
	author_id UUID NOT NULL %s,
	UNIQUE(user_id, author_id)
);
`,
		fk("users", "posts.author_id"),
		fk("groups", "posts.group_id"),
		fk("posts", "comments.post_id"),
		fk("users", "comments.author_id"),
		fk("users", "follows.user_id"),
		fk("users", "follows.author_id"),
	)
}

func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, Schema())
	return err
}
