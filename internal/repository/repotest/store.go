// Package repotest provides in-memory implementations of the repository
// interfaces so service and handler tests can run without Postgres or Redis.
package repotest

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/internal/repository/postgres"
	"github.com/BloggingApp/blog-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

type Store struct {
	mu sync.Mutex

	users    map[uuid.UUID]*model.User
	groups   map[string]*model.Group
	posts    []*model.Post
	comments []*model.Comment
	follows  map[model.Follow]struct{}

	nextPostID    int64
	nextCommentID int64
	nextGroupID   int64

	cache map[string]string
}

func New() *Store {
	return &Store{
		users:   make(map[uuid.UUID]*model.User),
		groups:  make(map[string]*model.Group),
		follows: make(map[model.Follow]struct{}),
		cache:   make(map[string]string),
	}
}

// Repository assembles the store into the aggregate the services expect.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			User:    (*userRepo)(s),
			Group:   (*groupRepo)(s),
			Post:    (*postRepo)(s),
			Comment: (*commentRepo)(s),
			Follow:  (*followRepo)(s),
		},
		Redis: &redisrepo.RedisRepository{
			Default: (*cacheRepo)(s),
		},
	}
}

// Seeding helpers.

func (s *Store) AddUser(user model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = &user
	return user
}

func (s *Store) AddGroup(group model.Group) model.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextGroupID++
	group.ID = s.nextGroupID
	s.groups[group.Slug] = &group
	return group
}

func (s *Store) AddPost(post model.Post) model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addPostLocked(post)
}

func (s *Store) addPostLocked(post model.Post) model.Post {
	s.nextPostID++
	post.ID = s.nextPostID
	if post.PubDate.IsZero() {
		post.PubDate = time.Now()
	}
	s.posts = append(s.posts, &post)
	return post
}

func (s *Store) PostByID(id int64) *model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, post := range s.posts {
		if post.ID == id {
			copied := *post
			return &copied
		}
	}
	return nil
}

func (s *Store) Comments() []model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	comments := make([]model.Comment, 0, len(s.comments))
	for _, comment := range s.comments {
		comments = append(comments, *comment)
	}
	return comments
}

func (s *Store) FollowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.follows)
}

func (s *Store) groupByID(id int64) *model.Group {
	for _, group := range s.groups {
		if group.ID == id {
			return group
		}
	}
	return nil
}

func (s *Store) feedPost(post *model.Post) *model.FeedPost {
	feedPost := &model.FeedPost{Post: *post}
	if author, ok := s.users[post.AuthorID]; ok {
		feedPost.Author = *author
	}
	if post.GroupID != nil {
		if group := s.groupByID(*post.GroupID); group != nil {
			copied := *group
			feedPost.Group = &copied
		}
	}
	return feedPost
}

// newestFirst mirrors the storage ordering: pub_date descending with the id
// tiebreak.
func newestFirst(posts []*model.FeedPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i].Post, posts[j].Post
		if !a.PubDate.Equal(b.PubDate) {
			return a.PubDate.After(b.PubDate)
		}
		return a.ID > b.ID
	})
}

func window(posts []*model.FeedPost, limit int, offset int) []*model.FeedPost {
	if offset >= len(posts) {
		return nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end]
}

// userRepo

type userRepo Store

func (r *userRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// groupRepo

type groupRepo Store

func (r *groupRepo) Create(_ context.Context, group model.Group) (*model.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.groups[group.Slug]; exists {
		return nil, &pgconn.PgError{Code: "23505", ConstraintName: "groups_slug_key"}
	}
	r.nextGroupID++
	group.ID = r.nextGroupID
	r.groups[group.Slug] = &group
	return &group, nil
}

func (r *groupRepo) FindBySlug(_ context.Context, slug string) (*model.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	group, ok := r.groups[slug]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *group
	return &copied, nil
}

// postRepo

type postRepo Store

func (r *postRepo) Create(_ context.Context, post model.Post) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := (*Store)(r).addPostLocked(post)
	return &created, nil
}

func (r *postRepo) Update(_ context.Context, id int64, text string, groupID *int64, imageURL *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, post := range r.posts {
		if post.ID == id {
			post.Text = text
			post.GroupID = groupID
			if imageURL != nil {
				post.ImageURL = imageURL
			}
			return nil
		}
	}
	return nil
}

func (r *postRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, post := range r.posts {
		if post.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *postRepo) FindByID(_ context.Context, id int64) (*model.FeedPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, post := range r.posts {
		if post.ID == id {
			return (*Store)(r).feedPost(post), nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *postRepo) all(filter func(*model.Post) bool) []*model.FeedPost {
	var posts []*model.FeedPost
	for _, post := range r.posts {
		if filter == nil || filter(post) {
			posts = append(posts, (*Store)(r).feedPost(post))
		}
	}
	newestFirst(posts)
	return posts
}

func (r *postRepo) CountAll(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.posts), nil
}

func (r *postRepo) FindAll(_ context.Context, limit int, offset int) ([]*model.FeedPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return window(r.all(nil), limit, offset), nil
}

func (r *postRepo) CountByGroup(_ context.Context, groupID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.all(func(p *model.Post) bool { return p.GroupID != nil && *p.GroupID == groupID })), nil
}

func (r *postRepo) FindByGroup(_ context.Context, groupID int64, limit int, offset int) ([]*model.FeedPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := r.all(func(p *model.Post) bool { return p.GroupID != nil && *p.GroupID == groupID })
	return window(posts, limit, offset), nil
}

func (r *postRepo) CountByAuthor(_ context.Context, authorID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.all(func(p *model.Post) bool { return p.AuthorID == authorID })), nil
}

func (r *postRepo) FindByAuthor(_ context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.FeedPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := r.all(func(p *model.Post) bool { return p.AuthorID == authorID })
	return window(posts, limit, offset), nil
}

func (r *postRepo) followedBy(userID uuid.UUID) func(*model.Post) bool {
	return func(p *model.Post) bool {
		_, ok := r.follows[model.Follow{UserID: userID, AuthorID: p.AuthorID}]
		return ok
	}
}

func (r *postRepo) CountFollowing(_ context.Context, userID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.all(r.followedBy(userID))), nil
}

func (r *postRepo) FindFollowing(_ context.Context, userID uuid.UUID, limit int, offset int) ([]*model.FeedPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return window(r.all(r.followedBy(userID)), limit, offset), nil
}

// commentRepo

type commentRepo Store

func (r *commentRepo) Create(_ context.Context, comment model.Comment) (*model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextCommentID++
	comment.ID = r.nextCommentID
	comment.Created = time.Now()
	r.comments = append(r.comments, &comment)
	return &comment, nil
}

func (r *commentRepo) FindPostComments(_ context.Context, postID int64) ([]*model.FullComment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var comments []*model.FullComment
	for _, comment := range r.comments {
		if comment.PostID != nil && *comment.PostID == postID {
			full := &model.FullComment{Comment: *comment}
			if author, ok := r.users[comment.AuthorID]; ok {
				full.Author = *author
			}
			comments = append(comments, full)
		}
	}
	return comments, nil
}

// followRepo

type followRepo Store

func (r *followRepo) Create(_ context.Context, follow model.Follow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.follows[follow] = struct{}{}
	return nil
}

func (r *followRepo) Delete(_ context.Context, follow model.Follow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.follows, follow)
	return nil
}

func (r *followRepo) Exists(_ context.Context, follow model.Follow) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.follows[follow]
	return ok, nil
}

// cacheRepo backs the redis interface with a plain map.

type cacheRepo Store

func (r *cacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := value.(string); ok {
		r.cache[key] = s
	}
	return nil
}

func (r *cacheRepo) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, string(valueJSON), ttl)
}

func (r *cacheRepo) Get(_ context.Context, key string) *redis.StringCmd {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.cache[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (r *cacheRepo) Del(_ context.Context, keys ...string) *redis.IntCmd {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for _, key := range keys {
		if _, ok := r.cache[key]; ok {
			delete(r.cache, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}
