package model

import (
	"time"

	"github.com/google/uuid"
)

// previewLen bounds the string projection used in compact listings.
const previewLen = 15

type Post struct {
	ID       int64     `json:"id"`
	AuthorID uuid.UUID `json:"author_id"`
	GroupID  *int64    `json:"group_id"`
	Text     string    `json:"text"`
	ImageURL *string   `json:"image_url"`
	PubDate  time.Time `json:"pub_date"`
}

// Preview returns the post text cut to a fixed number of runes.
func (p Post) Preview() string {
	runes := []rune(p.Text)
	if len(runes) <= previewLen {
		return p.Text
	}
	return string(runes[:previewLen])
}

// FeedPost is a post with its author and optional group resolved in the same
// query pass that fetched the post.
type FeedPost struct {
	Post   Post   `json:"post"`
	Author User   `json:"author"`
	Group  *Group `json:"group"`
}

type PostDetail struct {
	FeedPost
	Comments []*FullComment `json:"comments"`
}
