package dto

import (
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/pagination"
)

type FeedResponse struct {
	Page pagination.Page[*model.FeedPost] `json:"page"`
}

type GroupFeedResponse struct {
	Group model.Group                      `json:"group"`
	Page  pagination.Page[*model.FeedPost] `json:"page"`
}

type ProfileFeedResponse struct {
	Author    model.User                       `json:"author"`
	Following bool                             `json:"following"`
	Page      pagination.Page[*model.FeedPost] `json:"page"`
}

type PostDetailResponse struct {
	Post model.PostDetail `json:"post"`
	// ShowCommentForm tells the renderer to expose a blank comment form; only
	// authenticated viewers get one.
	ShowCommentForm bool `json:"show_comment_form"`
}

// PostFormResponse is the context for the GET create/edit pages: the form's
// current values plus, for edits, the post being edited.
type PostFormResponse struct {
	Form PostForm    `json:"form"`
	Post *model.Post `json:"post,omitempty"`
}
