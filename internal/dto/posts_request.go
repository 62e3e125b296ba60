package dto

// PostForm carries the form-encoded fields of the post create/edit pages.
// Group is the target group's slug; empty means no group. The optional image
// travels as a separate multipart part.
type PostForm struct {
	Text  string `form:"text" binding:"required"`
	Group string `form:"group"`
}
