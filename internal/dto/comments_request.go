package dto

type CommentForm struct {
	Text string `form:"text" binding:"required"`
}
