package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) addComment(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	exists, err := h.services.Post.Exists(c.Request.Context(), postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errPostNotFound.Error()))
		return
	}

	// Unlike the post form, an invalid comment does not surface field errors:
	// the request just lands back on the detail page with nothing created.
	var input dto.CommentForm
	if err := c.ShouldBind(&input); err != nil {
		c.Redirect(http.StatusFound, postDetailURL(postID))
		return
	}

	if _, err := h.services.Comment.Create(c.Request.Context(), user.ID, postID, input); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.Redirect(http.StatusFound, postDetailURL(postID))
}
