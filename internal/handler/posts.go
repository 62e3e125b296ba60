package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

func postDetailURL(postID int64) string {
	return fmt.Sprintf("/posts/%d/", postID)
}

func parsePostID(c *gin.Context) (int64, error) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.ParseInt(postIDString, 10, 64)
	if err != nil {
		return 0, errInvalidPostID
	}
	return postID, nil
}

func (h *Handler) postDetail(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		if err == service.ErrPostNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.PostDetailResponse{
		Post:            *post,
		ShowCommentForm: h.getUserFromRequest(c) != nil,
	})
}

func (h *Handler) postCreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PostFormResponse{})
}

func (h *Handler) postCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	var input dto.PostForm
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewFormErrors(err))
		return
	}

	// The image part is optional; only its absence is tolerated.
	image, _ := c.FormFile("image")

	_, err := h.services.Post.Create(c.Request.Context(), user.ID, input, image)
	if err != nil {
		if err == service.ErrGroupNotFound {
			c.JSON(http.StatusBadRequest, dto.NewFieldError("group", err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

func (h *Handler) postEditForm(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		if err == service.ErrPostNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if decision := service.CanEditPost(user.ID, post.Post.AuthorID, postID); !decision.Allowed {
		c.Redirect(http.StatusFound, decision.RedirectTo)
		return
	}

	form := dto.PostForm{Text: post.Post.Text}
	if post.Group != nil {
		form.Group = post.Group.Slug
	}

	c.JSON(http.StatusOK, dto.PostFormResponse{Form: form, Post: &post.Post})
}

func (h *Handler) postEdit(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		if err == service.ErrPostNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	// A non-author's edit attempt is a no-op redirect, not an error.
	if decision := service.CanEditPost(user.ID, post.Post.AuthorID, postID); !decision.Allowed {
		c.Redirect(http.StatusFound, decision.RedirectTo)
		return
	}

	var input dto.PostForm
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewFormErrors(err))
		return
	}

	image, _ := c.FormFile("image")

	if err := h.services.Post.Edit(c.Request.Context(), postID, input, image); err != nil {
		if err == service.ErrGroupNotFound {
			c.JSON(http.StatusBadRequest, dto.NewFieldError("group", err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.Redirect(http.StatusFound, postDetailURL(postID))
}
