package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) homeFeed(c *gin.Context) {
	page, err := h.services.Post.HomeFeed(c.Request.Context(), c.Query("page"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.FeedResponse{Page: page})
}

func (h *Handler) groupFeed(c *gin.Context) {
	slug := c.Param("slug")

	group, page, err := h.services.Post.GroupFeed(c.Request.Context(), slug, c.Query("page"))
	if err != nil {
		if err == service.ErrGroupNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.GroupFeedResponse{Group: *group, Page: page})
}

func (h *Handler) profileFeed(c *gin.Context) {
	username := c.Param("username")

	author, page, err := h.services.Post.ProfileFeed(c.Request.Context(), username, c.Query("page"))
	if err != nil {
		if err == service.ErrUserNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	following := false
	if viewer := h.getUserFromRequest(c); viewer != nil && viewer.ID != author.ID {
		following, err = h.services.Follow.IsFollowing(c.Request.Context(), viewer.ID, author.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
			return
		}
	}

	c.JSON(http.StatusOK, dto.ProfileFeedResponse{
		Author:    *author,
		Following: following,
		Page:      page,
	})
}

func (h *Handler) followingFeed(c *gin.Context) {
	user := h.getUserFromRequest(c)

	page, err := h.services.Post.FollowingFeed(c.Request.Context(), user.ID, c.Query("page"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.FeedResponse{Page: page})
}
