package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) follow(c *gin.Context) {
	user := h.getUserFromRequest(c)
	username := c.Param("username")

	if err := h.services.Follow.Follow(c.Request.Context(), user.ID, username); err != nil {
		if err == service.ErrUserNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}

func (h *Handler) unfollow(c *gin.Context) {
	user := h.getUserFromRequest(c)
	username := c.Param("username")

	if err := h.services.Follow.Unfollow(c.Request.Context(), user.ID, username); err != nil {
		if err == service.ErrUserNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}
