package handler

import (
	"github.com/gin-gonic/gin"
)

// notRequiredAuthMiddleware resolves the principal when credentials are
// present but lets anonymous requests through untouched.
func (h *Handler) notRequiredAuthMiddleware(c *gin.Context) {
	accessToken := extractAccessToken(c)
	if accessToken == "" {
		c.Next()
		return
	}

	user, err := h.getUserFromAccessToken(c.Request.Context(), accessToken)
	if err != nil {
		c.Next()
		return
	}

	c.Set("user", *user)

	c.Next()
}
