package handler

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

const accessTokenCookie = "access_token"

// authMiddleware resolves the principal from a Bearer header or the access
// token cookie. Anonymous requests to guarded routes are redirected to the
// login page with the original URL preserved in the next parameter.
func (h *Handler) authMiddleware(c *gin.Context) {
	accessToken := extractAccessToken(c)
	if accessToken == "" {
		h.redirectToLogin(c)
		return
	}

	user, err := h.getUserFromAccessToken(c.Request.Context(), accessToken)
	if err != nil {
		h.redirectToLogin(c)
		return
	}

	c.Set("user", *user)

	c.Next()
}

func (h *Handler) redirectToLogin(c *gin.Context) {
	loginURL := viper.GetString("auth.login_url")
	if loginURL == "" {
		loginURL = "/auth/login/"
	}

	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, loginURL+"?next="+next)
	c.Abort()
}

func extractAccessToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := c.Cookie(accessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie
}

func (h *Handler) getUserFromAccessToken(ctx context.Context, accessToken string) (*model.User, error) {
	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		return nil, err
	}

	return h.getUserDataFromClaims(ctx, claims)
}

func (h *Handler) getUserDataFromClaims(ctx context.Context, claims jwt.MapClaims) (*model.User, error) {
	idString, _ := claims["id"].(string)
	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, err
	}

	user, err := h.services.User.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user, nil
}
