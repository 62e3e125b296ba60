package handler

import (
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	if origin := viper.GetString("client.origin"); origin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{origin},
			AllowMethods:     []string{"POST", "GET"},
			AllowCredentials: true,
		}))
	}

	r.GET("/", h.homeFeed)
	r.GET("/group/:slug/", h.groupFeed)
	r.GET("/profile/:username/", h.notRequiredAuthMiddleware, h.profileFeed)
	r.GET("/follow/", h.authMiddleware, h.followingFeed)

	r.GET("/create/", h.authMiddleware, h.postCreateForm)
	r.POST("/create/", h.authMiddleware, h.postCreate)

	posts := r.Group("/posts/:postID")
	{
		posts.GET("/", h.notRequiredAuthMiddleware, h.postDetail)
		posts.GET("/edit/", h.authMiddleware, h.postEditForm)
		posts.POST("/edit/", h.authMiddleware, h.postEdit)
		posts.POST("/comment/", h.authMiddleware, h.addComment)
	}

	r.POST("/profile/:username/follow/", h.authMiddleware, h.follow)
	r.POST("/profile/:username/unfollow/", h.authMiddleware, h.unfollow)

	return r
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.User {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.User)
	if !ok {
		return nil
	}

	return &user
}
