package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"acsp_backend/internal/handlers"
)

// Middleware groups the guard chains routes are registered under.
type Middleware struct {
	Auth           gin.HandlerFunc
	RequireAdmin   gin.HandlerFunc
	RequireMod     gin.HandlerFunc
	VerifiedMember gin.HandlerFunc
}

// Setup registers every route of the API.
func Setup(r *gin.Engine, h *handlers.AppHandlers, mw Middleware) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ACSP Backend API"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{
			"code":    "RESOURCE_NOT_FOUND",
			"message": "Route not found",
		}})
	})

	api := r.Group("/api")

	setupAuthRoutes(api, h, mw)
	setupUserRoutes(api, h, mw)
	setupContentRoutes(api, h, mw)
	setupForumRoutes(api, h, mw)
}

func setupAuthRoutes(api *gin.RouterGroup, h *handlers.AppHandlers, mw Middleware) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.Register)
		auth.POST("/login", h.AuthHandler.Login)
		auth.GET("/verify-email/:token", h.AuthHandler.VerifyEmail)
		auth.POST("/forgot-password", h.AuthHandler.ForgotPassword)
		auth.POST("/reset-password", h.AuthHandler.ResetPassword)
		auth.GET("/me", mw.Auth, h.AuthHandler.Me)
	}
}

func setupUserRoutes(api *gin.RouterGroup, h *handlers.AppHandlers, mw Middleware) {
	users := api.Group("/users")
	users.Use(mw.Auth)
	{
		users.PUT("/complete-profile", h.UserHandler.CompleteProfile)
		users.PUT("/profile", h.UserHandler.UpdateProfile)
		users.PUT("/change-password", h.UserHandler.ChangePassword)
	}

	admin := users.Group("")
	admin.Use(mw.RequireAdmin)
	{
		admin.GET("", h.UserHandler.ListUsers)
		admin.GET("/:id", h.UserHandler.GetUser)
		admin.PATCH("/:id/role", h.UserHandler.ChangeRole)
		admin.PUT("/:id/approve", h.UserHandler.ApproveUser)
		admin.PUT("/:id/reject", h.UserHandler.RejectUser)
		admin.PUT("/:id/suspend", h.UserHandler.SuspendUser)
		admin.PUT("/:id/reinstate", h.UserHandler.ReinstateUser)
		admin.PUT("/:id/ban", h.UserHandler.BanUser)
		admin.PUT("/:id/unban", h.UserHandler.UnbanUser)
		admin.DELETE("/:id", h.UserHandler.DeleteUser)
	}
}

// Content reads are public; writes and the upload relay are admin-only.
func setupContentRoutes(api *gin.RouterGroup, h *handlers.AppHandlers, mw Middleware) {
	content := api.Group("/content")
	ch := h.ContentHandler
	{
		content.GET("/carousel", ch.ListSlides)
		content.GET("/announcements", ch.ListAnnouncements)
		content.GET("/events", ch.ListEvents)
		content.GET("/blogs", ch.ListBlogs)
		content.GET("/gallery", ch.ListGalleryImages)
		content.GET("/executives", ch.ListExecutives)
	}

	admin := content.Group("")
	admin.Use(mw.Auth, mw.RequireAdmin)
	{
		admin.POST("/upload", h.UploadHandler.Upload)

		admin.POST("/carousel", ch.CreateSlide)
		admin.PUT("/carousel/:id", ch.UpdateSlide)
		admin.DELETE("/carousel/:id", ch.DeleteSlide)

		admin.POST("/announcements", ch.CreateAnnouncement)
		admin.PUT("/announcements/:id", ch.UpdateAnnouncement)
		admin.DELETE("/announcements/:id", ch.DeleteAnnouncement)

		admin.POST("/events", ch.CreateEvent)
		admin.PUT("/events/:id", ch.UpdateEvent)
		admin.DELETE("/events/:id", ch.DeleteEvent)

		admin.POST("/blogs", ch.CreateBlog)
		admin.PUT("/blogs/:id", ch.UpdateBlog)
		admin.DELETE("/blogs/:id", ch.DeleteBlog)

		admin.POST("/gallery", ch.CreateGalleryImage)
		admin.PUT("/gallery/:id", ch.UpdateGalleryImage)
		admin.DELETE("/gallery/:id", ch.DeleteGalleryImage)

		admin.POST("/executives", ch.CreateExecutive)
		admin.PUT("/executives/:id", ch.UpdateExecutive)
		admin.DELETE("/executives/:id", ch.DeleteExecutive)
	}
}

// The forum area is members-only: every route requires an authenticated
// account in the verified-member set.
func setupForumRoutes(api *gin.RouterGroup, h *handlers.AppHandlers, mw Middleware) {
	fh := h.ForumHandler

	forums := api.Group("/forums")
	forums.Use(mw.Auth, mw.VerifiedMember)
	{
		forums.GET("", fh.ListForums)
		forums.GET("/:id/threads", fh.ListThreads)
		forums.POST("/:id/threads", fh.CreateThread)

		forums.POST("", mw.RequireAdmin, fh.CreateForum)
		forums.DELETE("/:id", mw.RequireAdmin, fh.DeleteForum)
	}

	threads := api.Group("/threads")
	threads.Use(mw.Auth, mw.VerifiedMember)
	{
		threads.GET("/:threadId/posts", fh.ListPosts)
		threads.POST("/:threadId/posts", fh.CreatePost)
		threads.DELETE("/:threadId", fh.DeleteThread)
	}

	posts := api.Group("/posts")
	posts.Use(mw.Auth, mw.VerifiedMember)
	{
		posts.POST("/:postId/like", fh.ToggleLike)
		posts.DELETE("/:postId", fh.DeletePost)
		posts.PUT("/:postId/moderate", mw.RequireMod, fh.ModeratePost)
	}

	moderation := api.Group("/moderation")
	moderation.Use(mw.Auth, mw.RequireMod)
	{
		moderation.GET("/posts", fh.ListPendingPosts)
	}
}
