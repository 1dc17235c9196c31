package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"acsp_backend/internal/services"
	"acsp_backend/internal/services/dto"
)

type ForumHandler struct {
	*BaseHandler
	forumService services.ForumService
}

func NewForumHandler(base *BaseHandler, forumService services.ForumService) *ForumHandler {
	return &ForumHandler{
		BaseHandler:  base,
		forumService: forumService,
	}
}

// Forums

func (h *ForumHandler) ListForums(c *gin.Context) {
	forums, err := h.forumService.ListForums(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, forums)
}

func (h *ForumHandler) CreateForum(c *gin.Context) {
	var req dto.CreateForumRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	forum, err := h.forumService.CreateForum(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, forum)
}

func (h *ForumHandler) DeleteForum(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.forumService.DeleteForum(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Forum deleted."})
}

// Threads

func (h *ForumHandler) ListThreads(c *gin.Context) {
	forumID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	threads, err := h.forumService.ListThreads(c.Request.Context(), forumID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, threads)
}

func (h *ForumHandler) CreateThread(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	forumID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateThreadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	thread, err := h.forumService.CreateThread(c.Request.Context(), forumID, user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, thread)
}

func (h *ForumHandler) DeleteThread(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	threadID, ok := h.ParseIDParam(c, "threadId")
	if !ok {
		return
	}

	if err := h.forumService.DeleteThread(c.Request.Context(), threadID, user); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Thread deleted."})
}

// Posts

func (h *ForumHandler) ListPosts(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	threadID, ok := h.ParseIDParam(c, "threadId")
	if !ok {
		return
	}

	posts, err := h.forumService.ListPosts(c.Request.Context(), threadID, user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *ForumHandler) CreatePost(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	threadID, ok := h.ParseIDParam(c, "threadId")
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.forumService.CreatePost(c.Request.Context(), threadID, user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *ForumHandler) DeletePost(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	postID, ok := h.ParseIDParam(c, "postId")
	if !ok {
		return
	}

	if err := h.forumService.DeletePost(c.Request.Context(), postID, user); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Post deleted."})
}

func (h *ForumHandler) ModeratePost(c *gin.Context) {
	postID, ok := h.ParseIDParam(c, "postId")
	if !ok {
		return
	}

	var req dto.ModeratePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.forumService.ModeratePost(c.Request.Context(), postID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *ForumHandler) ListPendingPosts(c *gin.Context) {
	posts, err := h.forumService.ListPendingPosts(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *ForumHandler) ToggleLike(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	postID, ok := h.ParseIDParam(c, "postId")
	if !ok {
		return
	}

	post, err := h.forumService.ToggleLike(c.Request.Context(), postID, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
