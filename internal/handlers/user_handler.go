package handlers

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"acsp_backend/internal/apperrors"
	"acsp_backend/internal/services"
	"acsp_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// Member endpoints

// CompleteProfile accepts either JSON carrying document URLs or a
// multipart form carrying the document files themselves.
func (h *UserHandler) CompleteProfile(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		h.completeProfileMultipart(c)
		return
	}

	var req dto.CompleteProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	updated, err := h.userService.CompleteProfile(c.Request.Context(), user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile submitted for verification.",
		"user":    updated,
	})
}

func (h *UserHandler) completeProfileMultipart(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	photo, err := formImage(c, "photo")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Profile photo is required"))
		return
	}
	defer photo.Reader.(multipart.File).Close()

	idCard, err := formImage(c, "idCard")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("ID card image is required"))
		return
	}
	defer idCard.Reader.(multipart.File).Close()

	extra := &dto.UpdateProfileRequest{
		Phone:          c.PostForm("phone"),
		Institution:    c.PostForm("institution"),
		Specialization: c.PostForm("specialization"),
		Bio:            c.PostForm("bio"),
	}

	updated, err := h.userService.CompleteProfileWithFiles(c.Request.Context(), user.ID, photo, idCard, extra)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile submitted for verification.",
		"user":    updated,
	})
}

func formImage(c *gin.Context, field string) (*services.ImageUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}

	return &services.ImageUpload{
		Reader:      file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}, nil
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	updated, err := h.userService.UpdateProfile(c.Request.Context(), user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": updated})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password changed successfully."})
}

// Admin endpoints

func (h *UserHandler) ListUsers(c *gin.Context) {
	var query dto.ListUsersQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	res, err := h.userService.ListUsers(c.Request.Context(), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.ChangeRole(c.Request.Context(), id, req.Role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User role updated.",
		"user":    user,
	})
}

func (h *UserHandler) ApproveUser(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.ApproveUser(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User approved.",
		"user":    user,
	})
}

func (h *UserHandler) RejectUser(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RejectUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.RejectUser(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User rejected.",
		"user":    user,
	})
}

func (h *UserHandler) SuspendUser(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.BanUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.SuspendUser(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User suspended.",
		"user":    user,
	})
}

func (h *UserHandler) ReinstateUser(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.ReinstateUser(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User reinstated.",
		"user":    user,
	})
}

func (h *UserHandler) BanUser(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.BanUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.BanUser(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User banned.",
		"user":    user,
	})
}

func (h *UserHandler) UnbanUser(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.UnbanUser(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User unbanned.",
		"user":    user,
	})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted."})
}
