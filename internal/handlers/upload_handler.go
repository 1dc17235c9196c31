package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"acsp_backend/internal/apperrors"
	"acsp_backend/internal/services"
	"acsp_backend/internal/services/dto"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

// Upload relays a single image from the "image" form field to the image
// host and returns its public URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	upload, err := formImage(c, "image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Image file is required"))
		return
	}
	defer upload.Reader.(multipart.File).Close()

	url, err := h.uploadService.UploadImage(c.Request.Context(), upload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}
