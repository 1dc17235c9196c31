package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"acsp_backend/internal/services"
	"acsp_backend/internal/services/dto"
)

type ContentHandler struct {
	*BaseHandler
	contentService services.ContentService
}

func NewContentHandler(base *BaseHandler, contentService services.ContentService) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

// Carousel slides

func (h *ContentHandler) ListSlides(c *gin.Context) {
	slides, err := h.contentService.ListSlides(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slides)
}

func (h *ContentHandler) CreateSlide(c *gin.Context) {
	var req dto.SlideRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	slide, err := h.contentService.CreateSlide(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slide)
}

func (h *ContentHandler) UpdateSlide(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SlideRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	slide, err := h.contentService.UpdateSlide(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slide)
}

func (h *ContentHandler) DeleteSlide(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contentService.DeleteSlide(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Slide deleted."})
}

// Announcements

func (h *ContentHandler) ListAnnouncements(c *gin.Context) {
	items, err := h.contentService.ListAnnouncements(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) CreateAnnouncement(c *gin.Context) {
	var req dto.AnnouncementRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.contentService.CreateAnnouncement(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) UpdateAnnouncement(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AnnouncementRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.contentService.UpdateAnnouncement(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentHandler) DeleteAnnouncement(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contentService.DeleteAnnouncement(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Announcement deleted."})
}

// Events

func (h *ContentHandler) ListEvents(c *gin.Context) {
	items, err := h.contentService.ListEvents(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) CreateEvent(c *gin.Context) {
	var req dto.EventRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.contentService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) UpdateEvent(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.EventRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.contentService.UpdateEvent(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentHandler) DeleteEvent(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contentService.DeleteEvent(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted."})
}

// Blogs

func (h *ContentHandler) ListBlogs(c *gin.Context) {
	items, err := h.contentService.ListBlogs(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) CreateBlog(c *gin.Context) {
	var req dto.BlogRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.contentService.CreateBlog(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) UpdateBlog(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.BlogRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.contentService.UpdateBlog(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentHandler) DeleteBlog(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contentService.DeleteBlog(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Blog post deleted."})
}

// Gallery

func (h *ContentHandler) ListGalleryImages(c *gin.Context) {
	items, err := h.contentService.ListGalleryImages(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) CreateGalleryImage(c *gin.Context) {
	var req dto.GalleryImageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.contentService.CreateGalleryImage(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) UpdateGalleryImage(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.GalleryImageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.contentService.UpdateGalleryImage(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentHandler) DeleteGalleryImage(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contentService.DeleteGalleryImage(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Gallery image deleted."})
}

// Executives

func (h *ContentHandler) ListExecutives(c *gin.Context) {
	items, err := h.contentService.ListExecutives(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) CreateExecutive(c *gin.Context) {
	var req dto.ExecutiveRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.contentService.CreateExecutive(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) UpdateExecutive(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ExecutiveRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.contentService.UpdateExecutive(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentHandler) DeleteExecutive(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contentService.DeleteExecutive(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Executive deleted."})
}
