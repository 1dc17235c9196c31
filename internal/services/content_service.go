package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"acsp_backend/internal/apperrors"
	"acsp_backend/internal/models"
	"acsp_backend/internal/repositories"
	"acsp_backend/internal/services/dto"
)

// ContentService manages the six public content resources. Reads are open
// to everyone; writes are admin-only, enforced at the route level.
type ContentService interface {
	ListSlides(ctx context.Context) ([]models.CarouselSlide, error)
	CreateSlide(ctx context.Context, req *dto.SlideRequest) (*models.CarouselSlide, error)
	UpdateSlide(ctx context.Context, id primitive.ObjectID, req *dto.SlideRequest) (*models.CarouselSlide, error)
	DeleteSlide(ctx context.Context, id primitive.ObjectID) error

	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, req *dto.AnnouncementRequest) (*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id primitive.ObjectID, req *dto.AnnouncementRequest) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id primitive.ObjectID) error

	ListEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, req *dto.EventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, id primitive.ObjectID, req *dto.EventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id primitive.ObjectID) error

	ListBlogs(ctx context.Context) ([]models.Blog, error)
	CreateBlog(ctx context.Context, req *dto.BlogRequest) (*models.Blog, error)
	UpdateBlog(ctx context.Context, id primitive.ObjectID, req *dto.BlogRequest) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id primitive.ObjectID) error

	ListGalleryImages(ctx context.Context) ([]models.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, req *dto.GalleryImageRequest) (*models.GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, id primitive.ObjectID, req *dto.GalleryImageRequest) (*models.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id primitive.ObjectID) error

	ListExecutives(ctx context.Context) ([]models.Executive, error)
	CreateExecutive(ctx context.Context, req *dto.ExecutiveRequest) (*models.Executive, error)
	UpdateExecutive(ctx context.Context, id primitive.ObjectID, req *dto.ExecutiveRequest) (*models.Executive, error)
	DeleteExecutive(ctx context.Context, id primitive.ObjectID) error
}

type ContentServiceImpl struct {
	repo repositories.ContentRepository
}

func NewContentService(repo repositories.ContentRepository) ContentService {
	return &ContentServiceImpl{repo: repo}
}

func contentErr(err error, resource string) *apperrors.AppError {
	if errors.Is(err, repositories.ErrContentNotFound) {
		return apperrors.NotFound(resource)
	}
	return apperrors.InternalError(err)
}

// Carousel slides

func (s *ContentServiceImpl) ListSlides(ctx context.Context) ([]models.CarouselSlide, error) {
	slides, err := s.repo.ListSlides(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return slides, nil
}

func (s *ContentServiceImpl) CreateSlide(ctx context.Context, req *dto.SlideRequest) (*models.CarouselSlide, error) {
	slide := &models.CarouselSlide{}
	applySlide(slide, req)

	if err := s.repo.CreateSlide(ctx, slide); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return slide, nil
}

func (s *ContentServiceImpl) UpdateSlide(ctx context.Context, id primitive.ObjectID, req *dto.SlideRequest) (*models.CarouselSlide, error) {
	slide, err := s.repo.FindSlide(ctx, id)
	if err != nil {
		return nil, contentErr(err, "Slide")
	}

	applySlide(slide, req)
	if err := s.repo.UpdateSlide(ctx, slide); err != nil {
		return nil, contentErr(err, "Slide")
	}
	return slide, nil
}

func (s *ContentServiceImpl) DeleteSlide(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.DeleteSlide(ctx, id); err != nil {
		return contentErr(err, "Slide")
	}
	return nil
}

func applySlide(slide *models.CarouselSlide, req *dto.SlideRequest) {
	slide.Title = req.Title
	slide.Subtitle = req.Subtitle
	slide.CTAText = req.CTAText
	slide.CTALink = req.CTALink
	slide.ImageURL = req.ImageURL
	slide.Order = req.Order
}

// Announcements

func (s *ContentServiceImpl) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	items, err := s.repo.ListAnnouncements(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ContentServiceImpl) CreateAnnouncement(ctx context.Context, req *dto.AnnouncementRequest) (*models.Announcement, error) {
	a := &models.Announcement{}
	applyAnnouncement(a, req)

	if err := s.repo.CreateAnnouncement(ctx, a); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return a, nil
}

func (s *ContentServiceImpl) UpdateAnnouncement(ctx context.Context, id primitive.ObjectID, req *dto.AnnouncementRequest) (*models.Announcement, error) {
	a, err := s.repo.FindAnnouncement(ctx, id)
	if err != nil {
		return nil, contentErr(err, "Announcement")
	}

	applyAnnouncement(a, req)
	if err := s.repo.UpdateAnnouncement(ctx, a); err != nil {
		return nil, contentErr(err, "Announcement")
	}
	return a, nil
}

func (s *ContentServiceImpl) DeleteAnnouncement(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.DeleteAnnouncement(ctx, id); err != nil {
		return contentErr(err, "Announcement")
	}
	return nil
}

func applyAnnouncement(a *models.Announcement, req *dto.AnnouncementRequest) {
	a.Title = req.Title
	a.Date = req.Date
	a.Category = req.Category
	a.Description = req.Description
	a.Speaker = req.Speaker
	a.SpeakerImage = req.SpeakerImage
}

// Events

func (s *ContentServiceImpl) ListEvents(ctx context.Context) ([]models.Event, error) {
	items, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ContentServiceImpl) CreateEvent(ctx context.Context, req *dto.EventRequest) (*models.Event, error) {
	e := &models.Event{Status: models.EventStatusUpcoming}
	applyEventFields(e, req)

	if err := s.repo.CreateEvent(ctx, e); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return e, nil
}

func (s *ContentServiceImpl) UpdateEvent(ctx context.Context, id primitive.ObjectID, req *dto.EventRequest) (*models.Event, error) {
	e, err := s.repo.FindEvent(ctx, id)
	if err != nil {
		return nil, contentErr(err, "Event")
	}

	applyEventFields(e, req)
	if err := s.repo.UpdateEvent(ctx, e); err != nil {
		return nil, contentErr(err, "Event")
	}
	return e, nil
}

func (s *ContentServiceImpl) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return contentErr(err, "Event")
	}
	return nil
}

func applyEventFields(e *models.Event, req *dto.EventRequest) {
	e.Title = req.Title
	e.Date = req.Date
	e.Time = req.Time
	e.Venue = req.Venue
	e.Type = models.EventType(req.Type)
	e.Description = req.Description
	e.ImageURL = req.ImageURL
	if req.Status != "" {
		e.Status = models.EventStatus(req.Status)
	}
}

// Blogs

func (s *ContentServiceImpl) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	items, err := s.repo.ListBlogs(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ContentServiceImpl) CreateBlog(ctx context.Context, req *dto.BlogRequest) (*models.Blog, error) {
	b := &models.Blog{Date: time.Now().UTC().Format("2006-01-02")}
	applyBlog(b, req)

	if err := s.repo.CreateBlog(ctx, b); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return b, nil
}

func (s *ContentServiceImpl) UpdateBlog(ctx context.Context, id primitive.ObjectID, req *dto.BlogRequest) (*models.Blog, error) {
	b, err := s.repo.FindBlog(ctx, id)
	if err != nil {
		return nil, contentErr(err, "Blog post")
	}

	applyBlog(b, req)
	if err := s.repo.UpdateBlog(ctx, b); err != nil {
		return nil, contentErr(err, "Blog post")
	}
	return b, nil
}

func (s *ContentServiceImpl) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.DeleteBlog(ctx, id); err != nil {
		return contentErr(err, "Blog post")
	}
	return nil
}

func applyBlog(b *models.Blog, req *dto.BlogRequest) {
	b.Title = req.Title
	b.Excerpt = req.Excerpt
	b.Author = req.Author
	b.Category = req.Category
	b.Image = req.Image
	b.Content = req.Content
}

// Gallery

func (s *ContentServiceImpl) ListGalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	items, err := s.repo.ListGalleryImages(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ContentServiceImpl) CreateGalleryImage(ctx context.Context, req *dto.GalleryImageRequest) (*models.GalleryImage, error) {
	g := &models.GalleryImage{}
	applyGalleryImage(g, req)

	if err := s.repo.CreateGalleryImage(ctx, g); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return g, nil
}

func (s *ContentServiceImpl) UpdateGalleryImage(ctx context.Context, id primitive.ObjectID, req *dto.GalleryImageRequest) (*models.GalleryImage, error) {
	g, err := s.repo.FindGalleryImage(ctx, id)
	if err != nil {
		return nil, contentErr(err, "Gallery image")
	}

	applyGalleryImage(g, req)
	if err := s.repo.UpdateGalleryImage(ctx, g); err != nil {
		return nil, contentErr(err, "Gallery image")
	}
	return g, nil
}

func (s *ContentServiceImpl) DeleteGalleryImage(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.DeleteGalleryImage(ctx, id); err != nil {
		return contentErr(err, "Gallery image")
	}
	return nil
}

func applyGalleryImage(g *models.GalleryImage, req *dto.GalleryImageRequest) {
	g.URL = req.URL
	g.Category = req.Category
	g.Title = req.Title
	g.Description = req.Description
}

// Executives

func (s *ContentServiceImpl) ListExecutives(ctx context.Context) ([]models.Executive, error) {
	items, err := s.repo.ListExecutives(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ContentServiceImpl) CreateExecutive(ctx context.Context, req *dto.ExecutiveRequest) (*models.Executive, error) {
	e := &models.Executive{IsActive: true}
	applyExecutive(e, req)

	if err := s.repo.CreateExecutive(ctx, e); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return e, nil
}

func (s *ContentServiceImpl) UpdateExecutive(ctx context.Context, id primitive.ObjectID, req *dto.ExecutiveRequest) (*models.Executive, error) {
	e, err := s.repo.FindExecutive(ctx, id)
	if err != nil {
		return nil, contentErr(err, "Executive")
	}

	applyExecutive(e, req)
	if err := s.repo.UpdateExecutive(ctx, e); err != nil {
		return nil, contentErr(err, "Executive")
	}
	return e, nil
}

func (s *ContentServiceImpl) DeleteExecutive(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.DeleteExecutive(ctx, id); err != nil {
		return contentErr(err, "Executive")
	}
	return nil
}

func applyExecutive(e *models.Executive, req *dto.ExecutiveRequest) {
	e.Name = req.Name
	e.Position = req.Position
	e.Bio = req.Bio
	e.ImageURL = req.ImageURL
	e.Order = req.Order
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
}
