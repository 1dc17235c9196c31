package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"acsp_backend/internal/models"
	"acsp_backend/internal/repositories"
	"acsp_backend/internal/services/dto"
)

// fakeContentRepo backs the six content collections with maps. The store
// helpers give every resource the same create/find/update/delete behavior
// as the Mongo implementation, including the not-found sentinel.

type contentStore[T any] struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]*T
}

func newContentStore[T any]() *contentStore[T] {
	return &contentStore[T]{items: make(map[primitive.ObjectID]*T)}
}

func (s *contentStore[T]) list() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, *item)
	}
	return out
}

func (s *contentStore[T]) create(id *primitive.ObjectID, item *T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	*id = primitive.NewObjectID()
	stored := *item
	s.items[*id] = &stored
}

func (s *contentStore[T]) find(id primitive.ObjectID) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, repositories.ErrContentNotFound
	}
	clone := *item
	return &clone, nil
}

func (s *contentStore[T]) update(id primitive.ObjectID, item *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return repositories.ErrContentNotFound
	}
	stored := *item
	s.items[id] = &stored
	return nil
}

func (s *contentStore[T]) delete(id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return repositories.ErrContentNotFound
	}
	delete(s.items, id)
	return nil
}

type fakeContentRepo struct {
	slides        *contentStore[models.CarouselSlide]
	announcements *contentStore[models.Announcement]
	events        *contentStore[models.Event]
	blogs         *contentStore[models.Blog]
	gallery       *contentStore[models.GalleryImage]
	executives    *contentStore[models.Executive]
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		slides:        newContentStore[models.CarouselSlide](),
		announcements: newContentStore[models.Announcement](),
		events:        newContentStore[models.Event](),
		blogs:         newContentStore[models.Blog](),
		gallery:       newContentStore[models.GalleryImage](),
		executives:    newContentStore[models.Executive](),
	}
}

func (r *fakeContentRepo) ListSlides(_ context.Context) ([]models.CarouselSlide, error) {
	return r.slides.list(), nil
}
func (r *fakeContentRepo) CreateSlide(_ context.Context, s *models.CarouselSlide) error {
	r.slides.create(&s.ID, s)
	return nil
}
func (r *fakeContentRepo) UpdateSlide(_ context.Context, s *models.CarouselSlide) error {
	return r.slides.update(s.ID, s)
}
func (r *fakeContentRepo) FindSlide(_ context.Context, id primitive.ObjectID) (*models.CarouselSlide, error) {
	return r.slides.find(id)
}
func (r *fakeContentRepo) DeleteSlide(_ context.Context, id primitive.ObjectID) error {
	return r.slides.delete(id)
}

func (r *fakeContentRepo) ListAnnouncements(_ context.Context) ([]models.Announcement, error) {
	return r.announcements.list(), nil
}
func (r *fakeContentRepo) CreateAnnouncement(_ context.Context, a *models.Announcement) error {
	r.announcements.create(&a.ID, a)
	return nil
}
func (r *fakeContentRepo) UpdateAnnouncement(_ context.Context, a *models.Announcement) error {
	return r.announcements.update(a.ID, a)
}
func (r *fakeContentRepo) FindAnnouncement(_ context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	return r.announcements.find(id)
}
func (r *fakeContentRepo) DeleteAnnouncement(_ context.Context, id primitive.ObjectID) error {
	return r.announcements.delete(id)
}

func (r *fakeContentRepo) ListEvents(_ context.Context) ([]models.Event, error) {
	return r.events.list(), nil
}
func (r *fakeContentRepo) CreateEvent(_ context.Context, e *models.Event) error {
	r.events.create(&e.ID, e)
	return nil
}
func (r *fakeContentRepo) UpdateEvent(_ context.Context, e *models.Event) error {
	return r.events.update(e.ID, e)
}
func (r *fakeContentRepo) FindEvent(_ context.Context, id primitive.ObjectID) (*models.Event, error) {
	return r.events.find(id)
}
func (r *fakeContentRepo) DeleteEvent(_ context.Context, id primitive.ObjectID) error {
	return r.events.delete(id)
}

func (r *fakeContentRepo) ListBlogs(_ context.Context) ([]models.Blog, error) {
	return r.blogs.list(), nil
}
func (r *fakeContentRepo) CreateBlog(_ context.Context, b *models.Blog) error {
	r.blogs.create(&b.ID, b)
	return nil
}
func (r *fakeContentRepo) UpdateBlog(_ context.Context, b *models.Blog) error {
	return r.blogs.update(b.ID, b)
}
func (r *fakeContentRepo) FindBlog(_ context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return r.blogs.find(id)
}
func (r *fakeContentRepo) DeleteBlog(_ context.Context, id primitive.ObjectID) error {
	return r.blogs.delete(id)
}

func (r *fakeContentRepo) ListGalleryImages(_ context.Context) ([]models.GalleryImage, error) {
	return r.gallery.list(), nil
}
func (r *fakeContentRepo) CreateGalleryImage(_ context.Context, g *models.GalleryImage) error {
	r.gallery.create(&g.ID, g)
	return nil
}
func (r *fakeContentRepo) UpdateGalleryImage(_ context.Context, g *models.GalleryImage) error {
	return r.gallery.update(g.ID, g)
}
func (r *fakeContentRepo) FindGalleryImage(_ context.Context, id primitive.ObjectID) (*models.GalleryImage, error) {
	return r.gallery.find(id)
}
func (r *fakeContentRepo) DeleteGalleryImage(_ context.Context, id primitive.ObjectID) error {
	return r.gallery.delete(id)
}

func (r *fakeContentRepo) ListExecutives(_ context.Context) ([]models.Executive, error) {
	return r.executives.list(), nil
}
func (r *fakeContentRepo) CreateExecutive(_ context.Context, e *models.Executive) error {
	r.executives.create(&e.ID, e)
	return nil
}
func (r *fakeContentRepo) UpdateExecutive(_ context.Context, e *models.Executive) error {
	return r.executives.update(e.ID, e)
}
func (r *fakeContentRepo) FindExecutive(_ context.Context, id primitive.ObjectID) (*models.Executive, error) {
	return r.executives.find(id)
}
func (r *fakeContentRepo) DeleteExecutive(_ context.Context, id primitive.ObjectID) error {
	return r.executives.delete(id)
}

func newContentFixture() ContentService {
	return NewContentService(newFakeContentRepo())
}

func TestSlideCRUD(t *testing.T) {
	t.Parallel()

	svc := newContentFixture()
	ctx := context.Background()

	created, err := svc.CreateSlide(ctx, &dto.SlideRequest{
		Title:    "Annual Summit 2026",
		Subtitle: "Registration is open",
		ImageURL: "https://img.example.com/summit.jpg",
		Order:    1,
	})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	updated, err := svc.UpdateSlide(ctx, created.ID, &dto.SlideRequest{
		Title:    "Annual Summit 2026 - Sold Out",
		ImageURL: "https://img.example.com/summit.jpg",
		Order:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Annual Summit 2026 - Sold Out", updated.Title)
	assert.Empty(t, updated.Subtitle, "update replaces the whole record")

	slides, err := svc.ListSlides(ctx)
	require.NoError(t, err)
	assert.Len(t, slides, 1)

	require.NoError(t, svc.DeleteSlide(ctx, created.ID))

	slides, err = svc.ListSlides(ctx)
	require.NoError(t, err)
	assert.Empty(t, slides)
}

func TestUpdateSlide_NotFound(t *testing.T) {
	t.Parallel()

	svc := newContentFixture()

	_, err := svc.UpdateSlide(context.Background(), primitive.NewObjectID(), &dto.SlideRequest{
		Title:    "Ghost",
		ImageURL: "https://img.example.com/x.jpg",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Slide not found")
}

func TestCreateEvent_DefaultsToUpcoming(t *testing.T) {
	t.Parallel()

	svc := newContentFixture()

	event, err := svc.CreateEvent(context.Background(), &dto.EventRequest{
		Title: "Incident Response Workshop",
		Date:  "2026-10-15",
		Type:  "Physical",
	})
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusUpcoming, event.Status)
	assert.Equal(t, models.EventTypePhysical, event.Type)

	past, err := svc.CreateEvent(context.Background(), &dto.EventRequest{
		Title:  "Last Year's Summit",
		Date:   "2025-05-01",
		Type:   "Hybrid",
		Status: "past",
	})
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusPast, past.Status)
}

func TestCreateExecutive_DefaultsToActive(t *testing.T) {
	t.Parallel()

	svc := newContentFixture()

	exec, err := svc.CreateExecutive(context.Background(), &dto.ExecutiveRequest{
		Name:     "Miras",
		Position: "Chairperson",
	})
	require.NoError(t, err)
	assert.True(t, exec.IsActive)

	inactive := false
	former, err := svc.CreateExecutive(context.Background(), &dto.ExecutiveRequest{
		Name:     "Former Chair",
		Position: "Past Chairperson",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, former.IsActive)
}

func TestBlogAndGalleryAndAnnouncementCRUD(t *testing.T) {
	t.Parallel()

	svc := newContentFixture()
	ctx := context.Background()

	blog, err := svc.CreateBlog(ctx, &dto.BlogRequest{
		Title:   "Zero Trust in Practice",
		Author:  "Dana",
		Content: "Long-form content here.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, blog.Date, "publication date is stamped server-side")

	img, err := svc.CreateGalleryImage(ctx, &dto.GalleryImageRequest{
		URL:      "https://img.example.com/gallery/1.jpg",
		Category: "Events",
		Title:    "Summit keynote",
	})
	require.NoError(t, err)

	ann, err := svc.CreateAnnouncement(ctx, &dto.AnnouncementRequest{
		Title:       "CTF registration open",
		Date:        "2026-09-10",
		Category:    "Competitions",
		Description: "Teams of up to four.",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBlog(ctx, blog.ID))
	require.NoError(t, svc.DeleteGalleryImage(ctx, img.ID))
	require.NoError(t, svc.DeleteAnnouncement(ctx, ann.ID))

	err = svc.DeleteBlog(ctx, blog.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
