package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"acsp_backend/internal/models"
)

var ErrContentNotFound = errors.New("content not found")

// ContentRepository persists the six admin-managed content resources.
type ContentRepository interface {
	ListSlides(ctx context.Context) ([]models.CarouselSlide, error)
	CreateSlide(ctx context.Context, slide *models.CarouselSlide) error
	UpdateSlide(ctx context.Context, slide *models.CarouselSlide) error
	FindSlide(ctx context.Context, id primitive.ObjectID) (*models.CarouselSlide, error)
	DeleteSlide(ctx context.Context, id primitive.ObjectID) error

	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, a *models.Announcement) error
	UpdateAnnouncement(ctx context.Context, a *models.Announcement) error
	FindAnnouncement(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id primitive.ObjectID) error

	ListEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, e *models.Event) error
	UpdateEvent(ctx context.Context, e *models.Event) error
	FindEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	DeleteEvent(ctx context.Context, id primitive.ObjectID) error

	ListBlogs(ctx context.Context) ([]models.Blog, error)
	CreateBlog(ctx context.Context, b *models.Blog) error
	UpdateBlog(ctx context.Context, b *models.Blog) error
	FindBlog(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id primitive.ObjectID) error

	ListGalleryImages(ctx context.Context) ([]models.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, g *models.GalleryImage) error
	UpdateGalleryImage(ctx context.Context, g *models.GalleryImage) error
	FindGalleryImage(ctx context.Context, id primitive.ObjectID) (*models.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id primitive.ObjectID) error

	ListExecutives(ctx context.Context) ([]models.Executive, error)
	CreateExecutive(ctx context.Context, e *models.Executive) error
	UpdateExecutive(ctx context.Context, e *models.Executive) error
	FindExecutive(ctx context.Context, id primitive.ObjectID) (*models.Executive, error)
	DeleteExecutive(ctx context.Context, id primitive.ObjectID) error
}

type MongoContentRepository struct {
	slides        *mongo.Collection
	announcements *mongo.Collection
	events        *mongo.Collection
	blogs         *mongo.Collection
	gallery       *mongo.Collection
	executives    *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *MongoContentRepository {
	return &MongoContentRepository{
		slides:        db.Collection(collCarousel),
		announcements: db.Collection(collAnnouncements),
		events:        db.Collection(collEvents),
		blogs:         db.Collection(collBlogs),
		gallery:       db.Collection(collGallery),
		executives:    db.Collection(collExecutives),
	}
}

// Ordered resources sort by their display order, the rest newest first.
var (
	sortByOrder  = options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	sortByNewest = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
)

func listDocs[T any](ctx context.Context, coll *mongo.Collection, opts *options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}

	return docs, nil
}

func findDoc[T any](ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to find in %s: %w", coll.Name(), err)
	}
	return &doc, nil
}

func insertDoc(ctx context.Context, coll *mongo.Collection, doc any) (primitive.ObjectID, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", coll.Name(), err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func replaceDoc(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, doc any) error {
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return fmt.Errorf("failed to update in %s: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return ErrContentNotFound
	}
	return nil
}

func deleteDoc(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return ErrContentNotFound
	}
	return nil
}

// Carousel slides

func (r *MongoContentRepository) ListSlides(ctx context.Context) ([]models.CarouselSlide, error) {
	return listDocs[models.CarouselSlide](ctx, r.slides, sortByOrder)
}

func (r *MongoContentRepository) CreateSlide(ctx context.Context, slide *models.CarouselSlide) error {
	now := time.Now().UTC()
	slide.CreatedAt = now
	slide.UpdatedAt = now

	id, err := insertDoc(ctx, r.slides, slide)
	if err != nil {
		return err
	}
	slide.ID = id
	return nil
}

func (r *MongoContentRepository) UpdateSlide(ctx context.Context, slide *models.CarouselSlide) error {
	slide.UpdatedAt = time.Now().UTC()
	return replaceDoc(ctx, r.slides, slide.ID, slide)
}

func (r *MongoContentRepository) FindSlide(ctx context.Context, id primitive.ObjectID) (*models.CarouselSlide, error) {
	return findDoc[models.CarouselSlide](ctx, r.slides, id)
}

func (r *MongoContentRepository) DeleteSlide(ctx context.Context, id primitive.ObjectID) error {
	return deleteDoc(ctx, r.slides, id)
}

// Announcements

func (r *MongoContentRepository) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	return listDocs[models.Announcement](ctx, r.announcements, sortByNewest)
}

func (r *MongoContentRepository) CreateAnnouncement(ctx context.Context, a *models.Announcement) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	id, err := insertDoc(ctx, r.announcements, a)
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

func (r *MongoContentRepository) UpdateAnnouncement(ctx context.Context, a *models.Announcement) error {
	a.UpdatedAt = time.Now().UTC()
	return replaceDoc(ctx, r.announcements, a.ID, a)
}

func (r *MongoContentRepository) FindAnnouncement(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	return findDoc[models.Announcement](ctx, r.announcements, id)
}

func (r *MongoContentRepository) DeleteAnnouncement(ctx context.Context, id primitive.ObjectID) error {
	return deleteDoc(ctx, r.announcements, id)
}

// Events

func (r *MongoContentRepository) ListEvents(ctx context.Context) ([]models.Event, error) {
	return listDocs[models.Event](ctx, r.events, sortByNewest)
}

func (r *MongoContentRepository) CreateEvent(ctx context.Context, e *models.Event) error {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	id, err := insertDoc(ctx, r.events, e)
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

func (r *MongoContentRepository) UpdateEvent(ctx context.Context, e *models.Event) error {
	e.UpdatedAt = time.Now().UTC()
	return replaceDoc(ctx, r.events, e.ID, e)
}

func (r *MongoContentRepository) FindEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return findDoc[models.Event](ctx, r.events, id)
}

func (r *MongoContentRepository) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	return deleteDoc(ctx, r.events, id)
}

// Blogs

func (r *MongoContentRepository) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return listDocs[models.Blog](ctx, r.blogs, sortByNewest)
}

func (r *MongoContentRepository) CreateBlog(ctx context.Context, b *models.Blog) error {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	id, err := insertDoc(ctx, r.blogs, b)
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

func (r *MongoContentRepository) UpdateBlog(ctx context.Context, b *models.Blog) error {
	b.UpdatedAt = time.Now().UTC()
	return replaceDoc(ctx, r.blogs, b.ID, b)
}

func (r *MongoContentRepository) FindBlog(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return findDoc[models.Blog](ctx, r.blogs, id)
}

func (r *MongoContentRepository) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	return deleteDoc(ctx, r.blogs, id)
}

// Gallery

func (r *MongoContentRepository) ListGalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	return listDocs[models.GalleryImage](ctx, r.gallery, sortByNewest)
}

func (r *MongoContentRepository) CreateGalleryImage(ctx context.Context, g *models.GalleryImage) error {
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now

	id, err := insertDoc(ctx, r.gallery, g)
	if err != nil {
		return err
	}
	g.ID = id
	return nil
}

func (r *MongoContentRepository) UpdateGalleryImage(ctx context.Context, g *models.GalleryImage) error {
	g.UpdatedAt = time.Now().UTC()
	return replaceDoc(ctx, r.gallery, g.ID, g)
}

func (r *MongoContentRepository) FindGalleryImage(ctx context.Context, id primitive.ObjectID) (*models.GalleryImage, error) {
	return findDoc[models.GalleryImage](ctx, r.gallery, id)
}

func (r *MongoContentRepository) DeleteGalleryImage(ctx context.Context, id primitive.ObjectID) error {
	return deleteDoc(ctx, r.gallery, id)
}

// Executives

func (r *MongoContentRepository) ListExecutives(ctx context.Context) ([]models.Executive, error) {
	return listDocs[models.Executive](ctx, r.executives, sortByOrder)
}

func (r *MongoContentRepository) CreateExecutive(ctx context.Context, e *models.Executive) error {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	id, err := insertDoc(ctx, r.executives, e)
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

func (r *MongoContentRepository) UpdateExecutive(ctx context.Context, e *models.Executive) error {
	e.UpdatedAt = time.Now().UTC()
	return replaceDoc(ctx, r.executives, e.ID, e)
}

func (r *MongoContentRepository) FindExecutive(ctx context.Context, id primitive.ObjectID) (*models.Executive, error) {
	return findDoc[models.Executive](ctx, r.executives, id)
}

func (r *MongoContentRepository) DeleteExecutive(ctx context.Context, id primitive.ObjectID) error {
	return deleteDoc(ctx, r.executives, id)
}
