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

var (
	ErrForumNotFound      = errors.New("forum not found")
	ErrThreadNotFound     = errors.New("thread not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrForumAlreadyExists = errors.New("forum already exists")
)

type ForumRepository interface {
	ListForums(ctx context.Context) ([]models.Forum, error)
	CreateForum(ctx context.Context, forum *models.Forum) error
	FindForum(ctx context.Context, id primitive.ObjectID) (*models.Forum, error)
	DeleteForum(ctx context.Context, id primitive.ObjectID) error

	ListThreads(ctx context.Context, forumID primitive.ObjectID) ([]models.ForumThread, error)
	CreateThread(ctx context.Context, thread *models.ForumThread) error
	FindThread(ctx context.Context, id primitive.ObjectID) (*models.ForumThread, error)
	DeleteThread(ctx context.Context, id primitive.ObjectID) error

	ListPosts(ctx context.Context, threadID primitive.ObjectID, statuses []models.PostStatus) ([]models.ForumPost, error)
	ListPostsByStatus(ctx context.Context, status models.PostStatus) ([]models.ForumPost, error)
	CreatePost(ctx context.Context, post *models.ForumPost) error
	FindPost(ctx context.Context, id primitive.ObjectID) (*models.ForumPost, error)
	UpdatePost(ctx context.Context, post *models.ForumPost) error
	DeletePost(ctx context.Context, id primitive.ObjectID) error
	ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.ForumPost, error)
}

type MongoForumRepository struct {
	forums  *mongo.Collection
	threads *mongo.Collection
	posts   *mongo.Collection
}

func NewForumRepository(db *mongo.Database) *MongoForumRepository {
	return &MongoForumRepository{
		forums:  db.Collection(collForums),
		threads: db.Collection(collThreads),
		posts:   db.Collection(collPosts),
	}
}

// Forums

func (r *MongoForumRepository) ListForums(ctx context.Context) ([]models.Forum, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return listDocs[models.Forum](ctx, r.forums, opts)
}

func (r *MongoForumRepository) CreateForum(ctx context.Context, forum *models.Forum) error {
	now := time.Now().UTC()
	forum.CreatedAt = now
	forum.UpdatedAt = now

	res, err := r.forums.InsertOne(ctx, forum)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrForumAlreadyExists
		}
		return fmt.Errorf("failed to insert forum: %w", err)
	}

	forum.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoForumRepository) FindForum(ctx context.Context, id primitive.ObjectID) (*models.Forum, error) {
	var forum models.Forum
	err := r.forums.FindOne(ctx, bson.M{"_id": id}).Decode(&forum)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrForumNotFound
		}
		return nil, fmt.Errorf("failed to find forum: %w", err)
	}
	return &forum, nil
}

// DeleteForum removes the forum along with its threads and posts.
func (r *MongoForumRepository) DeleteForum(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.forums.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete forum: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrForumNotFound
	}

	cursor, err := r.threads.Find(ctx, bson.M{"forumId": id},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return fmt.Errorf("failed to list forum threads: %w", err)
	}

	var ids []primitive.ObjectID
	var refs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &refs); err != nil {
		return fmt.Errorf("failed to decode forum threads: %w", err)
	}
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}

	if len(ids) > 0 {
		if _, err := r.posts.DeleteMany(ctx, bson.M{"threadId": bson.M{"$in": ids}}); err != nil {
			return fmt.Errorf("failed to delete forum posts: %w", err)
		}
	}
	if _, err := r.threads.DeleteMany(ctx, bson.M{"forumId": id}); err != nil {
		return fmt.Errorf("failed to delete forum threads: %w", err)
	}

	return nil
}

// Threads

func (r *MongoForumRepository) ListThreads(ctx context.Context, forumID primitive.ObjectID) ([]models.ForumThread, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.threads.Find(ctx, bson.M{"forumId": forumID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	defer cursor.Close(ctx)

	threads := make([]models.ForumThread, 0)
	if err := cursor.All(ctx, &threads); err != nil {
		return nil, fmt.Errorf("failed to decode threads: %w", err)
	}

	return threads, nil
}

func (r *MongoForumRepository) CreateThread(ctx context.Context, thread *models.ForumThread) error {
	now := time.Now().UTC()
	thread.CreatedAt = now
	thread.UpdatedAt = now

	res, err := r.threads.InsertOne(ctx, thread)
	if err != nil {
		return fmt.Errorf("failed to insert thread: %w", err)
	}

	thread.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoForumRepository) FindThread(ctx context.Context, id primitive.ObjectID) (*models.ForumThread, error) {
	var thread models.ForumThread
	err := r.threads.FindOne(ctx, bson.M{"_id": id}).Decode(&thread)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrThreadNotFound
		}
		return nil, fmt.Errorf("failed to find thread: %w", err)
	}
	return &thread, nil
}

// DeleteThread removes the thread along with its posts.
func (r *MongoForumRepository) DeleteThread(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.threads.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrThreadNotFound
	}

	if _, err := r.posts.DeleteMany(ctx, bson.M{"threadId": id}); err != nil {
		return fmt.Errorf("failed to delete thread posts: %w", err)
	}

	return nil
}

// Posts

func (r *MongoForumRepository) ListPosts(ctx context.Context, threadID primitive.ObjectID, statuses []models.PostStatus) ([]models.ForumPost, error) {
	filter := bson.M{"threadId": threadID}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return r.findPosts(ctx, filter, opts)
}

func (r *MongoForumRepository) ListPostsByStatus(ctx context.Context, status models.PostStatus) ([]models.ForumPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return r.findPosts(ctx, bson.M{"status": status}, opts)
}

func (r *MongoForumRepository) findPosts(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.ForumPost, error) {
	cursor, err := r.posts.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := make([]models.ForumPost, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	return posts, nil
}

// CreatePost inserts the post and bumps the thread reply counter.
func (r *MongoForumRepository) CreatePost(ctx context.Context, post *models.ForumPost) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	res, err := r.posts.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	post.ID = res.InsertedID.(primitive.ObjectID)

	_, err = r.threads.UpdateOne(ctx,
		bson.M{"_id": post.ThreadID},
		bson.M{"$inc": bson.M{"replyCount": 1}})
	if err != nil {
		return fmt.Errorf("failed to update reply count: %w", err)
	}

	return nil
}

func (r *MongoForumRepository) FindPost(ctx context.Context, id primitive.ObjectID) (*models.ForumPost, error) {
	var post models.ForumPost
	err := r.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &post, nil
}

func (r *MongoForumRepository) UpdatePost(ctx context.Context, post *models.ForumPost) error {
	post.UpdatedAt = time.Now().UTC()

	res, err := r.posts.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrPostNotFound
	}

	return nil
}

// DeletePost removes the post and decrements the thread reply counter.
func (r *MongoForumRepository) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	post, err := r.FindPost(ctx, id)
	if err != nil {
		return err
	}

	res, err := r.posts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrPostNotFound
	}

	_, err = r.threads.UpdateOne(ctx,
		bson.M{"_id": post.ThreadID},
		bson.M{"$inc": bson.M{"replyCount": -1}})
	if err != nil {
		return fmt.Errorf("failed to update reply count: %w", err)
	}

	return nil
}

// ToggleLike adds the user to the post's like set, or removes them if
// already present, and returns the post with the recomputed counter.
func (r *MongoForumRepository) ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.ForumPost, error) {
	post, err := r.FindPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked := false
	for _, id := range post.LikedBy {
		if id == userID {
			liked = true
			break
		}
	}

	var update bson.M
	if liked {
		update = bson.M{
			"$pull": bson.M{"likedBy": userID},
			"$inc":  bson.M{"likes": -1},
		}
	} else {
		update = bson.M{
			"$addToSet": bson.M{"likedBy": userID},
			"$inc":      bson.M{"likes": 1},
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.ForumPost
	err = r.posts.FindOneAndUpdate(ctx, bson.M{"_id": postID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	return &updated, nil
}
