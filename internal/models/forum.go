package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Forum struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ForumThread struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Content    string             `bson:"content" json:"content"`
	AuthorID   primitive.ObjectID `bson:"authorId" json:"authorId"`
	AuthorName string             `bson:"authorName" json:"authorName"`
	ForumID    primitive.ObjectID `bson:"forumId" json:"forumId"`
	ReplyCount int                `bson:"replyCount" json:"replyCount"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ForumPost struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Content      string               `bson:"content" json:"content"`
	AuthorID     primitive.ObjectID   `bson:"authorId" json:"authorId"`
	AuthorName   string               `bson:"authorName" json:"authorName"`
	ThreadID     primitive.ObjectID   `bson:"threadId" json:"threadId"`
	Status       PostStatus           `bson:"status" json:"status"`
	RejectReason string               `bson:"rejectReason,omitempty" json:"rejectReason,omitempty"`
	LikedBy      []primitive.ObjectID `bson:"likedBy,omitempty" json:"-"`
	Likes        int                  `bson:"likes" json:"likes"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}
