package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"acsp_backend/internal/apperrors"
	"acsp_backend/internal/logger"
	"acsp_backend/internal/models"
	"acsp_backend/internal/repositories"
	"acsp_backend/internal/services/dto"
)

// Moderation actions accepted by ModeratePost.
const (
	ModerationApprove = "approve"
	ModerationReject  = "reject"
)

type ForumService interface {
	ListForums(ctx context.Context) ([]models.Forum, error)
	CreateForum(ctx context.Context, req *dto.CreateForumRequest) (*models.Forum, error)
	DeleteForum(ctx context.Context, id primitive.ObjectID) error

	ListThreads(ctx context.Context, forumID primitive.ObjectID) ([]models.ForumThread, error)
	CreateThread(ctx context.Context, forumID primitive.ObjectID, author *models.User, req *dto.CreateThreadRequest) (*models.ForumThread, error)
	DeleteThread(ctx context.Context, threadID primitive.ObjectID, actor *models.User) error

	ListPosts(ctx context.Context, threadID primitive.ObjectID, viewer *models.User) ([]models.ForumPost, error)
	CreatePost(ctx context.Context, threadID primitive.ObjectID, author *models.User, req *dto.CreatePostRequest) (*models.ForumPost, error)
	DeletePost(ctx context.Context, postID primitive.ObjectID, actor *models.User) error
	ModeratePost(ctx context.Context, postID primitive.ObjectID, req *dto.ModeratePostRequest) (*models.ForumPost, error)
	ListPendingPosts(ctx context.Context) ([]models.ForumPost, error)
	ToggleLike(ctx context.Context, postID primitive.ObjectID, userID primitive.ObjectID) (*models.ForumPost, error)
}

type ForumServiceImpl struct {
	repo repositories.ForumRepository
}

func NewForumService(repo repositories.ForumRepository) ForumService {
	return &ForumServiceImpl{repo: repo}
}

func canModerate(user *models.User) bool {
	return user.Role == models.UserRoleAdmin || user.Role == models.UserRoleModerator
}

// Forums

func (s *ForumServiceImpl) ListForums(ctx context.Context) ([]models.Forum, error) {
	forums, err := s.repo.ListForums(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return forums, nil
}

func (s *ForumServiceImpl) CreateForum(ctx context.Context, req *dto.CreateForumRequest) (*models.Forum, error) {
	forum := &models.Forum{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.CreateForum(ctx, forum); err != nil {
		if errors.Is(err, repositories.ErrForumAlreadyExists) {
			return nil, apperrors.ErrForumAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "forum created", "forum", forum.Name)

	return forum, nil
}

func (s *ForumServiceImpl) DeleteForum(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.DeleteForum(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrForumNotFound) {
			return apperrors.ErrForumNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Threads

func (s *ForumServiceImpl) ListThreads(ctx context.Context, forumID primitive.ObjectID) ([]models.ForumThread, error) {
	if _, err := s.repo.FindForum(ctx, forumID); err != nil {
		if errors.Is(err, repositories.ErrForumNotFound) {
			return nil, apperrors.ErrForumNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	threads, err := s.repo.ListThreads(ctx, forumID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return threads, nil
}

func (s *ForumServiceImpl) CreateThread(ctx context.Context, forumID primitive.ObjectID, author *models.User, req *dto.CreateThreadRequest) (*models.ForumThread, error) {
	if _, err := s.repo.FindForum(ctx, forumID); err != nil {
		if errors.Is(err, repositories.ErrForumNotFound) {
			return nil, apperrors.ErrForumNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	thread := &models.ForumThread{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		ForumID:    forumID,
	}

	if err := s.repo.CreateThread(ctx, thread); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return thread, nil
}

// DeleteThread allows the author and moderators to remove a thread.
func (s *ForumServiceImpl) DeleteThread(ctx context.Context, threadID primitive.ObjectID, actor *models.User) error {
	thread, err := s.repo.FindThread(ctx, threadID)
	if err != nil {
		if errors.Is(err, repositories.ErrThreadNotFound) {
			return apperrors.ErrThreadNotFound
		}
		return apperrors.InternalError(err)
	}

	if thread.AuthorID != actor.ID && !canModerate(actor) {
		return apperrors.ErrForbidden
	}

	if err := s.repo.DeleteThread(ctx, threadID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Posts

// ListPosts returns approved posts, plus the viewer's own posts in any
// state, plus everything for moderators.
func (s *ForumServiceImpl) ListPosts(ctx context.Context, threadID primitive.ObjectID, viewer *models.User) ([]models.ForumPost, error) {
	if _, err := s.repo.FindThread(ctx, threadID); err != nil {
		if errors.Is(err, repositories.ErrThreadNotFound) {
			return nil, apperrors.ErrThreadNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	posts, err := s.repo.ListPosts(ctx, threadID, nil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if canModerate(viewer) {
		return posts, nil
	}

	visible := make([]models.ForumPost, 0, len(posts))
	for _, post := range posts {
		if post.Status == models.PostStatusApproved || post.AuthorID == viewer.ID {
			visible = append(visible, post)
		}
	}

	return visible, nil
}

// CreatePost queues the post for moderation; moderator posts go live
// immediately.
func (s *ForumServiceImpl) CreatePost(ctx context.Context, threadID primitive.ObjectID, author *models.User, req *dto.CreatePostRequest) (*models.ForumPost, error) {
	if _, err := s.repo.FindThread(ctx, threadID); err != nil {
		if errors.Is(err, repositories.ErrThreadNotFound) {
			return nil, apperrors.ErrThreadNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	status := models.PostStatusPending
	if canModerate(author) {
		status = models.PostStatusApproved
	}

	post := &models.ForumPost{
		Content:    req.Content,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		ThreadID:   threadID,
		Status:     status,
	}

	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return post, nil
}

func (s *ForumServiceImpl) DeletePost(ctx context.Context, postID primitive.ObjectID, actor *models.User) error {
	post, err := s.repo.FindPost(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return apperrors.InternalError(err)
	}

	if post.AuthorID != actor.ID && !canModerate(actor) {
		return apperrors.ErrForbidden
	}

	if err := s.repo.DeletePost(ctx, postID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ForumServiceImpl) ModeratePost(ctx context.Context, postID primitive.ObjectID, req *dto.ModeratePostRequest) (*models.ForumPost, error) {
	post, err := s.repo.FindPost(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	switch req.Action {
	case ModerationApprove:
		post.Status = models.PostStatusApproved
		post.RejectReason = ""
	case ModerationReject:
		post.Status = models.PostStatusRejected
		post.RejectReason = req.Reason
	default:
		return nil, apperrors.ErrInvalidModeration
	}

	if err := s.repo.UpdatePost(ctx, post); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "post moderated",
		"post_id", post.ID.Hex(),
		"action", req.Action)

	return post, nil
}

func (s *ForumServiceImpl) ListPendingPosts(ctx context.Context) ([]models.ForumPost, error) {
	posts, err := s.repo.ListPostsByStatus(ctx, models.PostStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posts, nil
}

// ToggleLike likes an approved post, or removes the caller's existing like.
func (s *ForumServiceImpl) ToggleLike(ctx context.Context, postID primitive.ObjectID, userID primitive.ObjectID) (*models.ForumPost, error) {
	post, err := s.repo.ToggleLike(ctx, postID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}
