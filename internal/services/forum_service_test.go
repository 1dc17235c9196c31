package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"acsp_backend/internal/apperrors"
	"acsp_backend/internal/models"
	"acsp_backend/internal/services/dto"
)

func member(name string) *models.User {
	return &models.User{
		ID:     primitive.NewObjectID(),
		Name:   name,
		Role:   models.UserRoleMember,
		Status: models.UserStatusVerified,
	}
}

func moderator(name string) *models.User {
	return &models.User{
		ID:     primitive.NewObjectID(),
		Name:   name,
		Role:   models.UserRoleModerator,
		Status: models.UserStatusVerified,
	}
}

func newForumFixture(t *testing.T) (ForumService, *fakeForumRepo, *models.Forum, *models.ForumThread) {
	t.Helper()

	repo := newFakeForumRepo()
	svc := NewForumService(repo)

	forum, err := svc.CreateForum(context.Background(), &dto.CreateForumRequest{
		Name:        "Threat Intelligence",
		Description: "Indicators, reports, tooling",
	})
	require.NoError(t, err)

	thread, err := svc.CreateThread(context.Background(), forum.ID, member("Dana"), &dto.CreateThreadRequest{
		Title:   "Weekly IOC digest",
		Content: "Share what you are tracking this week.",
	})
	require.NoError(t, err)

	return svc, repo, forum, thread
}

func TestCreateForum_DuplicateName(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newForumFixture(t)

	_, err := svc.CreateForum(context.Background(), &dto.CreateForumRequest{
		Name: "Threat Intelligence",
	})
	assert.ErrorIs(t, err, apperrors.ErrForumAlreadyExists)
}

func TestCreateThread_UnknownForum(t *testing.T) {
	t.Parallel()

	svc := NewForumService(newFakeForumRepo())

	_, err := svc.CreateThread(context.Background(), primitive.NewObjectID(), member("Dana"), &dto.CreateThreadRequest{
		Title:   "Lost thread",
		Content: "Nobody will see this.",
	})
	assert.ErrorIs(t, err, apperrors.ErrForumNotFound)
}

func TestCreatePost_MemberGoesToModeration(t *testing.T) {
	t.Parallel()

	svc, _, _, thread := newForumFixture(t)

	post, err := svc.CreatePost(context.Background(), thread.ID, member("Dana"), &dto.CreatePostRequest{
		Content: "New Emotet campaign observed.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusPending, post.Status)
}

func TestCreatePost_ModeratorGoesLive(t *testing.T) {
	t.Parallel()

	svc, _, _, thread := newForumFixture(t)

	post, err := svc.CreatePost(context.Background(), thread.ID, moderator("Miras"), &dto.CreatePostRequest{
		Content: "Pinned: posting guidelines.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusApproved, post.Status)
}

func TestListPosts_Visibility(t *testing.T) {
	t.Parallel()

	svc, _, _, thread := newForumFixture(t)

	author := member("Dana")
	other := member("Erlan")
	mod := moderator("Miras")

	approved, err := svc.CreatePost(context.Background(), thread.ID, mod, &dto.CreatePostRequest{Content: "approved post"})
	require.NoError(t, err)

	pending, err := svc.CreatePost(context.Background(), thread.ID, author, &dto.CreatePostRequest{Content: "pending post"})
	require.NoError(t, err)

	// Other members see only approved posts.
	visible, err := svc.ListPosts(context.Background(), thread.ID, other)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, approved.ID, visible[0].ID)

	// The author also sees their own pending post.
	own, err := svc.ListPosts(context.Background(), thread.ID, author)
	require.NoError(t, err)
	require.Len(t, own, 2)
	ids := []primitive.ObjectID{own[0].ID, own[1].ID}
	assert.Contains(t, ids, pending.ID)

	// Moderators see everything.
	all, err := svc.ListPosts(context.Background(), thread.ID, mod)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestModeratePost(t *testing.T) {
	t.Parallel()

	svc, _, _, thread := newForumFixture(t)

	post, err := svc.CreatePost(context.Background(), thread.ID, member("Dana"), &dto.CreatePostRequest{Content: "awaiting review"})
	require.NoError(t, err)

	approved, err := svc.ModeratePost(context.Background(), post.ID, &dto.ModeratePostRequest{Action: ModerationApprove})
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusApproved, approved.Status)
	assert.Empty(t, approved.RejectReason)

	rejected, err := svc.ModeratePost(context.Background(), post.ID, &dto.ModeratePostRequest{
		Action: ModerationReject,
		Reason: "Off topic",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusRejected, rejected.Status)
	assert.Equal(t, "Off topic", rejected.RejectReason)

	_, err = svc.ModeratePost(context.Background(), post.ID, &dto.ModeratePostRequest{Action: "escalate"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidModeration)

	_, err = svc.ModeratePost(context.Background(), primitive.NewObjectID(), &dto.ModeratePostRequest{Action: ModerationApprove})
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestListPendingPosts(t *testing.T) {
	t.Parallel()

	svc, _, _, thread := newForumFixture(t)

	_, err := svc.CreatePost(context.Background(), thread.ID, moderator("Miras"), &dto.CreatePostRequest{Content: "live"})
	require.NoError(t, err)
	pending, err := svc.CreatePost(context.Background(), thread.ID, member("Dana"), &dto.CreatePostRequest{Content: "queued"})
	require.NoError(t, err)

	queue, err := svc.ListPendingPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, pending.ID, queue[0].ID)
}

func TestDeletePost_AuthorOrModeratorOnly(t *testing.T) {
	t.Parallel()

	svc, _, _, thread := newForumFixture(t)

	author := member("Dana")
	post, err := svc.CreatePost(context.Background(), thread.ID, author, &dto.CreatePostRequest{Content: "mine"})
	require.NoError(t, err)

	err = svc.DeletePost(context.Background(), post.ID, member("Erlan"))
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	require.NoError(t, svc.DeletePost(context.Background(), post.ID, author))

	err = svc.DeletePost(context.Background(), post.ID, author)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestDeleteThread_AuthorOrModeratorOnly(t *testing.T) {
	t.Parallel()

	svc, _, forum, _ := newForumFixture(t)

	author := member("Dana")
	thread, err := svc.CreateThread(context.Background(), forum.ID, author, &dto.CreateThreadRequest{
		Title:   "To be removed",
		Content: "Short-lived discussion.",
	})
	require.NoError(t, err)

	err = svc.DeleteThread(context.Background(), thread.ID, member("Erlan"))
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	require.NoError(t, svc.DeleteThread(context.Background(), thread.ID, moderator("Miras")))
}

func TestDeleteForum_CascadesToThreadsAndPosts(t *testing.T) {
	t.Parallel()

	svc, repo, forum, thread := newForumFixture(t)

	_, err := svc.CreatePost(context.Background(), thread.ID, member("Dana"), &dto.CreatePostRequest{Content: "soon gone"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteForum(context.Background(), forum.ID))

	assert.Empty(t, repo.threads)
	assert.Empty(t, repo.posts)
}

func TestReplyCountTracksPosts(t *testing.T) {
	t.Parallel()

	svc, repo, _, thread := newForumFixture(t)

	post, err := svc.CreatePost(context.Background(), thread.ID, member("Dana"), &dto.CreatePostRequest{Content: "first"})
	require.NoError(t, err)
	_, err = svc.CreatePost(context.Background(), thread.ID, member("Erlan"), &dto.CreatePostRequest{Content: "second"})
	require.NoError(t, err)

	stored, err := repo.FindThread(context.Background(), thread.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.ReplyCount)

	require.NoError(t, svc.DeletePost(context.Background(), post.ID, moderator("Miras")))

	stored, err = repo.FindThread(context.Background(), thread.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ReplyCount)
}

func TestToggleLike(t *testing.T) {
	t.Parallel()

	svc, _, _, thread := newForumFixture(t)

	post, err := svc.CreatePost(context.Background(), thread.ID, moderator("Miras"), &dto.CreatePostRequest{Content: "like me"})
	require.NoError(t, err)

	liker := primitive.NewObjectID()

	liked, err := svc.ToggleLike(context.Background(), post.ID, liker)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)

	unliked, err := svc.ToggleLike(context.Background(), post.ID, liker)
	require.NoError(t, err)
	assert.Equal(t, 0, unliked.Likes)

	_, err = svc.ToggleLike(context.Background(), primitive.NewObjectID(), liker)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}
