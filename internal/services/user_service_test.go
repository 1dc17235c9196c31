package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"acsp_backend/internal/apperrors"
	"acsp_backend/internal/auth"
	"acsp_backend/internal/models"
	"acsp_backend/internal/services/dto"
)

func newUserFixture() (UserService, *fakeUserRepo, *fakeMailService) {
	repo := newFakeUserRepo()
	mail := &fakeMailService{}
	storage := newFakeStorage()
	uploads := NewUploadService(storage, newTestProcessor(), 5*1024*1024, []string{"image/"})
	return NewUserService(repo, uploads, mail), repo, mail
}

func TestCompleteProfile_SubmitsForReview(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newUserFixture()

	seeded := repo.seed(&models.User{
		Email:      "aizhan@example.com",
		Status:     models.UserStatusUnverifiedProfile,
		IsVerified: true,
	})

	user, err := svc.CompleteProfile(context.Background(), seeded.ID, &dto.CompleteProfileRequest{
		Photo:       "https://img.example.com/photo.jpg",
		IDCard:      "https://img.example.com/id.jpg",
		Phone:       "+7 701 000 0000",
		Institution: "KazNU",
	})
	require.NoError(t, err)

	assert.Equal(t, models.UserStatusPendingVerification, user.Status)
	assert.Equal(t, "https://img.example.com/photo.jpg", user.Profile.Photo)
	assert.Equal(t, "+7 701 000 0000", user.Profile.Phone)
	assert.True(t, user.Profile.Complete())
}

func TestCompleteProfile_WrongStatus(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newUserFixture()

	seeded := repo.seed(&models.User{
		Email:  "aizhan@example.com",
		Status: models.UserStatusPending, // email not yet verified
	})

	_, err := svc.CompleteProfile(context.Background(), seeded.ID, &dto.CompleteProfileRequest{
		Photo:  "https://img.example.com/photo.jpg",
		IDCard: "https://img.example.com/id.jpg",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestUpdateProfile_NonEmptyFieldsWin(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newUserFixture()

	seeded := repo.seed(&models.User{
		Name:       "Aizhan",
		Email:      "aizhan@example.com",
		Status:     models.UserStatusVerified,
		IsVerified: true,
		Profile: models.Profile{
			Photo:  "https://img.example.com/photo.jpg",
			IDCard: "https://img.example.com/id.jpg",
			Bio:    "Original bio",
		},
	})

	user, err := svc.UpdateProfile(context.Background(), seeded.ID, &dto.UpdateProfileRequest{
		Name:  "Aizhan S.",
		Phone: "+7 701 000 0000",
	})
	require.NoError(t, err)

	assert.Equal(t, "Aizhan S.", user.Name)
	assert.Equal(t, "+7 701 000 0000", user.Profile.Phone)
	assert.Equal(t, "Original bio", user.Profile.Bio, "empty fields leave existing values")
	assert.Equal(t, "https://img.example.com/photo.jpg", user.Profile.Photo, "documents are untouched")
}

func TestUpdateProfile_ChangesEmail(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newUserFixture()

	seeded := repo.seed(&models.User{
		Name:   "Aizhan",
		Email:  "aizhan@example.com",
		Status: models.UserStatusVerified,
	})
	repo.seed(&models.User{
		Email:  "taken@example.com",
		Status: models.UserStatusVerified,
	})

	user, err := svc.UpdateProfile(context.Background(), seeded.ID, &dto.UpdateProfileRequest{
		Email: "Aizhan.S@Example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "aizhan.s@example.com", user.Email, "stored lowercased")

	// Taking another account's address is rejected.
	_, err = svc.UpdateProfile(context.Background(), seeded.ID, &dto.UpdateProfileRequest{
		Email: "taken@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newUserFixture()

	hash, err := auth.HashPassword("current_password")
	require.NoError(t, err)
	seeded := repo.seed(&models.User{
		Email:        "aizhan@example.com",
		PasswordHash: hash,
		Status:       models.UserStatusVerified,
	})

	err = svc.ChangePassword(context.Background(), seeded.ID, "wrong_password", "new_password123")
	require.Error(t, err)

	err = svc.ChangePassword(context.Background(), seeded.ID, "current_password", "123")
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

	require.NoError(t, svc.ChangePassword(context.Background(), seeded.ID, "current_password", "new_password123"))

	stored, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash("new_password123", stored.PasswordHash))
}

func TestListUsers_FiltersAndSanitizes(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newUserFixture()

	repo.seed(&models.User{Email: "a@example.com", Status: models.UserStatusVerified, Role: models.UserRoleMember, PasswordHash: "hash"})
	repo.seed(&models.User{Email: "b@example.com", Status: models.UserStatusPendingVerification, Role: models.UserRoleMember, PasswordHash: "hash"})
	repo.seed(&models.User{Email: "c@example.com", Status: models.UserStatusVerified, Role: models.UserRoleModerator, PasswordHash: "hash"})

	all, err := svc.ListUsers(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all.Users, 3)
	assert.EqualValues(t, 3, all.Total)
	for _, u := range all.Users {
		assert.Empty(t, u.PasswordHash)
	}

	verified, err := svc.ListUsers(context.Background(), &dto.ListUsersQuery{Status: models.UserStatusVerified})
	require.NoError(t, err)
	assert.Len(t, verified.Users, 2)
	assert.EqualValues(t, 2, verified.Total)

	moderators, err := svc.ListUsers(context.Background(), &dto.ListUsersQuery{Role: models.UserRoleModerator})
	require.NoError(t, err)
	assert.Len(t, moderators.Users, 1)
}

func TestListUsers_Paginates(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newUserFixture()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		repo.seed(&models.User{
			Email:     fmt.Sprintf("member%d@example.com", i),
			Status:    models.UserStatusVerified,
			Role:      models.UserRoleMember,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	first, err := svc.ListUsers(context.Background(), &dto.ListUsersQuery{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, first.Users, 2)
	assert.EqualValues(t, 5, first.Total)
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, 3, first.Pages)
	// Newest first.
	assert.Equal(t, "member4@example.com", first.Users[0].Email)
	assert.Equal(t, "member3@example.com", first.Users[1].Email)

	last, err := svc.ListUsers(context.Background(), &dto.ListUsersQuery{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, last.Users, 1)
	assert.Equal(t, "member0@example.com", last.Users[0].Email)

	beyond, err := svc.ListUsers(context.Background(), &dto.ListUsersQuery{Page: 4, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, beyond.Users)
	assert.EqualValues(t, 5, beyond.Total)
}

func TestChangeRole(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newUserFixture()

	seeded := repo.seed(&models.User{
		Email:        "aizhan@example.com",
		Role:         models.UserRoleMember,
		Status:       models.UserStatusVerified,
		PasswordHash: "hash",
	})

	user, err := svc.ChangeRole(context.Background(), seeded.ID, models.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, user.Role)
	assert.Empty(t, user.PasswordHash)

	stored, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, stored.Role)

	user, err = svc.ChangeRole(context.Background(), seeded.ID, models.UserRoleMember)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleMember, user.Role)

	// Only admin and member are assignable.
	_, err = svc.ChangeRole(context.Background(), seeded.ID, models.UserRoleModerator)
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)

	_, err = svc.ChangeRole(context.Background(), primitive.NewObjectID(), models.UserRoleAdmin)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestApproveUser(t *testing.T) {
	t.Parallel()

	svc, repo, mail := newUserFixture()

	seeded := repo.seed(&models.User{
		Email:           "aizhan@example.com",
		Status:          models.UserStatusPendingVerification,
		IsVerified:      true,
		RejectionReason: "Blurry ID card",
	})

	user, err := svc.ApproveUser(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusVerified, user.Status)
	assert.Empty(t, user.RejectionReason)
	assert.Equal(t, 1, mail.profileVerified)
}

func TestApproveUser_AfterRejection(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newUserFixture()

	seeded := repo.seed(&models.User{
		Email:  "aizhan@example.com",
		Status: models.UserStatusRejected,
	})

	user, err := svc.ApproveUser(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusVerified, user.Status)
}

func TestRejectUser(t *testing.T) {
	t.Parallel()

	svc, repo, mail := newUserFixture()

	seeded := repo.seed(&models.User{
		Email:  "aizhan@example.com",
		Status: models.UserStatusPendingVerification,
	})

	user, err := svc.RejectUser(context.Background(), seeded.ID, "ID card does not match the name")
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusRejected, user.Status)
	assert.Equal(t, "ID card does not match the name", user.RejectionReason)
	assert.Equal(t, 1, mail.accountStatusSent)
	assert.Equal(t, "ID card does not match the name", mail.lastReason)
}

func TestSuspendAndReinstate(t *testing.T) {
	t.Parallel()

	svc, repo, mail := newUserFixture()

	seeded := repo.seed(&models.User{
		Email:      "aizhan@example.com",
		Status:     models.UserStatusVerified,
		IsVerified: true,
	})

	suspended, err := svc.SuspendUser(context.Background(), seeded.ID, "Spamming the forum")
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusSuspended, suspended.Status)

	reinstated, err := svc.ReinstateUser(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusVerified, reinstated.Status)
	assert.Equal(t, 2, mail.accountStatusSent)
}

func TestBanAndUnban_RestoresOriginalStatus(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newUserFixture()

	seeded := repo.seed(&models.User{
		Email:      "aizhan@example.com",
		Status:     models.UserStatusPendingVerification,
		IsVerified: true,
	})

	banned, err := svc.BanUser(context.Background(), seeded.ID, "Abusive behavior")
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusBanned, banned.Status)
	assert.Equal(t, "Abusive behavior", banned.BanReason)

	stored, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusPendingVerification, stored.StatusBeforeBan)

	unbanned, err := svc.UnbanUser(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusPendingVerification, unbanned.Status)
	assert.Empty(t, unbanned.BanReason)

	restored, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Empty(t, restored.StatusBeforeBan)
}

func TestBanUser_AlreadyBanned(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newUserFixture()

	seeded := repo.seed(&models.User{
		Email:  "aizhan@example.com",
		Status: models.UserStatusBanned,
	})

	_, err := svc.BanUser(context.Background(), seeded.ID, "again")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newUserFixture()

	seeded := repo.seed(&models.User{Email: "aizhan@example.com", Status: models.UserStatusVerified})

	require.NoError(t, svc.DeleteUser(context.Background(), seeded.ID))

	_, err := repo.FindByID(context.Background(), seeded.ID)
	assert.Error(t, err)

	err = svc.DeleteUser(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newUserFixture()

	_, err := svc.GetByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
