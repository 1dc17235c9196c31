package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"acsp_backend/internal/apperrors"
	"acsp_backend/internal/auth"
	"acsp_backend/internal/imageprocessor"
	"acsp_backend/internal/logger"
	"acsp_backend/internal/models"
	"acsp_backend/internal/repositories"
	"acsp_backend/internal/services/dto"
)

type UserService interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	CompleteProfile(ctx context.Context, userID primitive.ObjectID, req *dto.CompleteProfileRequest) (*models.User, error)
	CompleteProfileWithFiles(ctx context.Context, userID primitive.ObjectID, photo, idCard *ImageUpload, req *dto.UpdateProfileRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *dto.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, userID primitive.ObjectID, currentPassword, newPassword string) error

	ListUsers(ctx context.Context, query *dto.ListUsersQuery) (*dto.UserListResponse, error)
	ChangeRole(ctx context.Context, id primitive.ObjectID, role models.UserRole) (*models.User, error)
	ApproveUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	RejectUser(ctx context.Context, id primitive.ObjectID, reason string) (*models.User, error)
	SuspendUser(ctx context.Context, id primitive.ObjectID, reason string) (*models.User, error)
	ReinstateUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	BanUser(ctx context.Context, id primitive.ObjectID, reason string) (*models.User, error)
	UnbanUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	uploads  UploadService
	mail     MailService
}

func NewUserService(userRepo repositories.UserRepository, uploads UploadService, mail MailService) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		uploads:  uploads,
		mail:     mail,
	}
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitize(), nil
}

func (s *UserServiceImpl) find(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// CompleteProfile records the verification documents by URL and submits the
// account for admin review.
func (s *UserServiceImpl) CompleteProfile(ctx context.Context, userID primitive.ObjectID, req *dto.CompleteProfileRequest) (*models.User, error) {
	user, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Profile.Photo = req.Photo
	user.Profile.IDCard = req.IDCard
	user.Profile.Phone = req.Phone
	user.Profile.Institution = req.Institution
	user.Profile.Specialization = req.Specialization
	user.Profile.Bio = req.Bio

	return s.submitProfile(ctx, user)
}

// CompleteProfileWithFiles is the multipart path: documents arrive as files,
// get relayed to the image host, and the resulting URLs are recorded. Both
// paths converge on the same lifecycle transition.
func (s *UserServiceImpl) CompleteProfileWithFiles(ctx context.Context, userID primitive.ObjectID, photo, idCard *ImageUpload, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	photo.MaxDim = imageprocessor.MaxProfilePhotoDim
	photoURL, err := s.uploads.UploadImage(ctx, photo)
	if err != nil {
		return nil, asAppError(err)
	}

	idCard.MaxDim = imageprocessor.MaxProfilePhotoDim
	idCardURL, err := s.uploads.UploadImage(ctx, idCard)
	if err != nil {
		return nil, asAppError(err)
	}

	user.Profile.Photo = photoURL
	user.Profile.IDCard = idCardURL
	if req != nil {
		applyProfileFields(user, req)
	}

	return s.submitProfile(ctx, user)
}

func (s *UserServiceImpl) submitProfile(ctx context.Context, user *models.User) (*models.User, error) {
	next, err := user.Transition(models.EventProfileCompleted)
	if err != nil {
		return nil, apperrors.InvalidTransition(err)
	}
	user.Status = next

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "profile submitted for verification", "user_id", user.ID.Hex())

	return user.Sanitize(), nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfileFields(user, req)

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return user.Sanitize(), nil
}

func applyProfileFields(user *models.User, req *dto.UpdateProfileRequest) {
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = normalizeEmail(req.Email)
	}
	if req.Phone != "" {
		user.Profile.Phone = req.Phone
	}
	if req.Institution != "" {
		user.Profile.Institution = req.Institution
	}
	if req.Specialization != "" {
		user.Profile.Specialization = req.Specialization
	}
	if req.Bio != "" {
		user.Profile.Bio = req.Bio
	}
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID primitive.ObjectID, currentPassword, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	user, err := s.find(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.NewBadRequestError("Current password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	if err := s.userRepo.Update(ctx, user); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "password changed", "user_id", user.ID.Hex())

	return nil
}

// Admin operations. Every status change goes through the transition table
// and notifies the member by email.

const defaultListLimit = 20

func (s *UserServiceImpl) ListUsers(ctx context.Context, query *dto.ListUsersQuery) (*dto.UserListResponse, error) {
	filter := repositories.UserFilter{Page: 1, Limit: defaultListLimit}
	if query != nil {
		filter.Status = query.Status
		filter.Role = query.Role
		if query.Page > 0 {
			filter.Page = query.Page
		}
		if query.Limit > 0 {
			filter.Limit = query.Limit
		}
	}

	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	for i := range users {
		users[i] = *users[i].Sanitize()
	}

	pages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &dto.UserListResponse{
		Users: users,
		Total: total,
		Page:  filter.Page,
		Pages: pages,
	}, nil
}

// ChangeRole reassigns an account between the member and admin roles.
func (s *UserServiceImpl) ChangeRole(ctx context.Context, id primitive.ObjectID, role models.UserRole) (*models.User, error) {
	if role != models.UserRoleAdmin && role != models.UserRoleMember {
		return nil, apperrors.ErrInvalidUserRole
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user role changed", "user_id", user.ID.Hex(), "role", string(role))

	return user.Sanitize(), nil
}

func (s *UserServiceImpl) ApproveUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.applyEvent(ctx, id, models.EventAdminApproved, func(u *models.User) {
		u.RejectionReason = ""
	})
	if err != nil {
		return nil, err
	}

	s.mail.SendProfileVerifiedEmail(user)

	return user.Sanitize(), nil
}

func (s *UserServiceImpl) RejectUser(ctx context.Context, id primitive.ObjectID, reason string) (*models.User, error) {
	user, err := s.applyEvent(ctx, id, models.EventAdminRejected, func(u *models.User) {
		u.RejectionReason = reason
	})
	if err != nil {
		return nil, err
	}

	s.mail.SendAccountStatusEmail(user, reason)

	return user.Sanitize(), nil
}

func (s *UserServiceImpl) SuspendUser(ctx context.Context, id primitive.ObjectID, reason string) (*models.User, error) {
	user, err := s.applyEvent(ctx, id, models.EventSuspended, nil)
	if err != nil {
		return nil, err
	}

	s.mail.SendAccountStatusEmail(user, reason)

	return user.Sanitize(), nil
}

func (s *UserServiceImpl) ReinstateUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.applyEvent(ctx, id, models.EventReinstated, nil)
	if err != nil {
		return nil, err
	}

	s.mail.SendAccountStatusEmail(user, "")

	return user.Sanitize(), nil
}

func (s *UserServiceImpl) BanUser(ctx context.Context, id primitive.ObjectID, reason string) (*models.User, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := user.Transition(models.EventBanned)
	if err != nil {
		return nil, apperrors.InvalidTransition(err)
	}

	user.StatusBeforeBan = user.Status
	user.Status = next
	user.BanReason = reason

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.mail.SendAccountStatusEmail(user, reason)

	logger.CtxInfo(ctx, "user banned", "user_id", user.ID.Hex())

	return user.Sanitize(), nil
}

func (s *UserServiceImpl) UnbanUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.applyEvent(ctx, id, models.EventUnbanned, func(u *models.User) {
		u.BanReason = ""
		u.StatusBeforeBan = ""
	})
	if err != nil {
		return nil, err
	}

	s.mail.SendAccountStatusEmail(user, "")

	return user.Sanitize(), nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user deleted", "user_id", id.Hex())

	return nil
}

// applyEvent loads the user, applies the lifecycle event plus any extra
// mutation, and persists the result.
func (s *UserServiceImpl) applyEvent(ctx context.Context, id primitive.ObjectID, event models.LifecycleEvent, mutate func(*models.User)) (*models.User, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := user.Transition(event)
	if err != nil {
		return nil, apperrors.InvalidTransition(err)
	}
	user.Status = next

	if mutate != nil {
		mutate(user)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user status changed",
		"user_id", user.ID.Hex(),
		"event", string(event),
		"status", string(user.Status))

	return user, nil
}

// asAppError keeps typed service errors intact and wraps everything else.
func asAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.InternalError(err)
}
