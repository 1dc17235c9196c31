package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"acsp_backend/internal/apperrors"
	"acsp_backend/internal/auth"
	"acsp_backend/internal/logger"
	"acsp_backend/internal/models"
	"acsp_backend/internal/repositories"
	"acsp_backend/internal/services/dto"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyEmail(ctx context.Context, token string) (*dto.LoginResponse, error)
	ForgotPassword(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
	mail     MailService
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager, mail MailService) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		mail:     mail,
	}
}

// normalizeEmail lowercases addresses so the unique index and lookups
// treat Alice@X.com and alice@x.com as the same account.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a pending account and sends the verification email.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleMember
	}
	if !role.Valid() || role == models.UserRoleAdmin {
		// Admin accounts are seeded, never self-registered.
		return nil, apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:              req.Name,
		Email:             normalizeEmail(req.Email),
		PasswordHash:      hash,
		Role:              role,
		Status:            models.UserStatusPending,
		VerificationToken: auth.GenerateRandomToken(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.mail.SendVerificationEmail(user, user.VerificationToken)
	s.mail.SendAdminNewUserNotification(user)

	logger.CtxInfo(ctx, "user registered", "email", user.Email, "role", user.Role)

	return user.Sanitize(), nil
}

// Login checks credentials and issues a session token. Unknown email and
// wrong password produce the same error so accounts cannot be enumerated.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, apperrors.ErrUserNotVerified
	}
	if user.Status == models.UserStatusBanned {
		return nil, apperrors.ErrUserBanned
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID.Hex())

	return &dto.LoginResponse{
		Token: token,
		User:  user.Sanitize(),
	}, nil
}

// VerifyEmail consumes a verification token, advances the account to the
// profile-completion stage and signs it in, so verification and login
// happen in a single round trip.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	next, err := user.Transition(models.EventEmailVerified)
	if err != nil {
		return nil, apperrors.InvalidTransition(err)
	}

	user.Status = next
	user.IsVerified = true
	user.VerificationToken = ""

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	sessionToken, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.mail.SendWelcomeEmail(user)

	logger.CtxInfo(ctx, "email verified", "user_id", user.ID.Hex())

	return &dto.LoginResponse{
		Token: sessionToken,
		User:  user.Sanitize(),
	}, nil
}

// ForgotPassword issues a reset token. It reports success even for unknown
// addresses so the endpoint cannot be used to enumerate accounts.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(emailAddr))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logger.CtxInfo(ctx, "password reset requested for unknown email")
			return nil
		}
		return apperrors.InternalError(err)
	}

	exp := time.Now().UTC().Add(time.Hour)
	user.ResetToken = auth.GenerateRandomToken()
	user.ResetTokenExp = &exp

	if err := s.userRepo.Update(ctx, user); err != nil {
		return apperrors.InternalError(err)
	}

	s.mail.SendPasswordResetEmail(user, user.ResetToken)

	return nil
}

// ResetPassword consumes a live reset token and replaces the password.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	user, err := s.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = nil

	if err := s.userRepo.Update(ctx, user); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "password reset", "user_id", user.ID.Hex())

	return nil
}
