package services

import (
	"time"

	"acsp_backend/internal/email"
	"acsp_backend/internal/logger"
	"acsp_backend/internal/models"
)

// MailService sends the application's transactional emails. Delivery is
// best-effort: every method logs failures instead of propagating them, so
// a broken SMTP relay never blocks registration or admin actions.
type MailService interface {
	SendVerificationEmail(user *models.User, token string)
	SendWelcomeEmail(user *models.User)
	SendPasswordResetEmail(user *models.User, token string)
	SendProfileVerifiedEmail(user *models.User)
	SendAccountStatusEmail(user *models.User, reason string)
	SendAdminNewUserNotification(user *models.User)
}

type MailServiceImpl struct {
	provider   email.Provider
	clientURL  string
	adminEmail string
}

func NewMailService(provider email.Provider, clientURL, adminEmail string) MailService {
	return &MailServiceImpl{
		provider:   provider,
		clientURL:  clientURL,
		adminEmail: adminEmail,
	}
}

func (s *MailServiceImpl) send(templateName string, data email.TemplateData, to, subject string) {
	msg := &email.Email{
		To:      []string{to},
		Subject: subject,
	}
	if err := s.provider.SendWithTemplate(templateName, data, msg); err != nil {
		logger.Error("failed to send email",
			"template", templateName,
			"to", to,
			"error", err)
	}
}

func (s *MailServiceImpl) SendVerificationEmail(user *models.User, token string) {
	s.send(email.TemplateEmailVerification, email.TemplateData{
		"Name":             user.Name,
		"VerificationLink": s.clientURL + "/verify-email?token=" + token,
	}, user.Email, "Verify Your Email Address - ACSP")
}

func (s *MailServiceImpl) SendWelcomeEmail(user *models.User) {
	s.send(email.TemplateWelcome, email.TemplateData{
		"Name":        user.Name,
		"ProfileLink": s.clientURL + "/complete-profile",
	}, user.Email, "Welcome to ACSP! Complete Your Profile")
}

func (s *MailServiceImpl) SendPasswordResetEmail(user *models.User, token string) {
	s.send(email.TemplatePasswordReset, email.TemplateData{
		"Name":      user.Name,
		"ResetLink": s.clientURL + "/reset-password?token=" + token,
	}, user.Email, "Reset Your ACSP Account Password")
}

func (s *MailServiceImpl) SendProfileVerifiedEmail(user *models.User) {
	s.send(email.TemplateProfileVerified, email.TemplateData{
		"Name":      user.Name,
		"ForumLink": s.clientURL + "/forums",
	}, user.Email, "Your ACSP Profile Has Been Verified!")
}

func (s *MailServiceImpl) SendAccountStatusEmail(user *models.User, reason string) {
	s.send(email.TemplateAccountStatus, email.TemplateData{
		"Name":   user.Name,
		"Status": string(user.Status),
		"Reason": reason,
	}, user.Email, "Your ACSP Account Status Has Changed")
}

func (s *MailServiceImpl) SendAdminNewUserNotification(user *models.User) {
	if s.adminEmail == "" {
		return
	}
	s.send(email.TemplateAdminNewUser, email.TemplateData{
		"UserName":   user.Name,
		"UserEmail":  user.Email,
		"UserRole":   string(user.Role),
		"UserStatus": string(user.Status),
		"Timestamp":  time.Now().UTC().Format(time.RFC1123),
	}, s.adminEmail, "New User Registration - ACSP Admin")
}
