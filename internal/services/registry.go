package services

import (
	"acsp_backend/internal/auth"
	"acsp_backend/internal/config"
	"acsp_backend/internal/email"
	"acsp_backend/internal/imageprocessor"
	"acsp_backend/internal/repositories"
	"acsp_backend/internal/storage"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	ContentService ContentService
	ForumService   ForumService
	UploadService  UploadService
	MailService    MailService
}

// Dependencies are the infrastructure pieces services are built on.
type Dependencies struct {
	Config        *config.Config
	UserRepo      repositories.UserRepository
	ContentRepo   repositories.ContentRepository
	ForumRepo     repositories.ForumRepository
	Storage       storage.Storage
	EmailProvider email.Provider
	Tokens        *auth.TokenManager
}

// NewServiceContainer wires all services from their dependencies.
func NewServiceContainer(deps Dependencies) *ServiceContainer {
	cfg := deps.Config

	mail := NewMailService(deps.EmailProvider, cfg.Client.BaseURL, cfg.Admin.Email)

	processor := imageprocessor.NewProcessor(cfg.Upload.ImageQuality)
	uploads := NewUploadService(deps.Storage, processor, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes)

	return &ServiceContainer{
		AuthService:    NewAuthService(deps.UserRepo, deps.Tokens, mail),
		UserService:    NewUserService(deps.UserRepo, uploads, mail),
		ContentService: NewContentService(deps.ContentRepo),
		ForumService:   NewForumService(deps.ForumRepo),
		UploadService:  uploads,
		MailService:    mail,
	}
}
