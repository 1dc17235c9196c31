package handlers

import (
	"acsp_backend/internal/services"
	"acsp_backend/internal/validator"
)

// AppHandlers holds all HTTP handlers.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	ContentHandler *ContentHandler
	ForumHandler   *ForumHandler
	UploadHandler  *UploadHandler
}

// NewAppHandlers builds the handler set over the service container.
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:    NewAuthHandler(base, sc.AuthService),
		UserHandler:    NewUserHandler(base, sc.UserService),
		ContentHandler: NewContentHandler(base, sc.ContentService),
		ForumHandler:   NewForumHandler(base, sc.ForumService),
		UploadHandler:  NewUploadHandler(base, sc.UploadService),
	}
}
