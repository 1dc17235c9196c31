package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"acsp_backend/internal/auth"
	"acsp_backend/internal/config"
	"acsp_backend/internal/email"
	"acsp_backend/internal/handlers"
	"acsp_backend/internal/logger"
	"acsp_backend/internal/middleware"
	"acsp_backend/internal/models"
	"acsp_backend/internal/repositories"
	"acsp_backend/internal/routes"
	"acsp_backend/internal/services"
	"acsp_backend/internal/storage"
	"acsp_backend/internal/validator"
)

// Run boots the application: config, logging, database, services, router.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := repositories.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := client.Database(cfg.Mongo.Database)
	logger.Info("MongoDB connected", "database", cfg.Mongo.Database)

	if err := repositories.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("Failed to create indexes", "error", err)
	}

	if err := seedFirstAdmin(ctx, db, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	router, err := SetupRouter(cfg, db)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, and handlers into a gin engine.
func SetupRouter(cfg *config.Config, db *mongo.Database) (*gin.Engine, error) {
	store, err := storage.NewStorage(storage.Config{
		Type:          cfg.Storage.Type,
		Folder:        cfg.Storage.Folder,
		BasePath:      cfg.Storage.BasePath,
		BaseURL:       cfg.Storage.BaseURL,
		Bucket:        cfg.Storage.Bucket,
		Region:        cfg.Storage.Region,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		Endpoint:      cfg.Storage.Endpoint,
		CloudinaryURL: cfg.Storage.CloudinaryURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	emailProvider, err := buildEmailProvider(cfg)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	userRepo := repositories.NewUserRepository(db)
	contentRepo := repositories.NewContentRepository(db)
	forumRepo := repositories.NewForumRepository(db)

	serviceContainer := services.NewServiceContainer(services.Dependencies{
		Config:        cfg,
		UserRepo:      userRepo,
		ContentRepo:   contentRepo,
		ForumRepo:     forumRepo,
		Storage:       store,
		EmailProvider: emailProvider,
		Tokens:        tokens,
	})

	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Client.BaseURL))

	routes.Setup(router, appHandlers, routes.Middleware{
		Auth:           middleware.AuthMiddleware(tokens, userRepo),
		RequireAdmin:   middleware.RequireAdmin(),
		RequireMod:     middleware.RequireModerator(),
		VerifiedMember: middleware.RequireVerifiedMember(),
	})

	// Local storage serves its own files; the hosted backends return
	// absolute URLs.
	if local, ok := store.(*storage.LocalStorage); ok {
		router.Static("/files", local.BasePath())
	}

	return router, nil
}

// buildEmailProvider returns the SMTP provider, or a logging no-op when no
// SMTP host is configured so development setups run without a relay.
func buildEmailProvider(cfg *config.Config) (email.Provider, error) {
	renderer, err := email.NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP host not configured, outbound email is disabled")
		return NewNoopEmailProvider(), nil
	}

	smtpCfg := email.DefaultConfig()
	smtpCfg.Host = cfg.Email.SMTPHost
	smtpCfg.Port = cfg.Email.SMTPPort
	smtpCfg.Username = cfg.Email.SMTPUsername
	smtpCfg.Password = cfg.Email.SMTPPassword
	smtpCfg.FromEmail = cfg.Email.FromEmail
	smtpCfg.FromName = cfg.Email.FromName
	smtpCfg.UseTLS = cfg.Email.UseTLS

	return email.NewSMTPProvider(smtpCfg, renderer), nil
}

// seedFirstAdmin creates the configured admin account if it does not exist.
func seedFirstAdmin(ctx context.Context, db *mongo.Database, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	userRepo := repositories.NewUserRepository(db)

	_, err := userRepo.FindByEmail(ctx, cfg.Admin.Email)
	if err == nil {
		logger.Info("Admin user already exists, skipping creation", "email", cfg.Admin.Email)
		return nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "ACSP Administrator"
	}

	admin := &models.User{
		Name:         name,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusVerified,
		IsVerified:   true,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", cfg.Admin.Email)
	return nil
}
