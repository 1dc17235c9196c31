package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Mongo struct {
		URI      string `yaml:"uri"`
		Database string `yaml:"database"`
	} `yaml:"mongo"`

	JWT struct {
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
	} `yaml:"email"`

	Client struct {
		BaseURL string `yaml:"base_url"` // SPA origin, used in email links and CORS
	} `yaml:"client"`

	Storage struct {
		Type      string `yaml:"type"`       // cloudinary, s3, local
		Folder    string `yaml:"folder"`     // root folder/prefix for uploads
		BasePath  string `yaml:"base_path"`  // local only
		BaseURL   string `yaml:"base_url"`   // public URL base
		Bucket    string `yaml:"bucket"`     // s3 only
		Region    string `yaml:"region"`     // s3 only
		AccessKey string `yaml:"access_key"` // s3 only
		SecretKey string `yaml:"secret_key"` // s3 only
		Endpoint  string `yaml:"endpoint"`   // s3-compatible endpoint

		CloudinaryURL string `yaml:"cloudinary_url"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // bytes
		AllowedTypes []string `yaml:"allowed_types"` // MIME prefixes
		ImageQuality int      `yaml:"image_quality"` // JPEG quality (1-100)
	} `yaml:"upload"`

	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"admin"`
}

// Load reads the YAML config file and applies environment overrides.
// A .env file is honored when present so local setups match production
// environment-variable deployment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		decodeErr := decoder.Decode(cfg)
		f.Close()
		if decodeErr != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, decodeErr)
		}
	} else if os.Getenv("MONGODB_URI") == "" {
		// No file and no env either: nothing to run with.
		return nil, fmt.Errorf("failed to open config file %s and MONGODB_URI is not set: %w", configPath, err)
	}

	applyEnv(cfg)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required (config jwt.secret or JWT_SECRET)")
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 5000
	cfg.Server.Env = "development"
	cfg.Mongo.URI = "mongodb://localhost:27017"
	cfg.Mongo.Database = "acsp"
	cfg.JWT.TTLHours = 24
	cfg.Email.SMTPPort = 587
	cfg.Client.BaseURL = "http://localhost:5173"
	cfg.Storage.Type = "local"
	cfg.Storage.Folder = "acsp"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/files"
	cfg.Upload.MaxSize = 5 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"image/"}
	cfg.Upload.ImageQuality = 85
	return cfg
}

// applyEnv lets environment variables override file values: the usual
// deployment path for secrets.
func applyEnv(cfg *Config) {
	setStr := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setInt := func(dst *int, key string) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	setStr(&cfg.Server.Env, "SERVER_ENV")
	setInt(&cfg.Server.Port, "PORT")
	setStr(&cfg.Mongo.URI, "MONGODB_URI")
	setStr(&cfg.Mongo.Database, "DB_NAME")
	setStr(&cfg.JWT.Secret, "JWT_SECRET")
	setStr(&cfg.Email.SMTPHost, "MAIL_HOST")
	setInt(&cfg.Email.SMTPPort, "MAIL_PORT")
	setStr(&cfg.Email.SMTPUsername, "EMAIL_USER")
	setStr(&cfg.Email.SMTPPassword, "EMAIL_PASS")
	setStr(&cfg.Email.FromEmail, "EMAIL_FROM")
	setStr(&cfg.Client.BaseURL, "CLIENT_URL")
	setStr(&cfg.Storage.Type, "STORAGE_TYPE")
	setStr(&cfg.Storage.CloudinaryURL, "CLOUDINARY_URL")
	setStr(&cfg.Storage.Bucket, "STORAGE_BUCKET")
	setStr(&cfg.Storage.Region, "STORAGE_REGION")
	setStr(&cfg.Storage.AccessKey, "STORAGE_ACCESS_KEY")
	setStr(&cfg.Storage.SecretKey, "STORAGE_SECRET_KEY")
	setStr(&cfg.Storage.Endpoint, "STORAGE_ENDPOINT")
	setStr(&cfg.Admin.Email, "ADMIN_EMAIL")
	setStr(&cfg.Admin.Password, "ADMIN_PASSWORD")
	setStr(&cfg.Admin.Name, "ADMIN_NAME")

	if cfg.Email.FromEmail == "" {
		cfg.Email.FromEmail = cfg.Email.SMTPUsername
	}
}
