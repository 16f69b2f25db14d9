package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	Vision VisionConfig
	OCR    OCRConfig
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds screenshot bucket settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// VisionConfig holds vision model extraction settings. An empty APIKey means
// the vision stage is unavailable, not misconfigured.
type VisionConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	MaxTokens   int    `mapstructure:"max_tokens"`
}

// Enabled reports whether the vision extraction stage may run.
func (v *VisionConfig) Enabled() bool {
	return v.APIKey != ""
}

// OCRConfig holds tesseract engine settings.
type OCRConfig struct {
	Tesseract        string `mapstructure:"tesseract"`
	Language         string `mapstructure:"language"`
	InitTimeoutSecs  int    `mapstructure:"init_timeout_secs"`
	RecogTimeoutSecs int    `mapstructure:"recog_timeout_secs"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the JOBTRAIL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("JOBTRAIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "jobtrail")
	v.SetDefault("db.password", "jobtrail_secret")
	v.SetDefault("db.name", "jobtrail_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "jobtrail-screenshots")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// Vision defaults; api_key deliberately has no default
	v.SetDefault("vision.api_key", "")
	v.SetDefault("vision.model", "gpt-4o")
	v.SetDefault("vision.timeout_secs", 30)
	v.SetDefault("vision.max_tokens", 500)

	// OCR defaults
	v.SetDefault("ocr.tesseract", "tesseract")
	v.SetDefault("ocr.language", "eng")
	v.SetDefault("ocr.init_timeout_secs", 30)
	v.SetDefault("ocr.recog_timeout_secs", 30)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "JOBTRAIL_SERVER_PORT",
		"server.read_timeout":    "JOBTRAIL_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "JOBTRAIL_SERVER_WRITE_TIMEOUT",
		"server.environment":     "JOBTRAIL_SERVER_ENVIRONMENT",
		"db.host":                "JOBTRAIL_DB_HOST",
		"db.port":                "JOBTRAIL_DB_PORT",
		"db.user":                "JOBTRAIL_DB_USER",
		"db.password":            "JOBTRAIL_DB_PASSWORD",
		"db.name":                "JOBTRAIL_DB_NAME",
		"db.sslmode":             "JOBTRAIL_DB_SSLMODE",
		"db.max_open":            "JOBTRAIL_DB_MAX_OPEN",
		"db.max_idle":            "JOBTRAIL_DB_MAX_IDLE",
		"s3.region":              "JOBTRAIL_S3_REGION",
		"s3.bucket":              "JOBTRAIL_S3_BUCKET",
		"s3.endpoint":            "JOBTRAIL_S3_ENDPOINT",
		"s3.access_key":          "JOBTRAIL_S3_ACCESS_KEY",
		"s3.secret_key":          "JOBTRAIL_S3_SECRET_KEY",
		"s3.max_file_size_mb":    "JOBTRAIL_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":      "JOBTRAIL_S3_PRESIGN_EXPIRY",
		"vision.api_key":         "JOBTRAIL_VISION_API_KEY",
		"vision.model":           "JOBTRAIL_VISION_MODEL",
		"vision.timeout_secs":    "JOBTRAIL_VISION_TIMEOUT_SECS",
		"vision.max_tokens":      "JOBTRAIL_VISION_MAX_TOKENS",
		"ocr.tesseract":          "JOBTRAIL_OCR_TESSERACT",
		"ocr.language":           "JOBTRAIL_OCR_LANGUAGE",
		"ocr.init_timeout_secs":  "JOBTRAIL_OCR_INIT_TIMEOUT_SECS",
		"ocr.recog_timeout_secs": "JOBTRAIL_OCR_RECOG_TIMEOUT_SECS",
		"cors.allowed_origins":   "JOBTRAIL_CORS_ALLOWED_ORIGINS",
		"log.level":              "JOBTRAIL_LOG_LEVEL",
		"log.format":             "JOBTRAIL_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if JOBTRAIL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("JOBTRAIL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Vision = VisionConfig{
		APIKey:      v.GetString("vision.api_key"),
		Model:       v.GetString("vision.model"),
		TimeoutSecs: v.GetInt("vision.timeout_secs"),
		MaxTokens:   v.GetInt("vision.max_tokens"),
	}
	cfg.OCR = OCRConfig{
		Tesseract:        v.GetString("ocr.tesseract"),
		Language:         v.GetString("ocr.language"),
		InitTimeoutSecs:  v.GetInt("ocr.init_timeout_secs"),
		RecogTimeoutSecs: v.GetInt("ocr.recog_timeout_secs"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
