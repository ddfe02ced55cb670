package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Nayan-navghane/School-application/app/store"
	"github.com/Nayan-navghane/School-application/pkg/logger"
)

// Config is everything the process reads from the environment.
// `godotenv.Load` in main makes a local .env visible here.
type Config struct {
	Addr        string
	AppName     string
	StoreDriver string // postgres or memory

	DB store.PostgresConfig

	JWTSecret string
	JWTTTL    time.Duration

	FilesDir   string // blob storage root, served at FilesBaseURL
	FilesURL   string
	ReportsDir string

	SendgridKey string
	MailFrom    string
	ReceiptsTo  string // bursar address receiving payment receipts; empty disables

	Log logger.Config
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("ADDR", ":3000")
	v.SetDefault("APP_NAME", "School Admin")
	v.SetDefault("STORE_DRIVER", "postgres")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "school")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("JWT_SECRET", "school-admin-secret-key") // default for development
	v.SetDefault("JWT_TTL", "24h")

	v.SetDefault("FILES_DIR", "data/files")
	v.SetDefault("FILES_URL", "/files")
	v.SetDefault("REPORTS_DIR", "data/reports")

	v.SetDefault("SENDGRID_API_KEY", "")
	v.SetDefault("MAIL_FROM", "noreply@school.local")
	v.SetDefault("RECEIPTS_TO", "")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_OUTPUT", "stdout")

	ttl, err := time.ParseDuration(v.GetString("JWT_TTL"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Addr:        v.GetString("ADDR"),
		AppName:     v.GetString("APP_NAME"),
		StoreDriver: v.GetString("STORE_DRIVER"),
		DB: store.PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		JWTSecret:   v.GetString("JWT_SECRET"),
		JWTTTL:      ttl,
		FilesDir:    v.GetString("FILES_DIR"),
		FilesURL:    v.GetString("FILES_URL"),
		ReportsDir:  v.GetString("REPORTS_DIR"),
		SendgridKey: v.GetString("SENDGRID_API_KEY"),
		MailFrom:    v.GetString("MAIL_FROM"),
		ReceiptsTo:  v.GetString("RECEIPTS_TO"),
		Log: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
	}, nil
}
