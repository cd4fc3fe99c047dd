package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Paper        Paper
	Log          Log
	GeminiApiKey string
	GeminiModel  string
}

type Server struct {
	Port        string
	GinMode     string
	AllowOrigin []string
}

type Database struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string // sqlite file, ":memory:" for tests
}

// Log mirrors LOG_LEVEL and LOG_PRETTY so they can also come from .env.
type Log struct {
	Level  string
	Pretty bool
}

// Paper tunes paper generation and cloning.
type Paper struct {
	PageSize        int
	MaxPages        int
	DuplicatePolicy string // "idempotent" or "reject"
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Server.AllowOrigin = splitCSV(viper.GetString("CORS_ALLOW_ORIGINS"))

	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.Paper.PageSize = viper.GetInt("PAPER_PAGE_SIZE")
	config.Paper.MaxPages = viper.GetInt("PAPER_MAX_PAGES")
	config.Paper.DuplicatePolicy = strings.ToLower(viper.GetString("PAPER_DUPLICATE_POLICY"))

	config.Log.Level = strings.ToLower(viper.GetString("LOG_LEVEL"))
	config.Log.Pretty = viper.GetBool("LOG_PRETTY")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.GeminiModel = viper.GetString("GEMINI_MODEL")

	log.Info().
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Str("dbHost", config.Database.Host).
		Int("pageSize", config.Paper.PageSize).
		Str("duplicatePolicy", config.Paper.DuplicatePolicy).
		Bool("geminiEnabled", config.GeminiApiKey != "").
		Msg("Config loaded")
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_PATH", "itimock.db")
	viper.SetDefault("PAPER_PAGE_SIZE", 100)
	viper.SetDefault("PAPER_MAX_PAGES", 1000)
	viper.SetDefault("PAPER_DUPLICATE_POLICY", "idempotent")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
