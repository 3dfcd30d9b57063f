package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bisagn/formalgen/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Server   ServerConfig  `validate:"required"`
	Logging  LoggingConfig `validate:"required"`
	Postgres PostgresConfig
	Vertex   VertexConfig
	Assets   AssetsConfig `validate:"required"`
	Cache    CacheConfig
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// VertexConfig configures the generative model used for body drafting.
type VertexConfig struct {
	ProjectID string
	Region    string
	Model     string
}

// AssetsConfig locates everything the rendering engine reads from or
// writes to disk.
type AssetsConfig struct {
	// DocumentDataDir holds the per-type bilingual JSON data files.
	DocumentDataDir string `validate:"required"`
	// TemplateDir holds the HTML preview templates.
	TemplateDir string `validate:"required"`
	// LogoPath is the organisational logo; rendering tolerates absence.
	LogoPath string
	// HindiFontPath is a Devanagari TTF for the PDF projection;
	// rendering falls back to a core font when absent.
	HindiFontPath string
	// UploadDir stores Policy attachments until they are consumed.
	UploadDir string `validate:"required"`
	// RasterizerBinary converts attachment pages to images for the
	// word-processor output (pdftoppm). Missing binary degrades to a
	// fallback notice, it is not an error.
	RasterizerBinary string
}

type CacheConfig struct {
	// TTL bounds how long a preview stays downloadable.
	TTL time.Duration
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/formalgen")

	v.SetEnvPrefix("FORMALGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "formalgen")
	v.SetDefault("postgres.dbname", "formalgen")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("vertex.model", "gemini-2.5-flash-lite")
	v.SetDefault("vertex.region", "asia-south1")
	v.SetDefault("assets.documentdatadir", "config/documents")
	v.SetDefault("assets.templatedir", "assets/templates")
	v.SetDefault("assets.logopath", filepath.Join("assets", "static", "bisag_logo.png"))
	v.SetDefault("assets.hindifontpath", filepath.Join("assets", "fonts", "NotoSansDevanagari-Regular.ttf"))
	v.SetDefault("assets.uploaddir", filepath.Join("media", "policy_uploads"))
	v.SetDefault("assets.rasterizerbinary", "pdftoppm")
	v.SetDefault("cache.ttl", 30*time.Minute)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for tests and
// non-server tooling.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Server:  ServerConfig{Address: ":8080"},
		Logging: LoggingConfig{Level: types.LogLevelDebug},
		Vertex:  VertexConfig{Model: "gemini-2.5-flash-lite", Region: "asia-south1"},
		Assets: AssetsConfig{
			DocumentDataDir:  "config/documents",
			TemplateDir:      "assets/templates",
			UploadDir:        filepath.Join("media", "policy_uploads"),
			RasterizerBinary: "pdftoppm",
		},
		Cache: CacheConfig{TTL: 30 * time.Minute},
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
