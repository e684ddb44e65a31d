package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	MediaLocal = "local"
	MediaS3    = "s3"
)

type DB struct {
	Driver             string `default:"postgres"`
	Host               string `default:"localhost"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port           int      `default:"8080"`
	AllowedOrigins []string `default:"[*]"`
	LoginURL       string   `default:"/login/"`
}

type Auth struct {
	SecretKey string `validate:"required"`
	Audience  string
	Domain    string
}

type S3 struct {
	Bucket          string
	Region          string `default:"us-east-1"`
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

type Media struct {
	Backend     string `default:"local"`
	Root        string `default:"media"`
	URLPrefix   string `default:"/media/"`
	MaxUploadMB int64  `default:"10"`
	S3          S3
}

type Config struct {
	DB     DB
	Server Server
	Auth   Auth
	Media  Media
}

const envPrefix = "RECIPEBOOK" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			logger.Warn("Could not load .env file", zap.Error(err))
		}
	}

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.Password == "" {
			return fmt.Errorf("%w: DB.Password is required for postgres", ErrConfiguration)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown DB.Driver %q", ErrConfiguration, c.DB.Driver)
	}

	switch c.Media.Backend {
	case MediaLocal:
	case MediaS3:
		if c.Media.S3.Bucket == "" {
			return fmt.Errorf("%w: Media.S3.Bucket is required for the s3 backend", ErrConfiguration)
		}
	default:
		return fmt.Errorf("%w: unknown Media.Backend %q", ErrConfiguration, c.Media.Backend)
	}

	return nil
}
