package configs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/RecipeBook/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverPostgres, config.DB.Driver)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal([]string{"https://recipes.example.com"}, config.Server.AllowedOrigins)
	suite.Equal("audience", config.Auth.Audience)
	suite.Equal("domain", config.Auth.Domain)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal(configs.MediaS3, config.Media.Backend)
	suite.Equal("uploads", config.Media.Root)
	suite.Equal(int64(4), config.Media.MaxUploadMB)
	suite.Equal("recipe-pics", config.Media.S3.Bucket)
	suite.Equal("eu-south-1", config.Media.S3.Region)
	suite.Equal("http://minio.local:9000", config.Media.S3.Endpoint)
	suite.True(config.Media.S3.UsePathStyle)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("RECIPEBOOK_DB_HOST", "test.local")
	suite.T().Setenv("RECIPEBOOK_DB_PORT", "1234")
	suite.T().Setenv("RECIPEBOOK_DB_USER", "testuser")
	suite.T().Setenv("RECIPEBOOK_DB_PASSWORD", "test123")
	suite.T().Setenv("RECIPEBOOK_DB_DATABASE", "testdb")
	suite.T().Setenv("RECIPEBOOK_DB_MAXIDLECONNECTIONS", "5")
	suite.T().Setenv("RECIPEBOOK_DB_MAXOPENCONNECTIONS", "7")
	suite.T().Setenv("RECIPEBOOK_SERVER_PORT", "666")
	suite.T().Setenv("RECIPEBOOK_AUTH_AUDIENCE", "audience")
	suite.T().Setenv("RECIPEBOOK_AUTH_DOMAIN", "domain")
	suite.T().Setenv("RECIPEBOOK_AUTH_SECRETKEY", "secret")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("audience", config.Auth.Audience)
	suite.Equal("domain", config.Auth.Domain)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal(configs.MediaLocal, config.Media.Backend)
	suite.Equal("media", config.Media.Root)
	suite.Equal("/media/", config.Media.URLPrefix)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("RECIPEBOOK_DB_HOST", "env.local")
	suite.T().Setenv("RECIPEBOOK_DB_USER", "envuser")
	suite.T().Setenv("RECIPEBOOK_DB_PASSWORD", "env123")
	suite.T().Setenv("RECIPEBOOK_AUTH_SECRETKEY", "envsecret")
	suite.T().Setenv("RECIPEBOOK_MEDIA_S3_BUCKET", "env-bucket")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal("envsecret", config.Auth.SecretKey)
	suite.Equal("env-bucket", config.Media.S3.Bucket)
}

func (suite *ConfigTestSuite) TestGetConfig_SQLiteNeedsNoPassword() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("RECIPEBOOK_DB_DRIVER", "sqlite")
	suite.T().Setenv("RECIPEBOOK_DB_DATABASE", "recipes.db")
	suite.T().Setenv("RECIPEBOOK_AUTH_SECRETKEY", "secret")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverSQLite, config.DB.Driver)
	suite.Equal("recipes.db", config.DB.Database)
	suite.Empty(config.DB.Password)
}

func (suite *ConfigTestSuite) TestGetConfig_PostgresNeedsPassword() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("RECIPEBOOK_AUTH_SECRETKEY", "secret")

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
	suite.ErrorContains(err, "DB.Password")
}

func (suite *ConfigTestSuite) TestGetConfig_UnknownMediaBackend() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("RECIPEBOOK_DB_DRIVER", "sqlite")
	suite.T().Setenv("RECIPEBOOK_AUTH_SECRETKEY", "secret")
	suite.T().Setenv("RECIPEBOOK_MEDIA_BACKEND", "ftp")

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
	suite.ErrorContains(err, `"ftp"`)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileReturnsError() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Nil(config)
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingValues() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.ErrorContains(err, "Auth.SecretKey: required validation failed")
}
