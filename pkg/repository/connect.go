package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/RecipeBook/configs"
	"droscher.com/RecipeBook/pkg/model"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour
)

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(dialector(conf), &gorm.Config{Logger: gormLogger, TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return New(db, logger)
}

// New wraps an open connection, registering the explicit join tables.
func New(db *gorm.DB, logger *zap.Logger) (*Repository, error) {
	if err := db.SetupJoinTable(&model.Recipe{}, "Likes", &model.RecipeLike{}); err != nil {
		return nil, err
	}

	if err := db.SetupJoinTable(&model.Recipe{}, "Categories", &model.RecipeCategory{}); err != nil {
		return nil, err
	}

	return &Repository{DB: db, Logger: logger}, nil
}

func dialector(conf *configs.Config) gorm.Dialector {
	if conf.DB.Driver == configs.DriverSQLite {
		return sqlite.Open(conf.DB.Database + "?_pragma=foreign_keys(1)")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		conf.DB.Host, conf.DB.User, conf.DB.Password, conf.DB.Database, conf.DB.Port)

	return postgres.Open(dsn)
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// Migrate brings the schema up to date with the models.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Recipe{},
		&model.Ingredient{},
		&model.RecipeLike{},
		&model.RecipeCategory{})
}
