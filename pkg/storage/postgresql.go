package storage

import (
	"fmt"
	"log/slog"

	"github.com/daygrid/scheduler/pkg/config"
	"github.com/daygrid/scheduler/pkg/model"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostTables maps a board category onto its table. The community and
// notice boards share one model but live in separate tables.
var PostTables = map[model.Category]string{
	model.CategoryCommunity: "community_posts",
	model.CategoryNotice:    "notices",
}

func NewDatabase(logger *slog.Logger, c config.Postgresql) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.Host, c.Username, c.Password, c.DatabaseName, c.Port)

	databaseConfig := gorm.Config{
		Logger:         slogGorm.New(slogGorm.WithHandler(logger.Handler())),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), &databaseConfig)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Event{},
	)
	if err != nil {
		return nil, err
	}

	for _, table := range PostTables {
		if err := db.Table(table).AutoMigrate(&model.Post{}); err != nil {
			return nil, err
		}
	}

	return db, nil
}
