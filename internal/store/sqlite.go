package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"collabpad/internal/models"
)

// SQLiteStore persists rooms in a local SQLite database.
type SQLiteStore struct {
	db *gorm.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&models.Room{}); err != nil {
		return nil, fmt.Errorf("migrate rooms table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Create(ctx context.Context) (models.Room, error) {
	room := models.Room{ID: uuid.NewString()}
	if err := s.db.WithContext(ctx).Create(&room).Error; err != nil {
		return models.Room{}, fmt.Errorf("create room: %w", err)
	}
	return room, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (models.Room, error) {
	var room models.Room
	err := s.db.WithContext(ctx).First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Room{}, ErrRoomNotFound
	}
	if err != nil {
		return models.Room{}, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

func (s *SQLiteStore) Set(ctx context.Context, id, code string) error {
	res := s.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Update("code", code)
	if res.Error != nil {
		return fmt.Errorf("update room: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
