package store

import (
	"context"
	"errors"
	"strings"

	"github.com/wantosing/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBackend persists values as rows in the store_records table.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (b *GormBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var record models.StoreRecord
	err := b.db.WithContext(ctx).Where("key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(record.Value), true, nil
}

func (b *GormBackend) Save(ctx context.Context, key string, value []byte) error {
	record := models.StoreRecord{Key: key, Value: string(value)}
	return b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
}

func (b *GormBackend) Remove(ctx context.Context, key string) error {
	return b.db.WithContext(ctx).Where("key = ?", key).Delete(&models.StoreRecord{}).Error
}

func (b *GormBackend) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	pattern := strings.ReplaceAll(strings.ReplaceAll(prefix, "%", "\\%"), "_", "\\_") + "%"
	err := b.db.WithContext(ctx).Model(&models.StoreRecord{}).
		Where("key LIKE ?", pattern).
		Order("key").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}
