package postgres

import (
	"context"

	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvRepository implements the repository.KVStore interface.
type kvRepository struct {
	db *gorm.DB
}

// NewKVRepository is the constructor for kvRepository.
func NewKVRepository(db *gorm.DB) repository.KVStore {
	return &kvRepository{
		db: db,
	}
}

// Get returns the value stored under key, or repository.ErrKeyNotFound.
func (repo *kvRepository) Get(ctx context.Context, key string) (string, error) {
	var entry model.KVEntryModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.Wrap(err, "failed to read kv entry")
	}

	return entry.Value, nil
}

// Set stores value under key, overwriting any previous value.
func (repo *kvRepository) Set(ctx context.Context, key, value string) error {
	entry := model.KVEntryModel{
		Key:   key,
		Value: value,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error; err != nil {
		return errors.Wrap(err, "failed to upsert kv entry")
	}

	return nil
}
