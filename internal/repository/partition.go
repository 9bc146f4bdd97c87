package repository

import (
	"fmt"

	"org-management-backend/internal/database"
	apperrors "org-management-backend/internal/errors"

	"gorm.io/gorm"
)

// PartitionRepository provisions per-organization data partitions as Postgres
// schemas. Schema names cannot be bound as statement parameters, so every key
// is validated against the partition-key grammar before it reaches DDL.
type PartitionRepository struct {
	db *gorm.DB
}

// NewPartitionRepository creates a new partition repository
func NewPartitionRepository(db *gorm.DB) *PartitionRepository {
	return &PartitionRepository{db: db}
}

func checkKey(keys ...string) error {
	for _, key := range keys {
		if !database.ValidPartitionKey(key) {
			return fmt.Errorf("%w: %q", apperrors.ErrInvalidPartitionKey, key)
		}
	}
	return nil
}

// Create provisions an empty partition. Creating an existing partition is a
// no-op, matching stores that auto-create on first write.
func (r *PartitionRepository) Create(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return r.db.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %q`, key)).Error
}

// Rename moves a partition to a new key. ALTER SCHEMA is atomic: either all
// partition data ends up under the new key or the old partition is untouched.
func (r *PartitionRepository) Rename(oldKey, newKey string) error {
	if err := checkKey(oldKey, newKey); err != nil {
		return err
	}

	exists, err := r.Exists(newKey)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrPartitionExists
	}

	return r.db.Exec(fmt.Sprintf(`ALTER SCHEMA %q RENAME TO %q`, oldKey, newKey)).Error
}

// Drop destroys a partition and everything in it.
func (r *PartitionRepository) Drop(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return r.db.Exec(fmt.Sprintf(`DROP SCHEMA IF EXISTS %q CASCADE`, key)).Error
}

// Exists reports whether a partition has been provisioned
func (r *PartitionRepository) Exists(key string) (bool, error) {
	if err := checkKey(key); err != nil {
		return false, err
	}
	var count int64
	err := r.db.Raw(
		`SELECT COUNT(*) FROM information_schema.schemata WHERE schema_name = ?`, key,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
