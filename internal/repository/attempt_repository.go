package repository

import (
	"physics_master_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

// Create appends one attempt row. Attempts are immutable; there is no update
// or delete path.
func (r *AttemptRepository) Create(attempt *model.TestAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) List() ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	err := r.DB.Order("submitted_at desc").Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.TestAttempt{}).Count(&count).Error
	return count, err
}
