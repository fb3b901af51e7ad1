package repository

import (
	"physics_master_backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(f *model.Feedback) error {
	return r.DB.Create(f).Error
}

func (r *FeedbackRepository) List() ([]model.Feedback, error) {
	var fs []model.Feedback
	err := r.DB.Order("created_at desc").Find(&fs).Error
	return fs, err
}
