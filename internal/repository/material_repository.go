package repository

import (
	"physics_master_backend/internal/model"

	"gorm.io/gorm"
)

type MaterialRepository struct {
	DB *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(m *model.StudyMaterial) error {
	return r.DB.Create(m).Error
}

func (r *MaterialRepository) FindByID(id string) (*model.StudyMaterial, error) {
	var m model.StudyMaterial
	err := r.DB.First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns all materials, or only those for subject when it is non-empty.
func (r *MaterialRepository) List(subject string) ([]model.StudyMaterial, error) {
	var ms []model.StudyMaterial
	q := r.DB.Order("created_at desc")
	if subject != "" {
		q = q.Where("subject = ?", subject)
	}
	err := q.Find(&ms).Error
	return ms, err
}

func (r *MaterialRepository) Delete(id string) error {
	res := r.DB.Delete(&model.StudyMaterial{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
