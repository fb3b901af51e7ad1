package repository

import (
	"physics_master_backend/internal/model"

	"gorm.io/gorm"
)

type AccessRepository struct {
	DB *gorm.DB
}

func NewAccessRepository(db *gorm.DB) *AccessRepository {
	return &AccessRepository{DB: db}
}

func (r *AccessRepository) Create(access *model.PurchasedAccess) error {
	return r.DB.Create(access).Error
}

// HasActive reports whether at least one active grant exists for the pair.
// Reads the store directly; access checks are never cached.
func (r *AccessRepository) HasActive(userID string, setNumber int) (bool, error) {
	var count int64
	err := r.DB.Model(&model.PurchasedAccess{}).
		Where("user_id = ? AND set_number = ? AND active = ?", userID, setNumber, true).
		Count(&count).Error
	return count > 0, err
}

func (r *AccessRepository) FindByPaymentID(paymentID string) (*model.PurchasedAccess, error) {
	var access model.PurchasedAccess
	err := r.DB.Where("payment_id = ?", paymentID).First(&access).Error
	if err != nil {
		return nil, err
	}
	return &access, nil
}
