package model

import "time"

// PurchasedAccess records that a user paid for a question set. The gateway
// payment id is unique so replaying the same verified payment cannot grant a
// second row.
// swagger:model PurchasedAccess
type PurchasedAccess struct {
	UUIDBase
	UserID      string    `gorm:"size:36;not null;index:idx_user_set" json:"user_id"`
	SetNumber   int       `gorm:"not null;index:idx_user_set" json:"set_number"`
	OrderID     string    `gorm:"size:100;not null" json:"order_id"`
	PaymentID   string    `gorm:"size:100;not null;uniqueIndex" json:"payment_id"`
	Active      bool      `gorm:"default:true" json:"active"`
	PurchasedAt time.Time `json:"purchased_at"`
}

func (PurchasedAccess) TableName() string {
	return "purchased_accesses"
}
