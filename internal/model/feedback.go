package model

// swagger:model Feedback
type Feedback struct {
	UUIDBase
	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`
	Rating  *int   `json:"rating,omitempty"`
}

func (Feedback) TableName() string {
	return "feedback"
}
