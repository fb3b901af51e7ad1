package model

// swagger:model StudyMaterial
type StudyMaterial struct {
	UUIDBase
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	FileURL     string `gorm:"size:500" json:"file_url"`
	FileObject  string `gorm:"size:255" json:"-"` // storage object key, empty for external links
	FileType    string `gorm:"size:20;default:'pdf'" json:"file_type"`
	Subject     string `gorm:"size:20;default:'general'" json:"subject"`
}

func (StudyMaterial) TableName() string {
	return "study_materials"
}
