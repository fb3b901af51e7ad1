package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

type Subject string

const (
	SubjectTamil   Subject = "tamil"
	SubjectPhysics Subject = "physics"
)

func (s Subject) Valid() bool {
	return s == SubjectTamil || s == SubjectPhysics
}

type QuestionOption struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// OptionList is stored as a json column.
type OptionList []QuestionOption

func (o OptionList) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *OptionList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	case nil:
		*o = nil
		return nil
	}
	return errors.New("unsupported type for OptionList")
}

// HasLabel reports whether label names one of the options.
func (o OptionList) HasLabel(label string) bool {
	for _, opt := range o {
		if opt.Label == label {
			return true
		}
	}
	return false
}

// swagger:model Question
type Question struct {
	UUIDBase
	Subject        Subject    `gorm:"size:20;not null;index" json:"subject"`
	SetNumber      int        `gorm:"not null;index" json:"set_number"`
	Part           string     `gorm:"size:5" json:"part"` // "A" (Tamil) or "B" (Physics)
	QuestionNumber int        `gorm:"not null" json:"question_number"`
	QuestionText   string     `gorm:"type:text;not null" json:"question_text"`
	Options        OptionList `gorm:"type:json" json:"options"`
	CorrectAnswer  string     `gorm:"size:10;not null" json:"correct_answer"`
	Marks          float64    `gorm:"not null" json:"marks"`
}

func (Question) TableName() string {
	return "questions"
}
