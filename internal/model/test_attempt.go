package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type TestType string

const (
	TestTypeSample TestType = "sample"
	TestTypeFull   TestType = "full"
)

func (t TestType) Valid() bool {
	return t == TestTypeSample || t == TestTypeFull
}

// Answer is one submitted (question, selection) pair. It only exists inside a
// submission and the persisted attempt row.
type Answer struct {
	QuestionID     string `json:"question_id" binding:"required"`
	SelectedAnswer string `json:"selected_answer" binding:"required"`
}

// AnswerList is stored as a json column.
type AnswerList []Answer

func (a AnswerList) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AnswerList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = nil
		return nil
	}
	return errors.New("unsupported type for AnswerList")
}

// TestAttempt is append-only: created once per submission, never updated.
// swagger:model TestAttempt
type TestAttempt struct {
	UUIDBase
	UserID      string     `gorm:"size:36;index" json:"user_id,omitempty"` // empty for anonymous attempts
	TestType    TestType   `gorm:"size:20;not null" json:"test_type"`
	Answers     AnswerList `gorm:"type:json" json:"answers"`
	Score       float64    `gorm:"not null" json:"score"`
	TotalMarks  float64    `gorm:"not null" json:"total_marks"`
	TimeTaken   int        `gorm:"not null" json:"time_taken"` // seconds
	SubmittedAt time.Time  `json:"submitted_at"`
}

func (TestAttempt) TableName() string {
	return "test_attempts"
}
