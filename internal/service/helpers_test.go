package service

import (
	"physics_master_backend/internal/config"
	"physics_master_backend/internal/model"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.TestAttempt{},
		&model.PurchasedAccess{},
		&model.StudyMaterial{},
		&model.Feedback{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
		Razorpay: config.RazorpayConfig{
			KeyID:     "rzp_test_key",
			KeySecret: "rzp_test_secret",
		},
		Exam: config.ExamConfig{
			SampleSize:       10,
			SampleTotalMarks: 15,
			SampleTimeLimit:  900,
			FullTotalMarks:   200,
			FullTimeLimit:    10800,
		},
	}
}

func seedQuestion(t *testing.T, db *gorm.DB, id string, subject model.Subject, correct string, marks float64) *model.Question {
	t.Helper()

	q := &model.Question{
		Subject:        subject,
		SetNumber:      1,
		Part:           "B",
		QuestionNumber: 1,
		QuestionText:   "question " + id,
		Options: model.OptionList{
			{Label: "A", Text: "option A"},
			{Label: "B", Text: "option B"},
			{Label: "C", Text: "option C"},
			{Label: "D", Text: "option D"},
		},
		CorrectAnswer: correct,
		Marks:         marks,
	}
	q.ID = id
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("failed to seed question %s: %v", id, err)
	}
	return q
}
