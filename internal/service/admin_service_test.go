package service

import (
	"context"
	"errors"
	"physics_master_backend/internal/model"
	"physics_master_backend/internal/repository"
	"physics_master_backend/internal/util"
	"testing"

	"gorm.io/gorm"
)

func newAdminService(t *testing.T) (*AdminService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAdminService(
		repository.NewQuestionRepository(db),
		repository.NewUserRepository(db),
		repository.NewAttemptRepository(db),
		nil,
	)
	return svc, db
}

func questionReq(subject model.Subject, setNumber, number int, correct string) QuestionCreateRequest {
	return QuestionCreateRequest{
		Subject:        subject,
		SetNumber:      setNumber,
		Part:           "B",
		QuestionNumber: number,
		QuestionText:   "question",
		Options: model.OptionList{
			{Label: "A", Text: "option A"},
			{Label: "B", Text: "option B"},
		},
		CorrectAnswer: correct,
		Marks:         1,
	}
}

func TestBulkInsertQuestions(t *testing.T) {
	svc, db := newAdminService(t)
	ctx := context.Background()

	n, err := svc.BulkInsertQuestions(ctx, []QuestionCreateRequest{
		questionReq(model.SubjectTamil, 1, 1, "A"),
		questionReq(model.SubjectPhysics, 1, 2, "B"),
	})
	if err != nil {
		t.Fatalf("bulk insert failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 inserted, got=%d", n)
	}

	var count int64
	db.Model(&model.Question{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 rows, got=%d", count)
	}
}

func TestBulkInsertQuestions_AllOrNothing(t *testing.T) {
	svc, db := newAdminService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		reqs []QuestionCreateRequest
	}{
		{name: "empty list", reqs: nil},
		{
			name: "unknown subject",
			reqs: []QuestionCreateRequest{
				questionReq(model.SubjectTamil, 1, 1, "A"),
				questionReq("history", 1, 2, "A"),
			},
		},
		{
			name: "correct answer not an option label",
			reqs: []QuestionCreateRequest{
				questionReq(model.SubjectTamil, 1, 1, "A"),
				questionReq(model.SubjectTamil, 1, 2, "Z"),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.BulkInsertQuestions(ctx, tc.reqs)
			if !errors.Is(err, util.ErrValidation) {
				t.Fatalf("expected ErrValidation, got=%v", err)
			}

			var count int64
			db.Model(&model.Question{}).Count(&count)
			if count != 0 {
				t.Fatalf("expected no rows after failed insert, got=%d", count)
			}
		})
	}
}

func TestUpdateQuestion(t *testing.T) {
	svc, _ := newAdminService(t)
	ctx := context.Background()

	q := seedQuestion(t, svc.QuestionRepo.DB, "q1", model.SubjectPhysics, "A", 1)

	updated, err := svc.UpdateQuestion(ctx, q.ID, &QuestionUpdateRequest{
		QuestionText: "rewritten",
		Options: model.OptionList{
			{Label: "A", Text: "option A"},
			{Label: "B", Text: "option B"},
		},
		CorrectAnswer: "B",
		Marks:         2,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.QuestionText != "rewritten" || updated.CorrectAnswer != "B" || updated.Marks != 2 {
		t.Fatalf("unexpected updated question: %+v", updated)
	}

	_, err = svc.UpdateQuestion(ctx, "missing", &QuestionUpdateRequest{
		QuestionText:  "x",
		Options:       model.OptionList{{Label: "A", Text: "a"}, {Label: "B", Text: "b"}},
		CorrectAnswer: "A",
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got=%v", err)
	}
}

func TestDeleteQuestion_NotFound(t *testing.T) {
	svc, _ := newAdminService(t)

	err := svc.DeleteQuestion(context.Background(), "missing")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got=%v", err)
	}
}

func TestDeleteSet(t *testing.T) {
	svc, db := newAdminService(t)
	ctx := context.Background()

	seedQuestion(t, db, "q1", model.SubjectTamil, "A", 1)
	seedQuestion(t, db, "q2", model.SubjectPhysics, "A", 1)

	deleted, err := svc.DeleteSet(ctx, 1)
	if err != nil {
		t.Fatalf("delete set failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted, got=%d", deleted)
	}

	var count int64
	db.Model(&model.Question{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected empty table, got=%d rows", count)
	}
}

func TestSetSummaries(t *testing.T) {
	svc, db := newAdminService(t)

	seedQuestion(t, db, "q1", model.SubjectTamil, "A", 1)
	seedQuestion(t, db, "q2", model.SubjectPhysics, "A", 1)
	q3 := seedQuestion(t, db, "q3", model.SubjectPhysics, "A", 1)
	q3.SetNumber = 2
	if err := db.Save(q3).Error; err != nil {
		t.Fatalf("failed to move q3 to set 2: %v", err)
	}

	rows, err := svc.SetSummaries(context.Background())
	if err != nil {
		t.Fatalf("set summaries failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 sets, got=%d", len(rows))
	}
	if rows[0].SetNumber != 1 || rows[0].TamilCount != 1 || rows[0].PhysicsCount != 1 || rows[0].TotalCount != 2 {
		t.Fatalf("unexpected summary for set 1: %+v", rows[0])
	}
	if rows[1].SetNumber != 2 || rows[1].PhysicsCount != 1 || rows[1].TotalCount != 1 {
		t.Fatalf("unexpected summary for set 2: %+v", rows[1])
	}
}
