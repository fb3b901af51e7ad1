package service

import (
	"physics_master_backend/internal/model"
	"physics_master_backend/internal/repository"
	"testing"
)

func newExamService(t *testing.T) (*ExamService, *repository.AttemptRepository) {
	t.Helper()
	db := newTestDB(t)
	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	return NewExamService(questionRepo, attemptRepo, testConfig()), attemptRepo
}

func TestSubmit_WorkedExample(t *testing.T) {
	svc, _ := newExamService(t)
	seedQuestion(t, svc.QuestionRepo.DB, "q1", model.SubjectPhysics, "A", 2)
	seedQuestion(t, svc.QuestionRepo.DB, "q2", model.SubjectPhysics, "C", 1)

	res, err := svc.Submit(&TestSubmission{
		TestType: model.TestTypeSample,
		Answers: []model.Answer{
			{QuestionID: "q1", SelectedAnswer: "A"},
			{QuestionID: "q2", SelectedAnswer: "B"},
		},
		TimeTaken: 120,
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if res.Score != 2 {
		t.Fatalf("expected score=2, got=%v", res.Score)
	}
	if res.TotalMarks != 3 {
		t.Fatalf("expected total_marks=3, got=%v", res.TotalMarks)
	}
	if res.Percentage != 66.67 {
		t.Fatalf("expected percentage=66.67, got=%v", res.Percentage)
	}
	if len(res.DetailedResults) != 2 {
		t.Fatalf("expected 2 detailed results, got=%d", len(res.DetailedResults))
	}
	if !res.DetailedResults[0].IsCorrect {
		t.Fatalf("expected q1 correct")
	}
	if res.DetailedResults[1].IsCorrect {
		t.Fatalf("expected q2 incorrect")
	}
	if res.AttemptID == "" {
		t.Fatalf("expected a persisted attempt id")
	}
}

func TestSubmit_SkipsUnknownQuestions(t *testing.T) {
	svc, _ := newExamService(t)
	seedQuestion(t, svc.QuestionRepo.DB, "q1", model.SubjectPhysics, "A", 2)

	res, err := svc.Submit(&TestSubmission{
		TestType: model.TestTypeSample,
		Answers: []model.Answer{
			{QuestionID: "q1", SelectedAnswer: "A"},
			{QuestionID: "qX", SelectedAnswer: "B"},
		},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if res.TotalMarks != 2 {
		t.Fatalf("expected unknown question excluded from total, got total=%v", res.TotalMarks)
	}
	if res.Score != 2 {
		t.Fatalf("expected score=2, got=%v", res.Score)
	}
	if res.SkippedQuestions != 1 {
		t.Fatalf("expected 1 skipped question, got=%d", res.SkippedQuestions)
	}
	if len(res.DetailedResults) != 1 {
		t.Fatalf("expected 1 detailed result, got=%d", len(res.DetailedResults))
	}
}

func TestSubmit_AllUnknownScoresZero(t *testing.T) {
	svc, _ := newExamService(t)

	res, err := svc.Submit(&TestSubmission{
		TestType: model.TestTypeSample,
		Answers:  []model.Answer{{QuestionID: "ghost", SelectedAnswer: "A"}},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if res.TotalMarks != 0 || res.Score != 0 {
		t.Fatalf("expected zero score and total, got score=%v total=%v", res.Score, res.TotalMarks)
	}
	if res.Percentage != 0 {
		t.Fatalf("expected percentage=0 when total is 0, got=%v", res.Percentage)
	}
	if res.AttemptID == "" {
		t.Fatalf("expected attempt persisted even for zero-total submission")
	}
}

func TestSubmit_RepeatedSubmissionCreatesTwoAttempts(t *testing.T) {
	svc, attemptRepo := newExamService(t)
	seedQuestion(t, svc.QuestionRepo.DB, "q1", model.SubjectPhysics, "A", 2)

	sub := &TestSubmission{
		TestType: model.TestTypeFull,
		Answers:  []model.Answer{{QuestionID: "q1", SelectedAnswer: "A"}},
	}

	first, err := svc.Submit(sub)
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	second, err := svc.Submit(sub)
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	if first.Score != second.Score || first.TotalMarks != second.TotalMarks || first.Percentage != second.Percentage {
		t.Fatalf("expected identical scoring on unchanged store: first=%+v second=%+v", first, second)
	}
	if first.AttemptID == second.AttemptID {
		t.Fatalf("expected two distinct attempt records")
	}

	count, err := attemptRepo.Count()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 attempt rows, got=%d", count)
	}

	if first.Score > first.TotalMarks {
		t.Fatalf("score must not exceed total marks")
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		total float64
		want  float64
	}{
		{name: "two thirds", score: 2, total: 3, want: 66.67},
		{name: "full marks", score: 3, total: 3, want: 100},
		{name: "zero total", score: 0, total: 0, want: 0},
		{name: "zero score", score: 0, total: 5, want: 0},
		{name: "one third", score: 1, total: 3, want: 33.33},
		{name: "fractional marks", score: 1.5, total: 4.5, want: 33.33},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := percentage(tc.score, tc.total); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSamplePaper_FewerThanTenReturnsAll(t *testing.T) {
	svc, _ := newExamService(t)
	seedQuestion(t, svc.QuestionRepo.DB, "p1", model.SubjectPhysics, "A", 1.5)
	seedQuestion(t, svc.QuestionRepo.DB, "p2", model.SubjectPhysics, "B", 1.5)
	seedQuestion(t, svc.QuestionRepo.DB, "t1", model.SubjectTamil, "A", 2)

	paper, err := svc.SamplePaper()
	if err != nil {
		t.Fatalf("sample paper failed: %v", err)
	}

	if len(paper.Questions) != 2 {
		t.Fatalf("expected all 2 physics questions, got=%d", len(paper.Questions))
	}
	for _, q := range paper.Questions {
		if q.Subject != model.SubjectPhysics {
			t.Fatalf("expected physics-only sample, got subject=%s", q.Subject)
		}
	}
	// declared totals are fixed, not the sum of sampled marks
	if paper.TotalMarks != 15 {
		t.Fatalf("expected declared total_marks=15, got=%v", paper.TotalMarks)
	}
	if paper.TimeLimit != 900 {
		t.Fatalf("expected time_limit=900, got=%v", paper.TimeLimit)
	}
}

func TestSamplePaper_CapsAtSampleSize(t *testing.T) {
	svc, _ := newExamService(t)
	for i := 0; i < 15; i++ {
		seedQuestion(t, svc.QuestionRepo.DB, "p"+string(rune('a'+i)), model.SubjectPhysics, "A", 1.5)
	}

	paper, err := svc.SamplePaper()
	if err != nil {
		t.Fatalf("sample paper failed: %v", err)
	}

	if len(paper.Questions) != 10 {
		t.Fatalf("expected 10 sampled questions, got=%d", len(paper.Questions))
	}

	seen := make(map[string]bool)
	for _, q := range paper.Questions {
		if seen[q.ID] {
			t.Fatalf("question %s sampled twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestFullPaper_SplitsSubjectsWithDeclaredTotals(t *testing.T) {
	svc, _ := newExamService(t)
	seedQuestion(t, svc.QuestionRepo.DB, "t1", model.SubjectTamil, "A", 2)
	seedQuestion(t, svc.QuestionRepo.DB, "t2", model.SubjectTamil, "B", 1)
	seedQuestion(t, svc.QuestionRepo.DB, "p1", model.SubjectPhysics, "C", 1.5)

	paper, err := svc.FullPaper()
	if err != nil {
		t.Fatalf("full paper failed: %v", err)
	}

	if len(paper.TamilQuestions) != 2 {
		t.Fatalf("expected 2 tamil questions, got=%d", len(paper.TamilQuestions))
	}
	if len(paper.PhysicsQuestions) != 1 {
		t.Fatalf("expected 1 physics question, got=%d", len(paper.PhysicsQuestions))
	}
	if paper.TotalMarks != 200 || paper.TimeLimit != 10800 {
		t.Fatalf("expected declared totals 200/10800, got %v/%v", paper.TotalMarks, paper.TimeLimit)
	}
}
