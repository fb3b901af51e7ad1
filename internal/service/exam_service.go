package service

import (
	"math"
	"math/rand"
	"physics_master_backend/internal/config"
	"physics_master_backend/internal/model"
	"physics_master_backend/internal/repository"
	"physics_master_backend/pkg/monitoring"
	"sync"
	"time"
)

// ExamService serves question papers and scores submissions.
type ExamService struct {
	QuestionRepo *repository.QuestionRepository
	AttemptRepo  *repository.AttemptRepository

	mu   sync.RWMutex
	exam config.ExamConfig
}

func NewExamService(questionRepo *repository.QuestionRepository, attemptRepo *repository.AttemptRepository, cfg *config.Config) *ExamService {
	return &ExamService{
		QuestionRepo: questionRepo,
		AttemptRepo:  attemptRepo,
		exam:         cfg.Exam,
	}
}

// SetExamConfig swaps the paper settings, used by the config hot reload.
func (s *ExamService) SetExamConfig(e config.ExamConfig) {
	s.mu.Lock()
	s.exam = e
	s.mu.Unlock()
}

func (s *ExamService) examConfig() config.ExamConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exam
}

type TestSubmission struct {
	UserID    string         `json:"user_id"`
	TestType  model.TestType `json:"test_type" binding:"required"`
	Answers   []model.Answer `json:"answers" binding:"required,dive"`
	TimeTaken int            `json:"time_taken" binding:"gte=0"` // seconds
}

type DetailedResult struct {
	QuestionID     string           `json:"question_id"`
	QuestionNumber int              `json:"question_number"`
	QuestionText   string           `json:"question_text"`
	Options        model.OptionList `json:"options"`
	SelectedAnswer string           `json:"selected_answer"`
	CorrectAnswer  string           `json:"correct_answer"`
	IsCorrect      bool             `json:"is_correct"`
	Marks          float64          `json:"marks"`
}

type SubmitResult struct {
	AttemptID        string           `json:"attempt_id"`
	Score            float64          `json:"score"`
	TotalMarks       float64          `json:"total_marks"`
	Percentage       float64          `json:"percentage"`
	DetailedResults  []DetailedResult `json:"detailed_results"`
	SkippedQuestions int              `json:"skipped_questions"`
}

// PaperQuestion is a question as shown to a test-taker: the correct answer is
// stripped.
type PaperQuestion struct {
	ID             string           `json:"id"`
	Subject        model.Subject    `json:"subject"`
	SetNumber      int              `json:"set_number"`
	Part           string           `json:"part"`
	QuestionNumber int              `json:"question_number"`
	QuestionText   string           `json:"question_text"`
	Options        model.OptionList `json:"options"`
	Marks          float64          `json:"marks"`
}

type SamplePaper struct {
	Questions  []PaperQuestion `json:"questions"`
	TotalMarks float64         `json:"total_marks"`
	TimeLimit  int             `json:"time_limit"` // seconds
}

type FullPaper struct {
	TamilQuestions   []PaperQuestion `json:"tamil_questions"`
	PhysicsQuestions []PaperQuestion `json:"physics_questions"`
	TotalMarks       float64         `json:"total_marks"`
	TimeLimit        int             `json:"time_limit"` // seconds
}

// Submit scores a submission against the current question store and persists
// exactly one attempt row. Answers referencing unknown question ids are
// skipped, not errored: stale client state must not fail the whole paper.
func (s *ExamService) Submit(sub *TestSubmission) (*SubmitResult, error) {
	ids := make([]string, 0, len(sub.Answers))
	seen := make(map[string]bool, len(sub.Answers))
	for _, ans := range sub.Answers {
		if !seen[ans.QuestionID] {
			seen[ans.QuestionID] = true
			ids = append(ids, ans.QuestionID)
		}
	}

	questions, err := s.QuestionRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]*model.Question, len(questions))
	for i := range questions {
		lookup[questions[i].ID] = &questions[i]
	}

	var score, totalMarks float64
	skipped := 0
	results := make([]DetailedResult, 0, len(sub.Answers))

	for _, ans := range sub.Answers {
		q, ok := lookup[ans.QuestionID]
		if !ok {
			skipped++
			continue
		}

		totalMarks += q.Marks
		isCorrect := ans.SelectedAnswer == q.CorrectAnswer
		if isCorrect {
			score += q.Marks
		}

		results = append(results, DetailedResult{
			QuestionID:     ans.QuestionID,
			QuestionNumber: q.QuestionNumber,
			QuestionText:   q.QuestionText,
			Options:        q.Options,
			SelectedAnswer: ans.SelectedAnswer,
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      isCorrect,
			Marks:          q.Marks,
		})
	}

	attempt := &model.TestAttempt{
		UserID:      sub.UserID,
		TestType:    sub.TestType,
		Answers:     sub.Answers,
		Score:       score,
		TotalMarks:  totalMarks,
		TimeTaken:   sub.TimeTaken,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	monitoring.AttemptCounter.WithLabelValues(string(sub.TestType)).Inc()

	return &SubmitResult{
		AttemptID:        attempt.ID,
		Score:            score,
		TotalMarks:       totalMarks,
		Percentage:       percentage(score, totalMarks),
		DetailedResults:  results,
		SkippedQuestions: skipped,
	}, nil
}

// percentage rounds to 2 decimal places and defines 0/0 as 0.
func percentage(score, totalMarks float64) float64 {
	if totalMarks <= 0 {
		return 0
	}
	return math.Round(score/totalMarks*100*100) / 100
}

// SamplePaper picks sample_size physics questions uniformly at random without
// replacement, or all of them when the pool is smaller. The declared total
// marks and time limit come from config, independent of the marks actually
// sampled.
func (s *ExamService) SamplePaper() (*SamplePaper, error) {
	pool, err := s.QuestionRepo.FindBySubject(model.SubjectPhysics)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	exam := s.examConfig()
	n := exam.SampleSize
	if len(pool) < n {
		n = len(pool)
	}

	return &SamplePaper{
		Questions:  stripAnswers(pool[:n]),
		TotalMarks: exam.SampleTotalMarks,
		TimeLimit:  exam.SampleTimeLimit,
	}, nil
}

// FullPaper returns every Tamil and Physics question with answers stripped.
func (s *ExamService) FullPaper() (*FullPaper, error) {
	tamil, err := s.QuestionRepo.FindBySubject(model.SubjectTamil)
	if err != nil {
		return nil, err
	}
	physics, err := s.QuestionRepo.FindBySubject(model.SubjectPhysics)
	if err != nil {
		return nil, err
	}

	exam := s.examConfig()
	return &FullPaper{
		TamilQuestions:   stripAnswers(tamil),
		PhysicsQuestions: stripAnswers(physics),
		TotalMarks:       exam.FullTotalMarks,
		TimeLimit:        exam.FullTimeLimit,
	}, nil
}

func stripAnswers(qs []model.Question) []PaperQuestion {
	out := make([]PaperQuestion, len(qs))
	for i, q := range qs {
		out[i] = PaperQuestion{
			ID:             q.ID,
			Subject:        q.Subject,
			SetNumber:      q.SetNumber,
			Part:           q.Part,
			QuestionNumber: q.QuestionNumber,
			QuestionText:   q.QuestionText,
			Options:        q.Options,
			Marks:          q.Marks,
		}
	}
	return out
}
