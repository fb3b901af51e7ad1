package service

import (
	"context"
	"encoding/json"
	"fmt"
	"physics_master_backend/internal/model"
	"physics_master_backend/internal/repository"
	"physics_master_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	setSummaryCacheKey = "admin:question_sets"
	setSummaryCacheTTL = 5 * time.Minute
)

// AdminService covers the admin panel: question and set management plus the
// users/attempts listings.
type AdminService struct {
	QuestionRepo *repository.QuestionRepository
	UserRepo     *repository.UserRepository
	AttemptRepo  *repository.AttemptRepository
	Redis        *redis.Client
}

func NewAdminService(questionRepo *repository.QuestionRepository, userRepo *repository.UserRepository, attemptRepo *repository.AttemptRepository, rdb *redis.Client) *AdminService {
	return &AdminService{
		QuestionRepo: questionRepo,
		UserRepo:     userRepo,
		AttemptRepo:  attemptRepo,
		Redis:        rdb,
	}
}

// QuestionCreateRequest is one question of a bulk insert. Unknown json fields
// are ignored by binding.
type QuestionCreateRequest struct {
	ID             string           `json:"id"`
	Subject        model.Subject    `json:"subject" binding:"required"`
	SetNumber      int              `json:"set_number" binding:"required,gt=0"`
	Part           string           `json:"part"`
	QuestionNumber int              `json:"question_number" binding:"required,gt=0"`
	QuestionText   string           `json:"question_text" binding:"required"`
	Options        model.OptionList `json:"options" binding:"required,min=2"`
	CorrectAnswer  string           `json:"correct_answer" binding:"required"`
	Marks          float64          `json:"marks" binding:"gte=0"`
}

func (req *QuestionCreateRequest) validate() error {
	if !req.Subject.Valid() {
		return fmt.Errorf("%w: unknown subject %q", util.ErrValidation, req.Subject)
	}
	if !req.Options.HasLabel(req.CorrectAnswer) {
		return fmt.Errorf("%w: correct_answer %q does not match any option label", util.ErrValidation, req.CorrectAnswer)
	}
	return nil
}

// BulkInsertQuestions validates every question first and inserts them in one
// transaction: either all rows land or none do.
func (s *AdminService) BulkInsertQuestions(ctx context.Context, reqs []QuestionCreateRequest) (int, error) {
	if len(reqs) == 0 {
		return 0, fmt.Errorf("%w: empty question list", util.ErrValidation)
	}

	qs := make([]model.Question, len(reqs))
	for i := range reqs {
		if err := reqs[i].validate(); err != nil {
			return 0, err
		}
		qs[i] = model.Question{
			Subject:        reqs[i].Subject,
			SetNumber:      reqs[i].SetNumber,
			Part:           reqs[i].Part,
			QuestionNumber: reqs[i].QuestionNumber,
			QuestionText:   reqs[i].QuestionText,
			Options:        reqs[i].Options,
			CorrectAnswer:  reqs[i].CorrectAnswer,
			Marks:          reqs[i].Marks,
		}
		qs[i].ID = reqs[i].ID
	}

	if err := s.QuestionRepo.CreateBatch(qs); err != nil {
		return 0, err
	}

	s.invalidateSetCache(ctx)
	return len(qs), nil
}

func (s *AdminService) ListQuestions(setNumber int) ([]model.Question, error) {
	return s.QuestionRepo.FindBySet(setNumber)
}

type QuestionUpdateRequest struct {
	QuestionText  string           `json:"question_text" binding:"required"`
	Options       model.OptionList `json:"options" binding:"required,min=2"`
	CorrectAnswer string           `json:"correct_answer" binding:"required"`
	Marks         float64          `json:"marks" binding:"gte=0"`
}

func (s *AdminService) UpdateQuestion(ctx context.Context, id string, req *QuestionUpdateRequest) (*model.Question, error) {
	if !req.Options.HasLabel(req.CorrectAnswer) {
		return nil, fmt.Errorf("%w: correct_answer %q does not match any option label", util.ErrValidation, req.CorrectAnswer)
	}

	q, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	q.QuestionText = req.QuestionText
	q.Options = req.Options
	q.CorrectAnswer = req.CorrectAnswer
	q.Marks = req.Marks

	if err := s.QuestionRepo.Update(q); err != nil {
		return nil, err
	}

	s.invalidateSetCache(ctx)
	return q, nil
}

func (s *AdminService) DeleteQuestion(ctx context.Context, id string) error {
	if err := s.QuestionRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateSetCache(ctx)
	return nil
}

func (s *AdminService) DeleteSet(ctx context.Context, setNumber int) (int64, error) {
	deleted, err := s.QuestionRepo.DeleteBySet(setNumber)
	if err != nil {
		return 0, err
	}
	s.invalidateSetCache(ctx)
	return deleted, nil
}

// SetSummaries lists per-set question counts, cached briefly for the admin
// dashboard; any question write invalidates the cache.
func (s *AdminService) SetSummaries(ctx context.Context) ([]repository.SetSummary, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, setSummaryCacheKey).Result(); err == nil {
			var cached []repository.SetSummary
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	rows, err := s.QuestionRepo.SetSummaries()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(rows); err == nil {
			s.Redis.Set(ctx, setSummaryCacheKey, data, setSummaryCacheTTL)
		}
	}

	return rows, nil
}

func (s *AdminService) ListUsers() ([]model.User, error) {
	return s.UserRepo.List()
}

func (s *AdminService) ListAttempts() ([]model.TestAttempt, error) {
	return s.AttemptRepo.List()
}

func (s *AdminService) invalidateSetCache(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, setSummaryCacheKey)
	}
}
