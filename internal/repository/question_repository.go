package repository

import (
	"physics_master_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// FindByIDs fetches all questions matching ids in a single query. Missing ids
// are simply absent from the result.
func (r *QuestionRepository) FindByIDs(ids []string) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var qs []model.Question
	err := r.DB.Where("id IN ?", ids).Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) FindBySubject(subject model.Subject) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("subject = ?", subject).
		Order("set_number asc, question_number asc").
		Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) FindBySet(setNumber int) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("set_number = ?", setNumber).
		Order("subject asc, question_number asc").
		Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// CreateBatch inserts all questions in one transaction; on any failure none
// are kept.
func (r *QuestionRepository) CreateBatch(qs []model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&qs).Error
	})
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id string) error {
	res := r.DB.Delete(&model.Question{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *QuestionRepository) DeleteBySet(setNumber int) (int64, error) {
	res := r.DB.Delete(&model.Question{}, "set_number = ?", setNumber)
	return res.RowsAffected, res.Error
}

// SetSummary is one row of the per-set breakdown shown on the admin dashboard.
type SetSummary struct {
	SetNumber    int   `json:"set_number"`
	TamilCount   int64 `json:"tamil_count"`
	PhysicsCount int64 `json:"physics_count"`
	TotalCount   int64 `json:"total_count"`
}

func (r *QuestionRepository) SetSummaries() ([]SetSummary, error) {
	var rows []SetSummary
	err := r.DB.Model(&model.Question{}).
		Select("set_number",
			"sum(case when subject = 'tamil' then 1 else 0 end) as tamil_count",
			"sum(case when subject = 'physics' then 1 else 0 end) as physics_count",
			"count(*) as total_count").
		Group("set_number").
		Order("set_number asc").
		Scan(&rows).Error
	return rows, err
}
