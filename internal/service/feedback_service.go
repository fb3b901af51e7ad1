package service

import (
	"physics_master_backend/internal/model"
	"physics_master_backend/internal/repository"
)

type FeedbackService struct {
	Repo *repository.FeedbackRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{Repo: repo}
}

type FeedbackCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
	Rating  *int   `json:"rating"`
}

func (s *FeedbackService) Create(req *FeedbackCreateRequest) (*model.Feedback, error) {
	f := &model.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Rating:  req.Rating,
	}
	if err := s.Repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FeedbackService) List() ([]model.Feedback, error) {
	return s.Repo.List()
}
