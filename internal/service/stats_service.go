package service

import "physics_master_backend/internal/repository"

type StatsService struct {
	UserRepo    *repository.UserRepository
	AttemptRepo *repository.AttemptRepository
}

func NewStatsService(userRepo *repository.UserRepository, attemptRepo *repository.AttemptRepository) *StatsService {
	return &StatsService{
		UserRepo:    userRepo,
		AttemptRepo: attemptRepo,
	}
}

type Stats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalAttempts int64 `json:"total_attempts"`
}

func (s *StatsService) GetStats() (*Stats, error) {
	users, err := s.UserRepo.Count()
	if err != nil {
		return nil, err
	}
	attempts, err := s.AttemptRepo.Count()
	if err != nil {
		return nil, err
	}
	return &Stats{TotalUsers: users, TotalAttempts: attempts}, nil
}
