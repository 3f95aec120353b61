package service

import (
	"debatai/internal/models"
	"debatai/internal/repository"
)

type DebateService struct {
	debateRepo repository.DebateRepository
}

func NewDebateService(debateRepo repository.DebateRepository) *DebateService {
	return &DebateService{debateRepo: debateRepo}
}

func (s *DebateService) ListDebates() ([]models.Debate, error) {
	return s.debateRepo.FindAll()
}

func (s *DebateService) CreateDebate(topic string) (*models.Debate, error) {
	debate := &models.Debate{Topic: topic}
	if err := s.debateRepo.Create(debate); err != nil {
		return nil, err
	}
	return debate, nil
}

func (s *DebateService) GetDebate(id uint) (*models.Debate, error) {
	return s.debateRepo.FindByID(id)
}
