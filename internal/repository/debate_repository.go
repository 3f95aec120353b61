package repository

import (
	"debatai/internal/models"
	"debatai/internal/storage"
)

type DebateRepository interface {
	Create(debate *models.Debate) error
	FindByID(id uint) (*models.Debate, error)
	FindAll() ([]models.Debate, error)
}

type debateRepository struct {
	db *storage.PostgresDB
}

func NewDebateRepository(db *storage.PostgresDB) DebateRepository {
	return &debateRepository{db: db}
}

func (r *debateRepository) Create(debate *models.Debate) error {
	return r.db.Create(debate).Error
}

func (r *debateRepository) FindByID(id uint) (*models.Debate, error) {
	var debate models.Debate
	err := r.db.First(&debate, id).Error
	if err != nil {
		return nil, err
	}
	return &debate, nil
}

// FindAll 查詢所有辯論，最新的排最前面
func (r *debateRepository) FindAll() ([]models.Debate, error) {
	var debates []models.Debate
	err := r.db.Order("created_at DESC").Find(&debates).Error
	return debates, err
}
