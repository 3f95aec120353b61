package repository

import (
	"gorm.io/gorm"

	"debatai/internal/models"
	"debatai/internal/storage"
)

type MessageRepository interface {
	// Create 在單一事務內解析用戶並寫入消息
	// 事務提交後才返回，返回的消息帶有完整的展示字段
	Create(debateID uint, content, username string) (*models.Message, error)
	FindByDebateID(debateID uint) ([]models.Message, error)
}

type messageRepository struct {
	db       *storage.PostgresDB
	userRepo UserRepository
}

func NewMessageRepository(db *storage.PostgresDB, userRepo UserRepository) MessageRepository {
	return &messageRepository{db: db, userRepo: userRepo}
}

func (r *messageRepository) Create(debateID uint, content, username string) (*models.Message, error) {
	var message models.Message
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// 確認辯論存在，消息不能掛在不存在的辯論下
		if err := tx.Select("id").First(&models.Debate{}, debateID).Error; err != nil {
			return err
		}

		user, err := r.userRepo.FindOrCreate(tx, username)
		if err != nil {
			return err
		}

		message = models.Message{
			Content:  content,
			UserID:   user.ID,
			DebateID: debateID,
		}
		return tx.Create(&message).Error
	})
	if err != nil {
		return nil, err
	}

	message.Username = username
	return &message, nil
}

// FindByDebateID 查詢某場辯論的歷史消息，按寫入順序排列
func (r *messageRepository) FindByDebateID(debateID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Model(&models.Message{}).
		Select("messages.*, users.username").
		Joins("JOIN users ON users.id = messages.user_id").
		Where("messages.debate_id = ?", debateID).
		Order("messages.created_at ASC, messages.id ASC").
		Find(&messages).Error
	return messages, err
}
