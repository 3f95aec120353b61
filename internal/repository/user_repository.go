package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"debatai/internal/models"
	"debatai/internal/storage"
)

type UserRepository interface {
	// FindOrCreate 在給定的事務中查詢用戶，不存在時創建
	// 必須與後續的消息寫入共用同一個事務，避免同名併發提交產生重複用戶
	FindOrCreate(tx *gorm.DB, username string) (*models.User, error)
}

type userRepository struct {
	db *storage.PostgresDB
}

func NewUserRepository(db *storage.PostgresDB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindOrCreate(tx *gorm.DB, username string) (*models.User, error) {
	// 唯一索引加上 DO NOTHING：併發下最多只有一筆插入成功，其餘靜默跳過
	user := models.User{Username: username}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}

	// 插入被跳過時 ID 不會回填，統一重新查詢一次
	if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
