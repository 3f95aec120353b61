package models

import (
	"gorm.io/gorm"
)

// User 表示系統中的用戶
// 用戶採用惰性創建：第一次以新用戶名發言時才會建立記錄，之後重複使用
type User struct {
	gorm.Model        // 內嵌 gorm.Model，提供 ID、CreatedAt、UpdatedAt 和 DeletedAt 字段
	Username   string `gorm:"uniqueIndex;not null" json:"username"` // 用戶名，必須唯一
}
