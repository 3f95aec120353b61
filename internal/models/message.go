package models

import (
	"gorm.io/gorm"
)

// Message 代表一條辯論消息，同時滿足 WebSocket 廣播和數據庫存儲需求
type Message struct {
	gorm.Model
	Content  string `json:"content" gorm:"type:text;not null"`
	UserID   uint   `json:"user_id" gorm:"not null"`
	DebateID uint   `json:"debate_id" gorm:"not null;index"`
	// Username 是從 users 表連接查詢得到的展示用字段，不建表也不寫入
	Username string `json:"username" gorm:"-:migration;->"`
}
