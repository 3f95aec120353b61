package models

import (
	"gorm.io/gorm"
)

// Debate 表示一個辯論主題（聊天室）
// 創建之後不可變更，系統只負責在其中傳遞消息
type Debate struct {
	gorm.Model
	Topic string `gorm:"not null" json:"topic"` // 辯論主題
}
