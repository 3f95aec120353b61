package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"debatai/internal/service"
)

// MessageHandler 處理消息提交與歷史查詢的請求
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler 創建一個新的 MessageHandler 實例
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// ListMessages 處理獲取辯論歷史消息的請求
func (h *MessageHandler) ListMessages(c *gin.Context) {
	debateID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的辯論ID"})
		return
	}

	messages, err := h.messageService.History(uint(debateID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法搜尋辯論訊息"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// CreateMessage 處理提交新消息的請求
// 消息落庫成功即返回，廣播的投遞結果不影響響應
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	debateID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的辯論ID"})
		return
	}

	var input struct {
		Content  string `json:"content" binding:"required"`
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.Submit(uint(debateID), input.Content, input.Username)
	if err != nil {
		var persistErr *service.PersistenceError
		if errors.As(err, &persistErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "儲存訊息失敗"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, message)
}
