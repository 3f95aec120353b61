package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"debatai/internal/service"
)

// DebateHandler 處理與辯論相關的請求
type DebateHandler struct {
	debateService *service.DebateService
}

// NewDebateHandler 創建一個新的 DebateHandler 實例
func NewDebateHandler(debateService *service.DebateService) *DebateHandler {
	return &DebateHandler{debateService: debateService}
}

// ListDebates 處理獲取辯論列表的請求
func (h *DebateHandler) ListDebates(c *gin.Context) {
	debates, err := h.debateService.ListDebates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法取得辯論列表"})
		return
	}

	c.JSON(http.StatusOK, debates)
}

// CreateDebate 處理創建新辯論的請求
func (h *DebateHandler) CreateDebate(c *gin.Context) {
	var input struct {
		Topic string `json:"topic" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	debate, err := h.debateService.CreateDebate(input.Topic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "創建辯論失敗"})
		return
	}

	c.JSON(http.StatusCreated, debate)
}
