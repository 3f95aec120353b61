package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"debatai/internal/service"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 注意：在生產環境中，應該檢查 origin
	},
}

// WebSocketHandler 處理 WebSocket 連接
type WebSocketHandler struct {
	wsManager     *service.WebSocketManager
	debateService *service.DebateService
}

// NewWebSocketHandler 創建一個新的 WebSocketHandler 實例
func NewWebSocketHandler(wsManager *service.WebSocketManager, debateService *service.DebateService) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:     wsManager,
		debateService: debateService,
	}
}

// HandleWebSocket 處理 WebSocket 連接請求
// 握手階段的任何失敗都在這裡回報給連接方，不會留下任何房間註冊
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	// 握手前先驗證辯論 ID
	debateID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的辯論ID"})
		return
	}

	if _, err := h.debateService.GetDebate(uint(debateID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "辯論不存在"})
		return
	}

	// 升級 HTTP 連接為 WebSocket 連接
	// 失敗時 upgrader 已經回覆了錯誤響應
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	// 接手連接的整個生命週期，阻塞直到斷線
	h.wsManager.HandleConnection(conn, uint(debateID))
}
