package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"debatai/internal/api/handlers"
	"debatai/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	debateHandler := handlers.NewDebateHandler(services.Debate)
	messageHandler := handlers.NewMessageHandler(services.Message)
	wsHandler := handlers.NewWebSocketHandler(services.WebSocket, services.Debate)

	// 前端跑在別的來源，全部放行
	r.Use(cors.Default())

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// API 路由群組
	api := r.Group("/api")
	{
		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		// 辯論相關
		debates := api.Group("/debates")
		{
			debates.GET("", debateHandler.ListDebates)   // 獲取辯論列表
			debates.POST("", debateHandler.CreateDebate) // 創建辯論

			// 辯論內的消息
			debates.GET("/:id/messages", messageHandler.ListMessages)   // 歷史消息
			debates.POST("/:id/messages", messageHandler.CreateMessage) // 提交消息
		}
	}

	// WebSocket 連接點，加入後只接收廣播
	r.GET("/ws/debates/:id", wsHandler.HandleWebSocket)
}
