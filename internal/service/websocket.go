package service

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"debatai/internal/models"
)

// Client 代表一個 WebSocket 客戶端連接
type Client struct {
	Conn     *websocket.Conn      // WebSocket 連接
	DebateID uint                 // 所在的辯論房間 ID
	SendChan chan *models.Message // 消息發送通道，用於異步傳送消息
}

// WebSocketManager 管理所有的 WebSocket 連接和消息傳遞
type WebSocketManager struct {
	clients    map[uint]map[*Client]bool // 兩層 map: debateID -> client -> bool
	clientsMux sync.RWMutex              // 用於保護 clients map 的讀寫鎖
}

// NewWebSocketManager 創建並初始化新的 WebSocket 管理器
func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients: make(map[uint]map[*Client]bool),
	}
}

// HandleConnection 處理新的 WebSocket 連接，阻塞直到連接結束
// 連接在這裡註冊進房間，任何讀寫錯誤或對端關閉都會觸發一次且僅一次的清理
func (s *WebSocketManager) HandleConnection(conn *websocket.Conn, debateID uint) {
	client := &Client{
		Conn:     conn,
		DebateID: debateID,
		SendChan: make(chan *models.Message, 256), // 設置緩衝大小為 256 的消息通道
	}

	s.addClient(client)
	defer s.removeClient(client)

	go s.writePump(client)
	s.readPump(client)
}

// readPump 持續監聽連接，直到對端關閉或出錯
// 這個連接只作為接收端存在，收到的應用數據直接丟棄，
// 收不收得到數據都不影響連接存活，存活靠 ping/pong 維持
func (s *WebSocketManager) readPump(client *Client) {
	client.Conn.SetReadLimit(4096) // 設置最大消息大小為 4KB
	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close error: %v", err)
			}
			return
		}
	}
}

// writePump 處理向客戶端發送消息的邏輯
func (s *WebSocketManager) writePump(client *Client) {
	// 設置心跳檢查計時器
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.SendChan:
			// 設置寫入超時
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			messageBytes, err := json.Marshal(message)
			if err != nil {
				log.Printf("message encoding error: %v", err)
				continue
			}

			if err := client.Conn.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
				return
			}

		case <-ticker.C:
			// 發送心跳包
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// BroadcastToRoom 向房間內的所有客戶端廣播消息
// 單個客戶端的失敗只影響它自己：隊列滿視為斷線，交給另一個 goroutine 清理，
// 不會阻塞對其他客戶端的投遞，也不會把錯誤傳回給消息提交方
func (s *WebSocketManager) BroadcastToRoom(debateID uint, message *models.Message) {
	s.clientsMux.RLock()
	defer s.clientsMux.RUnlock()

	for client := range s.clients[debateID] {
		select {
		case client.SendChan <- message:
			// 消息成功加入發送隊列
		default:
			log.Printf("client send buffer full, dropping connection from debate %d", debateID)
			go s.removeClient(client)
		}
	}
}

// addClient 安全地添加新的客戶端連接
func (s *WebSocketManager) addClient(client *Client) {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	if s.clients[client.DebateID] == nil {
		s.clients[client.DebateID] = make(map[*Client]bool)
	}
	s.clients[client.DebateID][client] = true
}

// removeClient 安全地移除客戶端連接，重複調用只有第一次生效
// 斷線信號可能同時來自讀取失敗和廣播失敗，移除和資源釋放只做一次
func (s *WebSocketManager) removeClient(client *Client) {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	clients, ok := s.clients[client.DebateID]
	if !ok || !clients[client] {
		return
	}

	delete(clients, client)
	// 如果房間空了，刪除房間
	if len(clients) == 0 {
		delete(s.clients, client.DebateID)
	}

	// 廣播一律在讀鎖下送入通道，這裡持寫鎖關閉不會與發送競爭
	close(client.SendChan)
	client.Conn.Close()
}

// RoomClientCount 獲取指定房間的在線客戶端數量
func (s *WebSocketManager) RoomClientCount(debateID uint) int {
	s.clientsMux.RLock()
	defer s.clientsMux.RUnlock()

	return len(s.clients[debateID])
}
