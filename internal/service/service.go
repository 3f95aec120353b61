package service

import (
	"debatai/internal/repository"
)

type Services struct {
	Debate    *DebateService
	Message   *MessageService
	WebSocket *WebSocketManager
}

func NewServices(repos *repository.Repositories) *Services {
	wsManager := NewWebSocketManager()

	return &Services{
		Debate:    NewDebateService(repos.Debate),
		Message:   NewMessageService(repos.Message, wsManager),
		WebSocket: wsManager,
	}
}
