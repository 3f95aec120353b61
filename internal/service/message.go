package service

import (
	"sync"

	"debatai/internal/models"
	"debatai/internal/repository"
)

// PersistenceError 表示消息寫入失敗，整個提交因此中止，不會有任何廣播
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "message persistence failed: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// MessageService 是消息提交管線：先落庫，提交成功後才廣播
type MessageService struct {
	messageRepo repository.MessageRepository
	wsManager   *WebSocketManager

	locksMux sync.Mutex
	// debateID -> 提交順序鎖
	// 每場辯論一把鎖，存活到進程結束不回收：辯論不會被刪除，
	// 鎖的數量以辯論總數為上界，而且回收得和正在提交的持鎖者競爭，不值得
	debateLocks map[uint]*sync.Mutex
}

func NewMessageService(messageRepo repository.MessageRepository, wsManager *WebSocketManager) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		wsManager:   wsManager,
		debateLocks: make(map[uint]*sync.Mutex),
	}
}

// Submit 處理一次消息提交
// 同一場辯論的提交會被串行化，讓每個客戶端收到的廣播順序等於落庫順序；
// 不同辯論之間互不影響。廣播只在事務提交之後發出，投遞結果不影響返回值
func (s *MessageService) Submit(debateID uint, content, username string) (*models.Message, error) {
	lock := s.debateLock(debateID)
	lock.Lock()
	defer lock.Unlock()

	message, err := s.messageRepo.Create(debateID, content, username)
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}

	s.wsManager.BroadcastToRoom(debateID, message)
	return message, nil
}

// History 查詢某場辯論的全部歷史消息
func (s *MessageService) History(debateID uint) ([]models.Message, error) {
	return s.messageRepo.FindByDebateID(debateID)
}

func (s *MessageService) debateLock(debateID uint) *sync.Mutex {
	s.locksMux.Lock()
	defer s.locksMux.Unlock()

	lock, ok := s.debateLocks[debateID]
	if !ok {
		lock = &sync.Mutex{}
		s.debateLocks[debateID] = lock
	}
	return lock
}
