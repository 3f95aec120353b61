package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debatai/internal/models"
)

// stubMessageRepo 以固定行為頂替資料庫，專注驗證管線本身
type stubMessageRepo struct {
	mu      sync.Mutex
	err     error
	nextID  uint
	created []*models.Message
}

func (s *stubMessageRepo) Create(debateID uint, content, username string) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	s.nextID++
	msg := &models.Message{
		Content:  content,
		UserID:   1,
		DebateID: debateID,
		Username: username,
	}
	msg.ID = s.nextID
	s.created = append(s.created, msg)
	return msg, nil
}

func (s *stubMessageRepo) FindByDebateID(debateID uint) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Message
	for _, msg := range s.created {
		if msg.DebateID == debateID {
			out = append(out, *msg)
		}
	}
	return out, nil
}

func TestSubmitPersistsThenBroadcasts(t *testing.T) {
	repo := &stubMessageRepo{}
	m := NewWebSocketManager()
	svc := NewMessageService(repo, m)

	conn := dialTestClient(t, m, 42)
	waitForRoomCount(t, m, 42, 1)

	message, err := svc.Submit(42, "hello", "carol")
	require.NoError(t, err)
	require.NotZero(t, message.ID)
	assert.Equal(t, "carol", message.Username)

	event := readEvent(t, conn)
	assert.Equal(t, message.ID, event.ID)
	assert.Equal(t, "hello", event.Content)
	assert.Equal(t, "carol", event.Username)
	assert.EqualValues(t, 42, event.DebateID)
}

func TestSubmitPersistenceFailureProducesNoBroadcast(t *testing.T) {
	storeErr := errors.New("store unavailable")
	repo := &stubMessageRepo{err: storeErr}
	m := NewWebSocketManager()
	svc := NewMessageService(repo, m)

	conn := dialTestClient(t, m, 42)
	waitForRoomCount(t, m, 42, 1)

	_, err := svc.Submit(42, "hello", "carol")
	require.Error(t, err)

	var persistErr *PersistenceError
	require.ErrorAs(t, err, &persistErr)
	assert.ErrorIs(t, err, storeErr)

	// 落庫失敗的消息不能出現在任何連接上
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, readErr := conn.ReadMessage()
	assert.Error(t, readErr)

	// 提交失敗也不影響房間成員
	assert.Equal(t, 1, m.RoomClientCount(42))
}

func TestSubmitFailureDoesNotAffectLaterSubmissions(t *testing.T) {
	repo := &stubMessageRepo{err: errors.New("store unavailable")}
	m := NewWebSocketManager()
	svc := NewMessageService(repo, m)

	_, err := svc.Submit(1, "first", "alice")
	require.Error(t, err)

	repo.mu.Lock()
	repo.err = nil
	repo.mu.Unlock()

	message, err := svc.Submit(1, "second", "alice")
	require.NoError(t, err)
	assert.Equal(t, "second", message.Content)
}

func TestSubmitOrderMatchesCommitOrderPerRoom(t *testing.T) {
	repo := &stubMessageRepo{}
	m := NewWebSocketManager()
	svc := NewMessageService(repo, m)

	conn := dialTestClient(t, m, 1)
	waitForRoomCount(t, m, 1, 1)

	// 併發提交，每個客戶端收到的順序必須等於落庫順序
	const workers = 10
	const perWorker = 5
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := svc.Submit(1, "msg", "alice")
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	last := uint(0)
	for i := 0; i < workers*perWorker; i++ {
		var event models.Message
		require.NoError(t, conn.ReadJSON(&event))
		assert.Equal(t, last+1, event.ID)
		last = event.ID
	}
}

func TestHistoryDelegatesToStore(t *testing.T) {
	repo := &stubMessageRepo{}
	m := NewWebSocketManager()
	svc := NewMessageService(repo, m)

	_, err := svc.Submit(1, "one", "alice")
	require.NoError(t, err)
	_, err = svc.Submit(2, "other room", "bob")
	require.NoError(t, err)

	messages, err := svc.History(1)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "one", messages[0].Content)
}
