package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"debatai/internal/models"
	"debatai/internal/storage"
)

// newTestDB 建立一個跑在內存 sqlite 上的測試用資料庫
// 限制連接池為單一連接，避免每個連接各自拿到一個空的內存庫
func newTestDB(t *testing.T) *storage.PostgresDB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Debate{}, &models.Message{}))
	return &storage.PostgresDB{DB: db}
}

// createTestDebate 建立一場測試用辯論
func createTestDebate(t *testing.T, repos *Repositories, topic string) *models.Debate {
	t.Helper()

	debate := &models.Debate{Topic: topic}
	require.NoError(t, repos.Debate.Create(debate))
	require.NotZero(t, debate.ID)
	return debate
}
