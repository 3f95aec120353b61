package repository

import "debatai/internal/storage"

type Repositories struct {
	User    UserRepository
	Debate  DebateRepository
	Message MessageRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	userRepo := NewUserRepository(db)
	return &Repositories{
		User:    userRepo,
		Debate:  NewDebateRepository(db),
		Message: NewMessageRepository(db, userRepo),
	}
}
