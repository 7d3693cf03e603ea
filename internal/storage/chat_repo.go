package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_store.go -package=mocks docrag/internal/storage ChatStore

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ChatStore defines the interface for chat history persistence.
type ChatStore interface {
	// SaveExchange records one question/answer pair.
	SaveExchange(ctx context.Context, userInput, botResponse string) error
	// Recent returns up to n exchanges, newest first.
	Recent(ctx context.Context, n int) ([]ChatRecord, error)
}

// ChatRepo provides chat history operations backed by SQLite.
// It implements the ChatStore interface.
type ChatRepo struct {
	db *sql.DB
}

// NewChatRepo creates a new ChatRepo.
func NewChatRepo(db *sql.DB) *ChatRepo {
	return &ChatRepo{db: db}
}

// SaveExchange records one question/answer pair.
func (r *ChatRepo) SaveExchange(ctx context.Context, userInput, botResponse string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO chat_history (user_input, bot_response, created_at) VALUES (?, ?, ?)",
		userInput, botResponse, formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("failed to save chat exchange: %w", err)
	}
	return nil
}

// Recent returns up to n exchanges, newest first.
func (r *ChatRepo) Recent(ctx context.Context, n int) ([]ChatRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_input, bot_response, created_at FROM chat_history ORDER BY id DESC LIMIT ?",
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []ChatRecord
	for rows.Next() {
		var rec ChatRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.UserInput, &rec.BotResponse, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat record: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return records, nil
}
