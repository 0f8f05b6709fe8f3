package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/fintrack/internal/domain"
)

// ChatMessageRepository implements usecase.ChatMessageRepository.
type ChatMessageRepository struct {
	pool *pgxpool.Pool
}

// NewChatMessageRepository creates a new ChatMessageRepository.
func NewChatMessageRepository(pool *pgxpool.Pool) *ChatMessageRepository {
	return &ChatMessageRepository{pool: pool}
}

// Append stores messages in one round trip. Chat always appends the
// user message and the reply together.
func (r *ChatMessageRepository) Append(ctx context.Context, messages ...*domain.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	query := `
		INSERT INTO chat_messages (id, role, content, timestamp)
		VALUES ($1, $2, $3, $4)
	`

	batch := &pgx.Batch{}
	for _, message := range messages {
		batch.Queue(query, message.ID, message.Role, message.Content, message.Timestamp)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range messages {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return results.Close()
}

// List returns the conversation log oldest first.
func (r *ChatMessageRepository) List(ctx context.Context, limit int) ([]*domain.ChatMessage, error) {
	query := `
		SELECT id, role, content, timestamp
		FROM chat_messages
		ORDER BY timestamp ASC, id ASC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.ChatMessage
	for rows.Next() {
		var message domain.ChatMessage

		err := rows.Scan(
			&message.ID,
			&message.Role,
			&message.Content,
			&message.Timestamp,
		)
		if err != nil {
			return nil, err
		}

		messages = append(messages, &message)
	}

	return messages, rows.Err()
}
