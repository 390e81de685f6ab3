package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minsplit/minsplit/backend/internal/model/debate"
)

// Postgres persists conversations in a single table with the transcript as a
// JSONB column and tags as text[].
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to the database and verifies reachability.
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Postgres) Close() {
	s.pool.Close()
}

// EnsureSchema creates the conversations table if it does not exist yet.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS conversations (
			id             uuid PRIMARY KEY,
			situation      text NOT NULL,
			messages       jsonb NOT NULL,
			final_decision text NOT NULL,
			tags           text[] NOT NULL DEFAULT '{}',
			created_at     timestamptz NOT NULL DEFAULT now(),
			updated_at     timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure conversations table: %w", err)
	}
	return nil
}

// Create inserts the conversation and returns the assigned id.
func (s *Postgres) Create(ctx context.Context, conv debate.Conversation) (string, error) {
	messages, err := json.Marshal(conv.Messages)
	if err != nil {
		return "", fmt.Errorf("marshal transcript: %w", err)
	}

	id := uuid.New()
	_, err = s.pool.Exec(ctx, `
		INSERT INTO conversations (id, situation, messages, final_decision, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, conv.Situation, messages, conv.FinalDecision, conv.Tags, conv.CreatedAt, conv.UpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert conversation: %w", err)
	}
	return id.String(), nil
}

// List returns the lightweight projection, newest first.
func (s *Postgres) List(ctx context.Context, limit int) ([]debate.Summary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, situation, final_decision, created_at, tags
		FROM conversations
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	var summaries []debate.Summary
	for rows.Next() {
		var (
			id      uuid.UUID
			summary debate.Summary
		)
		if err := rows.Scan(&id, &summary.Situation, &summary.FinalDecision, &summary.CreatedAt, &summary.Tags); err != nil {
			return nil, fmt.Errorf("scan conversation summary: %w", err)
		}
		summary.ID = id.String()
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversations: %w", err)
	}
	return summaries, nil
}

// Get fetches a full conversation record by id.
func (s *Postgres) Get(ctx context.Context, id string) (debate.Conversation, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return debate.Conversation{}, ErrNotFound
	}

	row := s.pool.QueryRow(ctx, `
		SELECT situation, messages, final_decision, tags, created_at, updated_at
		FROM conversations WHERE id = $1`, parsed)

	var (
		conv     debate.Conversation
		messages []byte
	)
	err = row.Scan(&conv.Situation, &messages, &conv.FinalDecision, &conv.Tags, &conv.CreatedAt, &conv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return debate.Conversation{}, ErrNotFound
	}
	if err != nil {
		return debate.Conversation{}, fmt.Errorf("get conversation: %w", err)
	}

	if err := json.Unmarshal(messages, &conv.Messages); err != nil {
		return debate.Conversation{}, fmt.Errorf("unmarshal transcript: %w", err)
	}
	conv.ID = parsed.String()
	return conv, nil
}

// Delete removes a conversation by id.
func (s *Postgres) Delete(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	tag, err := s.pool.Exec(ctx, `DELETE FROM conversations WHERE id = $1`, parsed)
	if err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping reports database reachability.
func (s *Postgres) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
