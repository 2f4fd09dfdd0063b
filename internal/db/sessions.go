package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/interview-coach/internal/interview"
)

// SessionStore is the PostgreSQL-backed interview.Store. The full session
// state is stored as a JSONB blob; role, seniority and status are duplicated
// into columns for querying without unpacking the blob.
type SessionStore struct {
	db *DB
}

// NewSessionStore creates a session store on an open database.
func NewSessionStore(db *DB) *SessionStore {
	return &SessionStore{db: db}
}

// Save upserts a session.
func (s *SessionStore) Save(ctx context.Context, sess *interview.Session) error {
	state, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	_, err = s.db.pool.Exec(ctx,
		`INSERT INTO interview_sessions (id, role, seniority, status, state, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET status = $4, state = $5, updated_at = NOW()`,
		sess.ID, sess.Role, sess.Seniority, sess.Status, state, sess.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", sess.ID, err)
	}
	return nil
}

// Get loads a session by ID. Returns interview.ErrSessionNotFound when no
// row exists.
func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*interview.Session, error) {
	var state []byte
	err := s.db.pool.QueryRow(ctx,
		`SELECT state FROM interview_sessions WHERE id = $1`, id,
	).Scan(&state)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, interview.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}

	var sess interview.Session
	if err := json.Unmarshal(state, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
	}
	return &sess, nil
}

// List returns all sessions, newest first.
func (s *SessionStore) List(ctx context.Context) ([]*interview.Session, error) {
	rows, err := s.db.pool.Query(ctx,
		`SELECT state FROM interview_sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*interview.Session
	for rows.Next() {
		var state []byte
		if err := rows.Scan(&state); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		var sess interview.Session
		if err := json.Unmarshal(state, &sess); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session row: %w", err)
		}
		sessions = append(sessions, &sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read session rows: %w", err)
	}
	return sessions, nil
}

// Delete removes a session. Returns interview.ErrSessionNotFound when no
// row was deleted.
func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.pool.Exec(ctx,
		`DELETE FROM interview_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return interview.ErrSessionNotFound
	}
	return nil
}
