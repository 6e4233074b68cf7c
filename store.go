package folio

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/eringen/folio/contact"
)

// ErrMessageNotFound is returned when an inbox message id does not exist.
var ErrMessageNotFound = errors.New("folio: message not found")

// Store wraps a SQLite database holding the contact inbox.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the inbox page read while a submission writes; writers wait
	// on busy_timeout instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db, now: time.Now}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS messages (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    subject TEXT NOT NULL,
    body TEXT NOT NULL,
    received_at INTEGER NOT NULL,
    read INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS messages_received_at ON messages (received_at DESC);
`)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(`ALTER TABLE messages ADD COLUMN read INTEGER NOT NULL DEFAULT 0;`); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate column") {
			return nil
		}
		return err
	}
	return nil
}

// Send stores the draft as a new unread message. It makes Store a
// contact.Sender.
func (s *Store) Send(ctx context.Context, d contact.Draft) error {
	_, err := s.SaveMessage(ctx, d)
	return err
}

// SaveMessage inserts a draft and returns the stored message.
func (s *Store) SaveMessage(ctx context.Context, d contact.Draft) (contact.Message, error) {
	m := contact.Message{
		ID:         uuid.NewString(),
		Draft:      d,
		ReceivedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO messages (id, name, email, subject, body, received_at, read) VALUES (?, ?, ?, ?, ?, ?, 0)`,
		m.ID, d.Name, d.Email, d.Subject, d.Message, m.ReceivedAt.UnixMilli())
	if err != nil {
		return contact.Message{}, err
	}
	return m, nil
}

// ListMessages returns every message, newest first.
func (s *Store) ListMessages(ctx context.Context) ([]contact.Message, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, email, subject, body, received_at, read FROM messages ORDER BY received_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []contact.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// GetMessage returns one message by id.
func (s *Store) GetMessage(ctx context.Context, id string) (contact.Message, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, email, subject, body, received_at, read FROM messages WHERE id = ?`, id)
	m, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return contact.Message{}, ErrMessageNotFound
	}
	return m, err
}

// MarkRead flags the given messages as read.
func (s *Store) MarkRead(ctx context.Context, ids ...string) error {
	for _, id := range ids {
		if _, err := s.db.ExecContext(ctx, `UPDATE messages SET read = 1 WHERE id = ?`, id); err != nil {
			return err
		}
	}
	return nil
}

// CountUnread returns the number of messages not yet marked read.
func (s *Store) CountUnread(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages WHERE read = 0`).Scan(&n)
	return n, err
}

// DeleteMessage removes a message by id.
func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMessageNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(r scanner) (contact.Message, error) {
	var m contact.Message
	var receivedAt int64
	var read int
	if err := r.Scan(&m.ID, &m.Draft.Name, &m.Draft.Email, &m.Draft.Subject, &m.Draft.Message, &receivedAt, &read); err != nil {
		return contact.Message{}, err
	}
	m.ReceivedAt = time.UnixMilli(receivedAt).UTC()
	m.Read = read == 1
	return m, nil
}
