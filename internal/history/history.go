package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

// Store keeps the client's local annotations: which sentences have been
// on screen and how many days in a row the board has been opened. It
// never influences what the server returns, only how items are marked.
type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS seen (
			id      TEXT PRIMARY KEY,
			seen_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_seen_seen_at ON seen(seen_at);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// MarkSeen records sentence IDs as having been on screen.
func (s *Store) MarkSeen(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := s.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO seen (id, seen_at) VALUES (?, ?)
		ON CONFLICT(id) DO NOTHING
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, id := range ids {
		if _, err := stmt.Exec(id, now); err != nil {
			return fmt.Errorf("marking %s seen: %w", id, err)
		}
	}
	return tx.Commit()
}

// SeenSet reports which of the given IDs have been marked seen before.
func (s *Store) SeenSet(ids []string) (map[string]bool, error) {
	seen := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return seen, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	rows, err := s.readDB.Query(
		"SELECT id FROM seen WHERE id IN ("+strings.Join(placeholders, ",")+")", args...)
	if err != nil {
		return nil, fmt.Errorf("querying seen: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		seen[id] = true
	}
	return seen, rows.Err()
}

// PruneSeen drops seen marks older than the given age and returns how
// many were removed.
func (s *Store) PruneSeen(olderThan time.Duration) (int64, error) {
	res, err := s.writeDB.Exec("DELETE FROM seen WHERE seen_at < ?", time.Now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("pruning seen: %w", err)
	}
	return res.RowsAffected()
}

// Stats returns the seen row count and the db file size in bytes.
func (s *Store) Stats(dbPath string) (int64, int64, error) {
	var count int64
	if err := s.readDB.QueryRow("SELECT COUNT(*) FROM seen").Scan(&count); err != nil {
		return 0, 0, err
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, err
	}
	return count, info.Size(), nil
}

// UpdateStreak bumps the consecutive-day counter: same day keeps it,
// the day after yesterday's visit increments it, a gap resets to 1.
// Returns the current streak.
func (s *Store) UpdateStreak() (int, error) {
	now := time.Now()
	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)

	streak := 1
	if v, err := s.getMeta("streak_days"); err == nil {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			streak = n
		}
	}

	last, _ := s.getMeta("last_active_date")
	switch last {
	case today:
		// already counted
	case yesterday:
		streak++
	default:
		streak = 1
	}

	if err := s.setMeta("last_active_date", today); err != nil {
		return 0, err
	}
	if err := s.setMeta("streak_days", strconv.Itoa(streak)); err != nil {
		return 0, err
	}
	return streak, nil
}

func (s *Store) SetLastOpened() error {
	return s.setMeta("last_opened", time.Now().Format(time.RFC3339))
}

func (s *Store) GetLastOpened() (time.Time, error) {
	v, err := s.getMeta("last_opened")
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, v)
}

func (s *Store) getMeta(key string) (string, error) {
	var value string
	err := s.readDB.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&value)
	return value, err
}

func (s *Store) setMeta(key, value string) error {
	_, err := s.writeDB.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
