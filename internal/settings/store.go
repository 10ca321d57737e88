// Package settings persists parser.Settings in a small SQLite key/value
// table so the CLI and viewer remember the user's choices between runs.
package settings

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/internal/parser"
)

// Setting keys
const (
	KeyLocale      = "locale"
	KeyRoundRanges = "round_ranges"
	KeyUseUTC      = "use_utc"
)

// Keys returns the known setting keys in display order
func Keys() []string {
	return []string{KeyLocale, KeyRoundRanges, KeyUseUTC}
}

// Store is a SQLite-backed settings store
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens or creates the settings database at path
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, mdwerror.Wrap(err, "failed to create settings directory").
			WithCode(mdwerror.CodeIOError).
			WithDetail("path", dir)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, storageError(err, "failed to open settings database").WithDetail("path", path)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, storageError(err, "failed to initialize settings schema").WithDetail("path", path)
	}

	return store, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Get returns the stored value for key. The boolean is false when the key
// has never been set.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, storageError(err, "failed to read setting").WithDetail("key", key)
	}
	return value, true, nil
}

// Set validates and stores a single setting
func (s *Store) Set(ctx context.Context, key, value string) error {
	normalized, err := Normalize(key, value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.put(ctx, s.db, key, normalized)
}

// All returns every stored setting
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, storageError(err, "failed to list settings")
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, storageError(err, "failed to scan setting")
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to list settings")
	}
	return result, nil
}

// Load overlays the stored values onto defaults
func (s *Store) Load(ctx context.Context, defaults parser.Settings) (parser.Settings, error) {
	stored, err := s.All(ctx)
	if err != nil {
		return defaults, err
	}

	result := defaults
	if v, ok := stored[KeyLocale]; ok {
		result.Locale = v
	}
	if v, ok := stored[KeyRoundRanges]; ok {
		result.RoundRanges = v == "true"
	}
	if v, ok := stored[KeyUseUTC]; ok {
		result.UseUTC = v == "true"
	}
	return result, nil
}

// Save stores every field of settings in one transaction
func (s *Store) Save(ctx context.Context, settings parser.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	values := map[string]string{
		KeyLocale:      settings.Locale,
		KeyRoundRanges: strconv.FormatBool(settings.RoundRanges),
		KeyUseUTC:      strconv.FormatBool(settings.UseUTC),
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		normalized, err := Normalize(k, values[k])
		if err != nil {
			return err
		}
		if err := s.put(ctx, tx, k, normalized); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return storageError(err, "failed to commit settings")
	}
	return nil
}

// Reset removes every stored setting
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings`); err != nil {
		return storageError(err, "failed to reset settings")
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (s *Store) put(ctx context.Context, db execer, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return storageError(err, "failed to write setting").WithDetail("key", key)
	}
	return nil
}

// Normalize checks a raw value for key and returns its stored form
func Normalize(key, value string) (string, error) {
	value = strings.TrimSpace(value)
	switch key {
	case KeyLocale:
		if value == "" {
			return "", mdwerror.New("locale must not be empty").
				WithCode(mdwerror.CodeInvalidInput).
				WithDetail("key", key)
		}
		return value, nil
	case KeyRoundRanges, KeyUseUTC:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", mdwerror.Newf("%s must be true or false: %s", key, value).
				WithCode(mdwerror.CodeInvalidInput).
				WithDetail("key", key)
		}
		return strconv.FormatBool(b), nil
	default:
		return "", mdwerror.Newf("unknown setting: %s", key).
			WithCode(mdwerror.CodeNotFound).
			WithDetail("key", key)
	}
}

func storageError(err error, message string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).WithCode(mdwerror.CodeStorageError)
}
