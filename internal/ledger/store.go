// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger persists material balances for storage entities in a
// SQLite database. Every change is recorded as a credit row and applied to
// the running balance in the same transaction.
package ledger

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/biogenerator/pkg/types"
)

const (
	dbFile            = "ledger.db"
	defaultMaxHistory = 50
)

// ErrZeroAmount is returned when a credit of zero is requested.
var ErrZeroAmount = errors.New("credit amount must be non-zero")

// Store manages the ledger SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxHistory int
	now        func() time.Time
}

// NewStore opens or creates the ledger database at dir/ledger.db and
// creates the schema if it does not exist.
func NewStore(cfg types.LedgerConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "ledger"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating ledger directory %s", dir)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	maxHistory := cfg.MaxHistory
	if maxHistory <= 0 {
		maxHistory = defaultMaxHistory
	}

	s := &Store{
		db:         db,
		dir:        dir,
		maxHistory: maxHistory,
		now:        time.Now,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating schema")
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the directory holding the ledger database.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS balances (
			storage_id TEXT NOT NULL,
			material TEXT NOT NULL,
			amount INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (storage_id, material)
		)`,
		`CREATE TABLE IF NOT EXISTS credits (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			storage_id TEXT NOT NULL,
			material TEXT NOT NULL,
			amount INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_credits_storage ON credits(storage_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return errors.Wrap(err, "executing schema statement")
		}
	}
	return nil
}

// CreditMaterial adds amount of material to storage. Negative amounts
// withdraw. The credit row and balance update commit together.
func (s *Store) CreditMaterial(ctx context.Context, storage types.EntityID, material types.MaterialID, amount int) error {
	if amount == 0 {
		return ErrZeroAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO credits (id, storage_id, material, amount, created_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), string(storage), string(material), amount,
		s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return errors.Wrapf(err, "recording credit for %s", storage)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO balances (storage_id, material, amount) VALUES (?, ?, ?)
		 ON CONFLICT(storage_id, material) DO UPDATE SET amount = amount + excluded.amount`,
		string(storage), string(material), amount,
	)
	if err != nil {
		return errors.Wrapf(err, "updating balance for %s", storage)
	}

	return tx.Commit()
}

// Balance returns the stored amount of material for storage. Unknown
// pairs have a balance of zero.
func (s *Store) Balance(ctx context.Context, storage types.EntityID, material types.MaterialID) (int, error) {
	var amount int
	err := s.db.QueryRowContext(ctx,
		`SELECT amount FROM balances WHERE storage_id = ? AND material = ?`,
		string(storage), string(material),
	).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "querying balance")
	}
	return amount, nil
}
