// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/pdiddy/biogenerator/pkg/types"
)

// Balance is the stored amount of one material in one storage entity.
type Balance struct {
	Storage  types.EntityID   `json:"storage" yaml:"storage"`
	Material types.MaterialID `json:"material" yaml:"material"`
	Amount   int              `json:"amount" yaml:"amount"`
}

// Credit is one recorded change to a balance.
type Credit struct {
	ID        string           `json:"id" yaml:"id"`
	Storage   types.EntityID   `json:"storage" yaml:"storage"`
	Material  types.MaterialID `json:"material" yaml:"material"`
	Amount    int              `json:"amount" yaml:"amount"`
	CreatedAt time.Time        `json:"created_at" yaml:"created_at"`
}

// Balances lists balances sorted by storage then material. An empty
// storage lists every storage entity.
func (s *Store) Balances(ctx context.Context, storage types.EntityID) ([]Balance, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT storage_id, material, amount FROM balances`)
	if storage != "" {
		qb.WriteString(` WHERE storage_id = ?`)
		args = append(args, string(storage))
	}
	qb.WriteString(` ORDER BY storage_id, material`)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying balances")
	}
	defer rows.Close()

	var out []Balance
	for rows.Next() {
		var (
			b                Balance
			storageID, matID string
		)
		if err := rows.Scan(&storageID, &matID, &b.Amount); err != nil {
			return nil, errors.Wrap(err, "scanning balance")
		}
		b.Storage = types.EntityID(storageID)
		b.Material = types.MaterialID(matID)
		out = append(out, b)
	}
	return out, errors.Wrap(rows.Err(), "iterating balances")
}

// History returns the most recent credits for storage, newest first.
// A limit of zero uses the configured default.
func (s *Store) History(ctx context.Context, storage types.EntityID, limit int) ([]Credit, error) {
	if limit <= 0 {
		limit = s.maxHistory
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT id, storage_id, material, amount, created_at FROM credits`)
	if storage != "" {
		qb.WriteString(` WHERE storage_id = ?`)
		args = append(args, string(storage))
	}
	qb.WriteString(` ORDER BY seq DESC LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying credits")
	}
	defer rows.Close()

	var out []Credit
	for rows.Next() {
		var (
			c                         Credit
			storageID, matID, created string
		)
		if err := rows.Scan(&c.ID, &storageID, &matID, &c.Amount, &created); err != nil {
			return nil, errors.Wrap(err, "scanning credit")
		}
		c.Storage = types.EntityID(storageID)
		c.Material = types.MaterialID(matID)
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			c.CreatedAt = t
		}
		out = append(out, c)
	}
	return out, errors.Wrap(rows.Err(), "iterating credits")
}
