// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"context"
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"go.yaml.in/yaml/v3"
)

// ExportYAML writes every balance to w as YAML.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	balances, err := s.Balances(ctx, "")
	if err != nil {
		return err
	}
	if balances == nil {
		balances = []Balance{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(balances); err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}
	return enc.Close()
}

// ExportJSON writes every balance to w as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	balances, err := s.Balances(ctx, "")
	if err != nil {
		return err
	}
	if balances == nil {
		balances = []Balance{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(balances), "marshaling JSON")
}
