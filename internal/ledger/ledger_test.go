// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/biogenerator/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.LedgerConfig{Dir: filepath.Join(t.TempDir(), "ledger")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "ledger")
	store, err := NewStore(types.LedgerConfig{Dir: dir})
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(dir, dbFile))
	assert.NoError(t, err)
	assert.Equal(t, defaultMaxHistory, store.maxHistory)
}

func TestNewStore_ReopenKeepsBalances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(types.LedgerConfig{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, store.CreditMaterial(ctx, "biogen", "Biomass", 4))
	require.NoError(t, store.Close())

	store, err = NewStore(types.LedgerConfig{Dir: dir})
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Balance(ctx, "biogen", "Biomass")
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestCreditMaterial(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreditMaterial(ctx, "biogen", "Biomass", 3))
	require.NoError(t, store.CreditMaterial(ctx, "biogen", "Biomass", 2))
	require.NoError(t, store.CreditMaterial(ctx, "biogen", "Plastic", 1))
	require.NoError(t, store.CreditMaterial(ctx, "other", "Biomass", 7))
	require.NoError(t, store.CreditMaterial(ctx, "biogen", "Biomass", -1))

	got, err := store.Balance(ctx, "biogen", "Biomass")
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = store.Balance(ctx, "biogen", "Steel")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestCreditMaterial_RejectsZero(t *testing.T) {
	store := testStore(t)
	err := store.CreditMaterial(context.Background(), "biogen", "Biomass", 0)
	assert.True(t, errors.Is(err, ErrZeroAmount))
}

func TestBalances(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreditMaterial(ctx, "b", "Plastic", 1))
	require.NoError(t, store.CreditMaterial(ctx, "a", "Biomass", 2))
	require.NoError(t, store.CreditMaterial(ctx, "b", "Biomass", 3))

	all, err := store.Balances(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []Balance{
		{Storage: "a", Material: "Biomass", Amount: 2},
		{Storage: "b", Material: "Biomass", Amount: 3},
		{Storage: "b", Material: "Plastic", Amount: 1},
	}, all)

	onlyB, err := store.Balances(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, onlyB, 2)
}

func TestHistory(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	for _, amt := range []int{1, 2, 3} {
		require.NoError(t, store.CreditMaterial(ctx, "biogen", "Biomass", amt))
	}
	require.NoError(t, store.CreditMaterial(ctx, "other", "Biomass", 9))

	hist, err := store.History(ctx, "biogen", 2)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, 3, hist[0].Amount)
	assert.Equal(t, 2, hist[1].Amount)
	assert.Equal(t, fixed, hist[0].CreatedAt)
	assert.NotEqual(t, hist[0].ID, hist[1].ID)

	all, err := store.History(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, types.EntityID("other"), all[0].Storage)
}

func TestExport(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreditMaterial(ctx, "biogen", "Biomass", 5))

	var yb bytes.Buffer
	require.NoError(t, store.ExportYAML(ctx, &yb))
	var fromYAML []Balance
	require.NoError(t, yaml.Unmarshal(yb.Bytes(), &fromYAML))
	assert.Equal(t, []Balance{{Storage: "biogen", Material: "Biomass", Amount: 5}}, fromYAML)

	var jb bytes.Buffer
	require.NoError(t, store.ExportJSON(ctx, &jb))
	var fromJSON []Balance
	require.NoError(t, json.Unmarshal(jb.Bytes(), &fromJSON))
	assert.Equal(t, fromYAML, fromJSON)
}

func TestExport_EmptyLedger(t *testing.T) {
	store := testStore(t)

	var jb bytes.Buffer
	require.NoError(t, store.ExportJSON(context.Background(), &jb))
	assert.JSONEq(t, "[]", jb.String())
}
