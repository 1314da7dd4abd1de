package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Environment:      config.EnvTesting,
		Host:             "127.0.0.1",
		Port:             "5000",
		DatabaseURL:      "sqlite://" + filepath.Join(t.TempDir(), "admin.db"),
		PaginationSize:   5,
		MaxContentLength: 1024,
		CORSOrigins:      []string{"*"},
		ShutdownTimeout:  time.Second,
	}
}

func TestInitResetAndSummary(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	var out bytes.Buffer

	require.NoError(t, runCommand(ctx, cfg, "init-db", nil, &out))
	assert.Contains(t, out.String(), "Database initialized successfully.")
	assert.Contains(t, out.String(), "Schema version: 1 (dirty: false)")
	assert.Contains(t, out.String(), "Stored expenses: 0")

	out.Reset()
	require.NoError(t, runCommand(ctx, cfg, "init-db", nil, &out))
	assert.Contains(t, out.String(), "already up to date")

	store, err := openStore(cfg)
	require.NoError(t, err)
	svc := services.NewServiceContainer(store.Repos)
	_, err = svc.Expense.CreateExpense(ctx, map[string]any{"amount": "12.50", "description": "Lunch", "category": "food"})
	require.NoError(t, err)
	store.Close()

	out.Reset()
	require.NoError(t, runCommand(ctx, cfg, "init-db", nil, &out))
	assert.Contains(t, out.String(), "Stored expenses: 1")

	out.Reset()
	require.NoError(t, runCommand(ctx, cfg, "summary", nil, &out))
	assert.Contains(t, out.String(), "Food")
	assert.Contains(t, out.String(), "12.50")

	out.Reset()
	assert.Error(t, runCommand(ctx, cfg, "reset-db", nil, &out))
	require.NoError(t, runCommand(ctx, cfg, "reset-db", []string{"-y"}, &out))

	store, err = openStore(cfg)
	require.NoError(t, err)
	defer store.Close()
	count, err := store.Repos.ExpenseRepo.CountExpenses(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCheckConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseURL = "postgres://app:secret@db/expenses"
	var out bytes.Buffer

	require.NoError(t, runCommand(context.Background(), cfg, "check-config", nil, &out))

	assert.Contains(t, out.String(), "PAGINATION_SIZE")
	assert.Contains(t, out.String(), "xxxxx")
	assert.NotContains(t, out.String(), "secret")
}

func TestUnknownCommandAndBadFlags(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	assert.Error(t, runCommand(context.Background(), cfg, "frobnicate", nil, &out))
	assert.Error(t, runCommand(context.Background(), cfg, "summary", []string{"-start", "nope"}, &out))
}
