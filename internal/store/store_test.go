package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	s, err := Open(context.Background(), dsn)
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"foreign_keys", "1"},
		{"synchronous", "1"},
		{"busy_timeout", "5000"},
	}
	for _, tt := range tests {
		var got string
		require.NoError(t, s.DB().QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{preferencesTable, llmEventsTable} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}
}

func TestOpen_MigrationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hemepath.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, s.PreferenceRepo().Set(context.Background(), "theme", "light"))
	require.NoError(t, s.Close())

	s, err = Open(context.Background(), path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.PreferenceRepo().Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", got)
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "hemepath.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.FileExists(t, path)
}

func TestDSN(t *testing.T) {
	assert.True(t, strings.HasPrefix(dsn("/tmp/h.db"), "/tmp/h.db?_pragma="))
	assert.Contains(t, dsn("file:x?mode=memory"), "mode=memory&_pragma=")
	assert.Contains(t, dsn("h.db"), "_pragma=busy_timeout%285000%29")
}

func TestDefaultDBPath(t *testing.T) {
	t.Setenv("HEMEPATH_DB", "/custom/h.db")
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/custom/h.db", p)

	t.Setenv("HEMEPATH_DB", "")
	t.Setenv("XDG_DATA_HOME", "/data")
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "hemepath", "hemepath.db"), p)
}

func TestPreferenceRepo_GetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.PreferenceRepo().Get(context.Background(), "theme")
	assert.True(t, errors.Is(err, ErrNotFound), "err = %v", err)
}

func TestPreferenceRepo_LastWriteWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.PreferenceRepo()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "theme", "dark"))
	require.NoError(t, repo.Set(ctx, "theme", "light"))

	got, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", got)

	var count int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM preferences").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "explain", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "[user]\nhi"},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "explain", InputTokens: 120, OutputTokens: 30, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "case-review", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "case-review", all[0].Purpose, "newest first")
	assert.False(t, all[0].Success)
	assert.False(t, all[0].Timestamp.IsZero())

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1, Purpose: "explain"})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, 120, limited[0].InputTokens)

	first, err := repo.GetLLMEvent(ctx, all[2].ID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "[user]\nhi", first.RequestBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEventRepo_Usage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Model: "m1", Purpose: "explain", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Model: "m1", Purpose: "explain", InputTokens: 20, OutputTokens: 5, LatencyMs: 300, Success: true}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Model: "m2", Purpose: "quiz", InputTokens: 1, OutputTokens: 1, LatencyMs: 10, Success: true}))

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, PurposeUsage{Purpose: "explain", Calls: 2, InputTokens: 30, OutputTokens: 10, AvgLatencyMs: 200}, byPurpose[0])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "m2", byModel[1].Model)
	assert.Equal(t, 1, byModel[1].Calls)
}
