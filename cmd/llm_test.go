package cmd

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerwiz/internal/store"
)

func listCmdWith(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "list"}
	addListFlags(c)
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestListQueryOpts_Defaults(t *testing.T) {
	opts, err := listQueryOpts(listCmdWith(t), time.Now())
	require.NoError(t, err)
	assert.Equal(t, store.QueryOpts{Limit: 20}, opts)
}

func TestListQueryOpts_Filters(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	c := listCmdWith(t,
		"-n", "5",
		"--purpose", "report-eval",
		"--run", "run-1",
		"--after", "40",
		"--since", "2h",
		"--until", "2026-03-10T14:30:00Z",
	)

	opts, err := listQueryOpts(c, now)
	require.NoError(t, err)
	assert.Equal(t, store.QueryOpts{
		Limit:   5,
		Purpose: "report-eval",
		RunID:   "run-1",
		After:   40,
		From:    now.Add(-2 * time.Hour),
		To:      time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
	}, opts)
}

func TestListQueryOpts_Rejects(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	_, err := listQueryOpts(listCmdWith(t, "--since", "yesterday"), now)
	assert.ErrorContains(t, err, "--since")

	_, err = listQueryOpts(listCmdWith(t, "--since", "1h", "--until", "3h"), now)
	assert.ErrorContains(t, err, "before --since")
}

func TestParseWhen_Date(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	got, err := parseWhen("2026-03-01", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got)
}
