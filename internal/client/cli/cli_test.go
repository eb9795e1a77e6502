package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddanilov/sitesync/internal/client/appstate"
	"github.com/ddanilov/sitesync/internal/client/iocli"
	"github.com/ddanilov/sitesync/internal/client/orchestrator"
	"github.com/ddanilov/sitesync/internal/client/storage/boltdb"
	"github.com/ddanilov/sitesync/internal/models"
)

type fakeAuth struct {
	login    string
	password string
	err      error
}

func (f *fakeAuth) Login(ctx context.Context, login, password string) error {
	f.login = login
	f.password = password
	return f.err
}

type fakeDrainer struct {
	result orchestrator.DrainResult
	calls  int
}

func (f *fakeDrainer) Drain(ctx context.Context) (orchestrator.DrainResult, error) {
	f.calls++
	return f.result, nil
}

type testCli struct {
	cli     *Cli
	state   *appstate.Store
	auth    *fakeAuth
	drainer *fakeDrainer
	output  *strings.Builder
}

func createTestCli(t *testing.T) *testCli {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	bolt, err := boltdb.New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, bolt.Close())
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	state := appstate.New(bolt, bolt, bolt, logger)

	output := &strings.Builder{}
	ioMock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			fmt.Fprintln(output, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(output, format, a...)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return "foreman", nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return "secret", nil
		},
	}

	auth := &fakeAuth{}
	drainer := &fakeDrainer{}

	return &testCli{
		cli:     New(ioMock, state, auth, drainer),
		state:   state,
		auth:    auth,
		drainer: drainer,
		output:  output,
	}
}

func (tc *testCli) run(t *testing.T, args ...string) error {
	t.Helper()
	root := tc.cli.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestCli_Login(t *testing.T) {
	tc := createTestCli(t)

	require.NoError(t, tc.run(t, "login"))

	assert.Equal(t, "foreman", tc.auth.login)
	assert.Equal(t, "secret", tc.auth.password)
	assert.Contains(t, tc.output.String(), "Login successful")
}

func TestCli_Login_FlagSkipsPrompt(t *testing.T) {
	tc := createTestCli(t)

	require.NoError(t, tc.run(t, "login", "--login", "inspector"))

	assert.Equal(t, "inspector", tc.auth.login)
}

func TestCli_Status(t *testing.T) {
	tc := createTestCli(t)

	require.NoError(t, tc.run(t, "status"))

	out := tc.output.String()
	assert.Contains(t, out, "Connection: offline")
	assert.Contains(t, out, "Pending mutations: 0")
	assert.Contains(t, out, "Last sync: never")
}

func TestCli_Sync_OfflineDoesNotDrain(t *testing.T) {
	tc := createTestCli(t)

	require.NoError(t, tc.run(t, "sync"))

	assert.Equal(t, 0, tc.drainer.calls)
	assert.Contains(t, tc.output.String(), "Offline")
}

func TestCli_Sync_Online(t *testing.T) {
	tc := createTestCli(t)
	tc.state.SetOnline(context.Background(), true)
	tc.drainer.result = orchestrator.DrainResult{Applied: 3, Failed: 1}

	require.NoError(t, tc.run(t, "sync"))

	assert.Equal(t, 1, tc.drainer.calls)
	out := tc.output.String()
	assert.Contains(t, out, "Applied: 3")
	assert.Contains(t, out, "Failed: 1")
}

func TestCli_QueueList(t *testing.T) {
	tc := createTestCli(t)
	ctx := context.Background()

	require.NoError(t, tc.run(t, "queue", "list"))
	assert.Contains(t, tc.output.String(), "Queue is empty")

	tc.output.Reset()
	require.NoError(t, tc.state.Enqueue(ctx, &models.PendingMutation{
		ID:         "m-1",
		EntityType: "daily_log",
		EntityID:   "d1",
		Operation:  models.OperationCreate,
		Payload:    map[string]any{"notes": "n"},
	}))

	require.NoError(t, tc.run(t, "queue", "list"))
	out := tc.output.String()
	assert.Contains(t, out, "m-1")
	assert.Contains(t, out, "daily_log/d1")
	assert.Contains(t, out, "1 queued, 1 pending")
}

func TestCli_QueueRemoveAndClear(t *testing.T) {
	tc := createTestCli(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, tc.state.Enqueue(ctx, &models.PendingMutation{
			ID:         fmt.Sprintf("m-%d", i),
			EntityType: "daily_log",
			EntityID:   fmt.Sprintf("d%d", i),
			Operation:  models.OperationCreate,
			Payload:    map[string]any{},
		}))
	}

	require.NoError(t, tc.run(t, "queue", "remove", "m-0"))
	assert.Equal(t, 2, tc.state.PendingSyncs())

	require.NoError(t, tc.run(t, "queue", "clear"))
	assert.Equal(t, 0, tc.state.PendingSyncs())
	assert.Empty(t, tc.state.SyncQueue())
}

func TestCli_ConflictsListAndResolve(t *testing.T) {
	tc := createTestCli(t)
	ctx := context.Background()

	tc.state.AddConflict(ctx, &models.SyncConflict{
		ID:         "c-1",
		EntityType: "punch_item",
		EntityID:   "p1",
		LocalData:  map[string]any{"title": "A"},
		ServerData: map[string]any{"title": "B"},
	})

	require.NoError(t, tc.run(t, "conflicts", "list"))
	out := tc.output.String()
	assert.Contains(t, out, "c-1")
	assert.Contains(t, out, `"title":"A"`)

	tc.output.Reset()
	require.NoError(t, tc.run(t, "conflicts", "resolve", "c-1", "server"))
	assert.Contains(t, tc.output.String(), `"title":"B"`)
	assert.Equal(t, 0, tc.state.ConflictCount())
}

func TestCli_ConflictsResolve_MergeRequiresFlag(t *testing.T) {
	tc := createTestCli(t)

	tc.state.AddConflict(context.Background(), &models.SyncConflict{
		ID:         "c-1",
		EntityType: "punch_item",
		EntityID:   "p1",
		LocalData:  map[string]any{},
		ServerData: map[string]any{},
	})

	err := tc.run(t, "conflicts", "resolve", "c-1", "merge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--merged")

	require.NoError(t, tc.run(t, "conflicts", "resolve", "c-1", "merge", "--merged", `{"title":"C"}`))
	assert.Contains(t, tc.output.String(), `"title":"C"`)
}

func TestCli_ConflictsResolve_MissingIsNoOp(t *testing.T) {
	tc := createTestCli(t)

	require.NoError(t, tc.run(t, "conflicts", "resolve", "missing", "local"))

	assert.Contains(t, tc.output.String(), "nothing to do")
}

func TestCli_PrefsSet_OnlyChangedFlags(t *testing.T) {
	tc := createTestCli(t)

	require.NoError(t, tc.run(t, "prefs", "set", "--auto-sync=false"))

	prefs := tc.state.Preferences()
	assert.False(t, prefs.AutoSync)
	// Остальные настройки не изменились
	assert.True(t, prefs.SyncOnCellular)
	assert.Equal(t, int64(models.DefaultMaxBatchSize), prefs.MaxBatchSize)

	tc.output.Reset()
	require.NoError(t, tc.run(t, "prefs", "show"))
	assert.Contains(t, tc.output.String(), "auto-sync:               false")
}
