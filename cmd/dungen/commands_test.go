package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungen/internal/config"
	"github.com/samdwyer/dungen/internal/hostcall"
	"github.com/samdwyer/dungen/internal/world"
)

func TestRunBatchMatchesSequentialRuns(t *testing.T) {
	a := &app{cfg: config.Default()}

	for _, mode := range []string{"bsp", "scatter"} {
		t.Run(mode, func(t *testing.T) {
			gen, err := a.generator(mode)
			require.NoError(t, err)

			results, err := runBatch(context.Background(), gen, 100, 16, 4)
			require.NoError(t, err)
			require.Len(t, results, 16)

			for i, rooms := range results {
				board, err := gen(context.Background(), 100+int64(i))
				require.NoError(t, err)
				assert.Equal(t, board.Rooms(), rooms, "seed %d", 100+i)
			}
		})
	}
}

func TestRunBatchStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	gen := func(ctx context.Context, seed int64) (*world.Board, error) {
		if seed == 3 {
			return nil, boom
		}
		return world.NewBoard(1, 1), nil
	}

	_, err := runBatch(context.Background(), gen, 0, 8, 2)
	assert.ErrorIs(t, err, boom)
}

func TestGeneratorUnknownMode(t *testing.T) {
	a := &app{cfg: config.Default()}
	_, err := a.generator("maze")
	assert.Error(t, err)
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{}
	root := newRootCmd(a)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))

	err := root.ExecuteContext(context.Background())
	a.shutdown(context.Background())
	return out.String(), err
}

func TestBSPCommand(t *testing.T) {
	out, err := runCLI(t, "bsp", "--seed", "42", "--board", "--stats")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	rooms, err := hostcall.DecodeRooms(lines[0])
	require.NoError(t, err)
	require.NotEmpty(t, rooms)

	// Default board is 50x50: one JSON line, 50 board rows, one summary line.
	assert.Len(t, lines[1], 50)
	assert.Contains(t, lines[51], "rooms=")

	want, err := hostcall.BSPGenerate(context.Background(), "50", "50", "42", "6", "3", "3")
	require.NoError(t, err)
	assert.Equal(t, want, lines[0])
}

func TestScatterCommand(t *testing.T) {
	out, err := runCLI(t, "scatter", "--width", "30", "--height", "30", "--rooms", "5", "--seed", "7")
	require.NoError(t, err)

	want, err := hostcall.RandomRoomGenerate(context.Background(), "30", "30", "5", "7")
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)
}

func TestCommandRejectsBadNumbers(t *testing.T) {
	_, err := runCLI(t, "scatter", "--width", "thirty")
	assert.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	out, err := runCLI(t, "batch", "--mode", "scatter", "--start-seed", "5", "--count", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	var runID string
	for i, line := range lines {
		var res batchResult
		require.NoError(t, json.Unmarshal([]byte(line), &res))
		assert.Equal(t, int64(5+i), res.Seed)
		assert.Equal(t, "scatter", res.Mode)
		assert.NotEmpty(t, res.Rooms)
		if i == 0 {
			runID = res.RunID
		}
		assert.Equal(t, runID, res.RunID)
	}
	assert.NotEmpty(t, runID)
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "12", orDefault("12", 3))
	assert.Equal(t, "3", orDefault("", 3))
}
