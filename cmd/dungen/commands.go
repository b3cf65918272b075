package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/dungen/internal/hostcall"
	"github.com/samdwyer/dungen/internal/report"
	"github.com/samdwyer/dungen/internal/world"
)

// outputFlags control what is printed after the room list.
type outputFlags struct {
	board bool
	stats bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.board, "board", false, "Print the rasterized tile board")
	cmd.Flags().BoolVar(&o.stats, "stats", false, "Print a layout summary")
}

func newBSPCmd(a *app) *cobra.Command {
	var width, height, seed, minSize, minRoomW, minRoomH string
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "bsp",
		Short: "Lay out rooms by binary space partition",
		Long: `Recursively split the board into cells and carve one room per cell.

Example: dungen bsp --width 50 --height 50 --seed 42 --min-size 6 --min-room-width 3 --min-room-height 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.cfg.BSP
			req, err := hostcall.ParseBSP(
				orDefault(width, d.Width),
				orDefault(height, d.Height),
				seed,
				orDefault(minSize, d.MinPartitionSize),
				orDefault(minRoomW, d.MinRoomWidth),
				orDefault(minRoomH, d.MinRoomHeight),
			)
			if err != nil {
				return err
			}
			board, err := world.GenerateBSP(cmd.Context(), req.Params, world.NewRNG(req.Seed))
			if err != nil {
				return err
			}
			a.record("bsp %dx%d seed=%d rooms=%d", req.Params.Width, req.Params.Height, req.Seed, board.RoomCount())
			return printLayout(cmd.OutOrStdout(), board, out)
		},
	}

	cmd.Flags().StringVar(&width, "width", "", "Board width")
	cmd.Flags().StringVar(&height, "height", "", "Board height")
	cmd.Flags().StringVar(&seed, "seed", "", "Random seed (random when empty)")
	cmd.Flags().StringVar(&minSize, "min-size", "", "Minimum partition size")
	cmd.Flags().StringVar(&minRoomW, "min-room-width", "", "Minimum room width")
	cmd.Flags().StringVar(&minRoomH, "min-room-height", "", "Minimum room height")
	out.register(cmd)

	return cmd
}

func newScatterCmd(a *app) *cobra.Command {
	var width, height, rooms, seed string
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "Place rooms at random positions, rejecting collisions",
		Long: `Draw room sizes from a weighted table and place them at random until the
desired count is reached or too many candidates in a row collide.

Example: dungen scatter --width 30 --height 30 --rooms 5 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.cfg.Scatter
			req, err := hostcall.ParseScatter(
				orDefault(width, d.Width),
				orDefault(height, d.Height),
				orDefault(rooms, d.DesiredRoomCount),
				seed,
			)
			if err != nil {
				return err
			}
			board, err := world.GenerateScatter(cmd.Context(), req.Params, world.NewRNG(req.Seed))
			if err != nil {
				return err
			}
			a.record("scatter %dx%d seed=%d desired=%d rooms=%d",
				req.Params.Width, req.Params.Height, req.Seed, req.Params.DesiredRoomCount, board.RoomCount())
			return printLayout(cmd.OutOrStdout(), board, out)
		},
	}

	cmd.Flags().StringVar(&width, "width", "", "Board width")
	cmd.Flags().StringVar(&height, "height", "", "Board height")
	cmd.Flags().StringVar(&rooms, "rooms", "", "Desired room count")
	cmd.Flags().StringVar(&seed, "seed", "", "Random seed (random when empty)")
	out.register(cmd)

	return cmd
}

// batchResult is one line of batch output.
type batchResult struct {
	RunID string       `json:"run_id"`
	Mode  string       `json:"mode"`
	Seed  int64        `json:"seed"`
	Rooms []world.Room `json:"rooms"`
}

func newBatchCmd(a *app) *cobra.Command {
	var mode string
	var startSeed int64
	var count int

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate layouts for a range of seeds in parallel",
		Long: `Generate one layout per seed in [start-seed, start-seed+count) using the
configured defaults. Each layout owns its own random source, so results are
identical to running the seeds one at a time. Output is one JSON object per
line, in seed order.

Example: dungen batch --mode scatter --start-seed 1 --count 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			gen, err := a.generator(mode)
			if err != nil {
				return err
			}
			results, err := runBatch(cmd.Context(), gen, startSeed, count, a.cfg.BatchWorkers)
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			enc := json.NewEncoder(cmd.OutOrStdout())
			for i, rooms := range results {
				seed := startSeed + int64(i)
				if err := enc.Encode(batchResult{RunID: runID, Mode: mode, Seed: seed, Rooms: rooms}); err != nil {
					return fmt.Errorf("writing result for seed %d: %w", seed, err)
				}
			}
			a.record("batch %s run=%s seeds=%d..%d", mode, runID, startSeed, startSeed+int64(count)-1)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "bsp", "Generator: bsp or scatter")
	cmd.Flags().Int64Var(&startSeed, "start-seed", 0, "First seed")
	cmd.Flags().IntVar(&count, "count", 10, "Number of seeds")

	return cmd
}

// generateFunc produces a board for one seed.
type generateFunc func(ctx context.Context, seed int64) (*world.Board, error)

func (a *app) generator(mode string) (generateFunc, error) {
	switch mode {
	case "bsp":
		d := a.cfg.BSP
		params := world.BSPParams{
			Width:            d.Width,
			Height:           d.Height,
			MinPartitionSize: max(d.MinPartitionSize, world.MinPartitionFor(d.MinRoomWidth, d.MinRoomHeight)),
			MinRoomWidth:     d.MinRoomWidth,
			MinRoomHeight:    d.MinRoomHeight,
		}
		if err := params.Validate(); err != nil {
			return nil, err
		}
		return func(ctx context.Context, seed int64) (*world.Board, error) {
			return world.GenerateBSP(ctx, params, world.NewRNG(seed))
		}, nil
	case "scatter":
		d := a.cfg.Scatter
		params := world.ScatterParams{
			Width:            d.Width,
			Height:           d.Height,
			DesiredRoomCount: d.DesiredRoomCount,
		}
		if err := params.Validate(); err != nil {
			return nil, err
		}
		return func(ctx context.Context, seed int64) (*world.Board, error) {
			return world.GenerateScatter(ctx, params, world.NewRNG(seed))
		}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (want bsp or scatter)", mode)
	}
}

// runBatch generates count layouts concurrently and returns their rooms in seed order.
func runBatch(ctx context.Context, gen generateFunc, startSeed int64, count, workers int) ([][]world.Room, error) {
	results := make([][]world.Room, count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < count; i++ {
		seed := startSeed + int64(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			board, err := gen(gctx, seed)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = board.Rooms()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printLayout(w io.Writer, board *world.Board, out outputFlags) error {
	encoded, err := hostcall.EncodeRooms(board.Rooms())
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, encoded); err != nil {
		return err
	}

	if out.board {
		if _, err := fmt.Fprint(w, board.String()); err != nil {
			return err
		}
	}
	if out.stats {
		summary, err := report.Summarize(board)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, summary); err != nil {
			return err
		}
	}
	return nil
}

func orDefault(flag string, def int) string {
	if flag != "" {
		return flag
	}
	return strconv.Itoa(def)
}
