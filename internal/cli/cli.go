package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-euclid/matrix"
	"github.com/katalvlaran/lvlath-euclid/tsp"
)

const appName = "lvlath-tsp"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger

	// Clock starts the time budget; tests replace it.
	Clock tsp.Clock
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Clock:  tsp.SystemClock{},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

type solveOptions struct {
	input     string
	timeLimit time.Duration
	maxMoves  int
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		opts    solveOptions
		verbose bool
	)

	root := &cobra.Command{
		Use:   appName + " [benchmark]",
		Short: "Approximate a Euclidean TSP tour within a time budget",
		Long: `Reads N followed by N "x y" lines, builds a nearest-neighbor tour from
point 0 and improves it with 2-opt until no move helps or the time limit
expires. Prints the route (one index per line) or, with "benchmark",
only its total length.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, args, opts)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&opts.input, "input", "i", "", "read points from file instead of stdin")
	root.Flags().DurationVar(&opts.timeLimit, "time-limit", tsp.DefaultTimeLimit, "search budget measured from start")
	root.Flags().IntVar(&opts.maxMoves, "max-moves", 0, "stop after this many improving moves (0 = unlimited)")

	return root
}

func (c *CLI) runSolve(cmd *cobra.Command, args []string, opts solveOptions) error {
	// The budget starts before any input is read.
	clk := c.Clock
	if clk == nil {
		clk = tsp.SystemClock{}
	}
	deadline := tsp.Deadline(clk, opts.timeLimit)

	if opts.timeLimit < 0 {
		return fmt.Errorf("--time-limit: %w", tsp.ErrNegativeOption)
	}
	if opts.maxMoves < 0 {
		return fmt.Errorf("--max-moves: %w", tsp.ErrNegativeOption)
	}
	mode, err := parseMode(args)
	if err != nil {
		return err
	}

	logger := loggerFromContext(cmd.Context())

	in := cmd.InOrStdin()
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	prog := newProgress(logger)
	pts, err := readPoints(in)
	if err != nil {
		return err
	}
	b := matrix.Bounds(pts)
	prog.done("Read points", "n", len(pts), "width", b.Width(), "height", b.Height())

	prog = newProgress(logger)
	res, err := tsp.Solve(pts, deadline, tsp.Options{MaxMoves: opts.maxMoves, Clock: clk})
	if err != nil {
		return err
	}
	prog.done("Solved",
		"mode", mode,
		"nearest_neighbor", res.InitialLength,
		"length", res.Length,
		"moves", res.Moves,
		"passes", res.Passes,
		"status", res.Status,
	)

	return writeReport(cmd.OutOrStdout(), mode, res)
}
