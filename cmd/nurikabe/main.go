// Command nurikabe loads a level, optionally runs the constraint-
// propagation solver over it, and prints the resulting board.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/cellwise/nurikabe/internal/level"
	"github.com/cellwise/nurikabe/internal/logger"
	"github.com/cellwise/nurikabe/internal/solver"
	"github.com/cellwise/nurikabe/internal/solver/rules"
)

func main() {
	levelPath := flag.String("level", "", "path to a YAML level file")
	logLevel := flag.String("log-level", "info", "debug|info")
	useSolver := flag.Bool("use-solver", true, "run the deduction solver before printing the board")
	includeGridNumbers := flag.Bool("include-grid-numbers", false, "print row/column index headers")
	timeout := flag.Duration("timeout", 0, "stop the solver after this long, even if not at a fixed point (0 = unbounded)")
	flag.Parse()

	log := logger.New(logger.Config{Level: *logLevel})
	sessionID := uuid.New().String()
	log = log.With("session", sessionID)

	if *levelPath == "" {
		fmt.Fprintln(os.Stderr, "nurikabe: -level is required")
		os.Exit(2)
	}

	lvl, err := level.Load(*levelPath)
	if err != nil {
		log.Error("failed to load level", "error", err)
		fmt.Fprintf(os.Stderr, "nurikabe: %v\n", err)
		os.Exit(1)
	}

	b, err := lvl.Board()
	if err != nil {
		log.Error("failed to build board", "error", err)
		fmt.Fprintf(os.Stderr, "nurikabe: %v\n", err)
		os.Exit(1)
	}

	log.Info("level loaded", "rows", lvl.Rows, "cols", lvl.Cols, "clues", len(lvl.Clues))

	if !*useSolver {
		fmt.Print(b.Render(*includeGridNumbers))
		os.Exit(0)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	start := time.Now()
	driver := solver.NewDriver(rules.All())
	result := driver.Run(ctx, b)
	elapsed := time.Since(start)

	if result.Contradiction != nil {
		log.Error("solver stopped on contradiction", "reason", result.Contradiction.Error())
		fmt.Fprintf(os.Stderr, "nurikabe: %v\n", result.Contradiction)
	}

	fmt.Print(b.Render(*includeGridNumbers))
	fmt.Printf(
		"solved in %s, %s cell changes, status %s\n",
		humanize.RelTime(start, start.Add(elapsed), "", ""),
		humanize.Comma(int64(result.Changes.Len())),
		b.Status(),
	)

	log.Info("solve complete",
		"elapsed_ms", elapsed.Milliseconds(),
		"changes", result.Changes.Len(),
		"status", b.Status().String(),
	)

	if result.Contradiction != nil {
		os.Exit(1)
	}
}
