package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudokubig/bigsolver/board"
)

func newSolveCmd() *cobra.Command {
	var random, preprocess, stats bool

	cmd := &cobra.Command{
		Use:   "solve <puzzle.json>",
		Short: "Find one solution, or prove there is none",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			cfg, err := loadConfig(args[0])
			if err != nil {
				return err
			}

			brd, err := board.NewBoard(cfg, nil, log)
			if err != nil {
				return fmt.Errorf("construct board: %w", err)
			}
			defer brd.Release()

			res := brd.FindSolution(board.FindSolutionOptions{
				Random:             random,
				AllowPreprocessing: preprocess,
				EnableStats:        stats,
			}, nil)

			if res.NoSolution {
				log.Info("no solution")
				fmt.Println("no solution")
				return nil
			}
			defer res.Solution.Release()

			printSolution(res.Solution)
			if stats {
				printStats(log, res.Stats)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&random, "random", false, "randomize branch-candidate order")
	cmd.Flags().BoolVar(&preprocess, "preprocess", true, "run a BIG preprocess pass before the first branch")
	cmd.Flags().BoolVar(&stats, "stats", false, "report guess/backtrack/branch-swap counters")
	return cmd
}

func printSolution(sol *board.Solution) {
	n := sol.N()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c > 0 {
				fmt.Print(" ")
			}
			fmt.Print(sol.Value(r*n + c))
		}
		fmt.Println()
	}
}

func printStats(log interface {
	Info(msg string, args ...interface{})
}, st board.Stats) {
	log.Info("search stats", "guesses", st.Guesses, "backtracks", st.Backtracks, "branchSwaps", st.BranchSwaps, "duration", st.Duration)
}
