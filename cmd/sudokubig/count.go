package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudokubig/bigsolver/board"
)

func newCountCmd() *cobra.Command {
	var max int
	var preprocess, stats bool

	cmd := &cobra.Command{
		Use:   "count <puzzle.json>",
		Short: "Count solutions, up to a maximum",
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

			res := brd.CountSolutions(board.CountSolutionsOptions{
				Max:                max,
				AllowPreprocessing: preprocess,
				EnableStats:        stats,
				ReportCb: func(p board.Progress) {
					log.Debug("count progress", "done", p.Done, "elapsed", p.Elapsed)
				},
			}, nil)

			fmt.Println(res.Count)
			if stats {
				printStats(log, res.Stats)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&max, "max", 0, "stop after this many solutions (0 means unbounded)")
	cmd.Flags().BoolVar(&preprocess, "preprocess", true, "has no effect: count always runs a BIG preprocess pass before the first branch")
	cmd.Flags().BoolVar(&stats, "stats", false, "report guess/backtrack/branch-swap counters")
	return cmd
}
