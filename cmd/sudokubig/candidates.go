package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudokubig/bigsolver/board"
)

func newCandidatesCmd() *cobra.Command {
	var maxPerCand int

	cmd := &cobra.Command{
		Use:   "candidates <puzzle.json>",
		Short: "Compute, per cell, every value that appears in some solution",
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

			res := brd.CalcTrueCandidates(maxPerCand, func(p board.Progress) {
				log.Debug("candidates progress", "done", p.Done, "elapsed", p.Elapsed)
			}, nil)

			if res.NoSolution {
				fmt.Println("no solution")
				return nil
			}

			n := brd.N()
			for cell, mask := range res.TrueCandidates {
				fmt.Printf("r%dc%d:", cell/n+1, cell%n+1)
				for v := 1; v <= n; v++ {
					if mask&(uint64(1)<<uint(v-1)) != 0 {
						fmt.Printf(" %d", v)
					}
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxPerCand, "max-per-candidate", 0, "stop enumerating once every cell's candidate set is settled, capped at this many solutions per remaining candidate (0 means unbounded)")
	return cmd
}
