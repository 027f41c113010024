package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/infrastructure/storage"
	"svw.info/sudokugen/internal/usecase"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		size  int
		seed  int64
		count int
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate minimal puzzles with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.startProfile()()

			if size == 0 {
				size = a.cfg.BaseSize
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			uc := usecase.NewService(nil, generator.NewPuzzleGenerator(), nil, nil, storage.NewFS(a.cfg.DataDir))
			ctx := context.Background()

			for i := 0; i < count; i++ {
				p, st, err := uc.Generate(ctx, seed+int64(i), size)
				if err != nil {
					return err
				}
				log.WithFields(logrus.Fields{
					"seed":   p.Seed,
					"givens": countGivens(p.Board),
					"unique": p.Unique,
					"dur":    st.Duration.Round(time.Millisecond).String(),
				}).Info("generated")

				fmt.Fprintf(cmd.OutOrStdout(), "Puzzle (seed %d):\n%s\nSolution:\n%s\n",
					p.Seed, prettyBoard(p.Board), prettyBoard(p.Solution))

				if save {
					if err := uc.Save(ctx, p); err != nil {
						return err
					}
					log.WithField("id", p.ID).Info("saved")
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "base size of the board (3 = 9x9)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "rng seed (default: current time)")
	cmd.Flags().IntVar(&count, "count", 1, "number of puzzles to generate")
	cmd.Flags().BoolVar(&save, "save", false, "persist generated puzzles to the data directory")
	return cmd
}

func prettyBoard(compact string) string {
	b, err := board.Parse(compact)
	if err != nil {
		return compact + "\n"
	}
	return b.String()
}

func countGivens(compact string) int {
	n := 0
	for _, r := range compact {
		if r != '.' {
			n++
		}
	}
	return n
}
