package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/solver"
)

func newSolveCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "solve [board]",
		Short: "Solve a puzzle given in dot notation",
		Long: "Solve a puzzle. The board is read from the argument, from --file,\n" +
			"or from stdin, in dot notation ('.' for empty cells).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.startProfile()()

			input, err := readBoardInput(args, file)
			if err != nil {
				return err
			}
			b, err := board.Parse(input)
			if err != nil {
				return err
			}

			s := solver.New(b)
			if err := s.Solve(); err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			log.WithFields(logrus.Fields{"nodes": s.Nodes(), "moves": len(s.Moves())}).Debug("solved")

			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "read the board from a file")
	return cmd
}

func readBoardInput(args []string, file string) (string, error) {
	switch {
	case len(args) == 1:
		return args[0], nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
