package main

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/sudokugen/internal/adapters/http"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/hint"
	"svw.info/sudokugen/internal/infrastructure/storage"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr    string
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver and generator as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Addr
			}
			if dataDir == "" {
				dataDir = a.cfg.DataDir
			}
			_ = os.MkdirAll(dataDir, 0o755)

			// Wire providers → use cases → HTTP adapter
			uc := usecase.NewService(
				solver.NewEngine(),
				generator.NewPuzzleGenerator(),
				validator.New(),
				hint.NewSingles(),
				storage.NewFS(dataDir),
			)
			h := httpadapter.New(uc)

			mux := http.NewServeMux()
			h.Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           httpadapter.RequestLogger(log, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			log.WithField("addr", addr).WithField("data", dataDir).Info("listening")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address")
	cmd.Flags().StringVar(&dataDir, "data", "", "save directory")
	return cmd
}
