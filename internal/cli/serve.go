package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-dlx/internal/adapters/http"
	"svw.info/sudoku-dlx/internal/config"
	"svw.info/sudoku-dlx/internal/generator"
	"svw.info/sudoku-dlx/internal/hint"
	"svw.info/sudoku-dlx/internal/infrastructure/storage"
	"svw.info/sudoku-dlx/internal/ports"
	"svw.info/sudoku-dlx/internal/usecase"
	"svw.info/sudoku-dlx/internal/validator"
)

func newServeCmd() *cobra.Command {
	var configPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides the config file)")

	return cmd
}

// newStorage builds the configured puzzle store and a close func.
func newStorage(cfg config.StorageConfig) (ports.Storage, func() error, error) {
	switch cfg.Backend {
	case "sqlite":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = "sudoku.db"
		}
		st, err := storage.NewSQLite(dsn)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	default:
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, nil, err
		}
		return storage.NewFS(cfg.Dir), func() error { return nil }, nil
	}
}

func runServe(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	s, err := newSolver(cfg.Solver)
	if err != nil {
		return err
	}
	st, closeStorage, err := newStorage(cfg.Storage)
	if err != nil {
		return err
	}
	defer closeStorage()

	uc := usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New(), hint.NewSingles(), st)

	router := chi.NewRouter()
	router.Use(httpadapter.RequestLogger(logger))
	router.Use(solveBudget(cfg.SolveTimeout()))
	router.Mount("/", httpadapter.New(uc).Routes())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen on %s: %w", cfg.Addr, err)
		}
		close(errCh)
	}()
	logger.Info("listening", "addr", cfg.Addr, "solver", cfg.Solver, "storage", cfg.Storage.Backend)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// solveBudget caps every request's context so a pathological grid cannot pin
// a handler.
func solveBudget(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
