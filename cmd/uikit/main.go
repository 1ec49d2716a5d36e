package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/uikit/internal/board"
	"github.com/vango-dev/uikit/internal/config"
	"github.com/vango-dev/uikit/internal/handlers"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "uikit",
		Short:        "Render the uikit demo kanban board",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newRenderCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo board over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := newLogger(os.Stdout, cfg.LogLevel)
			slog.SetDefault(logger)

			b, err := loadBoard(cfg.BoardFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, b, logger)
		},
	}
}

func newRenderCmd() *cobra.Command {
	var boardFile, output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the board page as static HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(boardFile)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := board.Page(b).Render(cmd.Context(), w); err != nil {
				return fmt.Errorf("render board: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&boardFile, "board", "", "board YAML file (default: built-in sample)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadBoard(path string) (*board.Board, error) {
	if path == "" {
		return board.Sample(), nil
	}
	b, err := board.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load board %s: %w", path, err)
	}
	return b, nil
}

func serve(ctx context.Context, cfg *config.Config, b *board.Board, logger *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := handlers.New(b, logger, reg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.Routes(logger, reg, reg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "environment", cfg.Environment, "board", b.ID)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
