package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/eventflow/internal/config"
	"github.com/alexanderramin/eventflow/internal/httpserver"
	"github.com/alexanderramin/eventflow/internal/intelligence"
	"github.com/alexanderramin/eventflow/internal/llm"
)

func newServeCmd() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the EventFlow HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return serve(cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")

	return cmd
}

func serve(cfg config.Config) error {
	log := newLogger()

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.Provider.LogCalls {
		observer = llm.NewSlogObserver(log)
	}
	client := llm.NewGeminiClient(cfg.Provider, observer)

	srv := httpserver.NewServer(
		intelligence.NewChatService(client),
		intelligence.NewPlanService(client),
		log,
	)

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if cfg.Provider.APIKey == "" {
		log.Warn("GEMINI_API_KEY is not set; all assistant calls will fail")
	}
	log.Info("eventflow listening",
		"addr", cfg.Server.Addr,
		"model", cfg.Provider.Model)

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(ctx)
}

// newLogger builds a text logger on interactive terminals and a JSON
// logger otherwise.
func newLogger() *slog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}
