package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"agenda/internal/server"
	"agenda/internal/shared"
	"agenda/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the agenda HTTP API",
		Run:   runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (overrides config)")
	cmd.Flags().String("store", "", "Backend: sqlite, mongo or memory (overrides config)")
	cmd.Flags().String("db", "", "SQLite database path (overrides config)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}
	if v, _ := cmd.Flags().GetString("addr"); v != "" {
		cfg.Addr = v
	}
	if v, _ := cmd.Flags().GetString("store"); v != "" {
		cfg.Store = v
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DBPath = v
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg); err != nil {
		exitErr("serve", err)
	}
}

// serve runs the API until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, cfg *shared.ServerConfig) error {
	s, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	api := &server.API{
		Service: server.NewService(s),
		Info:    server.NewInfo(cfg),
	}
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.Handler(),
	}

	log.Printf("agenda listening on %s", cfg.Addr)
	log.Printf("store: %s", cfg.Store)
	if cfg.Store == shared.StoreSQLite {
		log.Printf("db: %s", cfg.DBPath)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
