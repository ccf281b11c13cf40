package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"companysite/infrastructure/cache"
	"companysite/infrastructure/config"
	httpserver "companysite/infrastructure/http"
	"companysite/infrastructure/i18n"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("companysite: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "companysite",
		Short:         "Serve the company site with per-browser view state",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	config.BindFlags(cmd)
	return cmd
}

func run(cfg config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	translator, err := i18n.New(cfg.Locale)
	if err != nil {
		return err
	}
	sessions := cache.NewViewSessionCache()

	server := httpserver.NewServer(cfg.Addr, sessions, translator, nil, cfg.SessionTTL, cfg.PurgeInterval)
	if err := server.Start(); err != nil {
		return err
	}
	slog.Info("companysite listening",
		slog.String("addr", server.ListenAddr()),
		slog.String("locale", cfg.Locale),
		slog.Duration("session_ttl", cfg.SessionTTL))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		slog.Error("graceful shutdown error", slog.Any("err", err))
	}
	return nil
}
