package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/config"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/observability"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/webui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, "web")
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	srv := webui.NewServer(cfg.Web, cfg.Client, logger)

	go func() {
		logger.Info("listening", zap.String("addr", cfg.Web.Addr()), zap.String("api", cfg.Web.APIURL))
		if err := srv.App.Listen(cfg.Web.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))

	_ = srv.App.Shutdown()
}
