// Command ursa-minor serves the portfolio page.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/dhruvywuvy/ursa-minor/internal/config"
	"github.com/dhruvywuvy/ursa-minor/internal/logging"
	"github.com/dhruvywuvy/ursa-minor/internal/metrics"
	"github.com/dhruvywuvy/ursa-minor/internal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ursa-minor: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run serves the page until ctx is cancelled.
func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, logging.Format(cfg.LogFormat), os.Stdout)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	srv, err := web.New(cfg, log, web.WithMetrics(metrics.NewManager()))
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return err
	}
	return nil
}
