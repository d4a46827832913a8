package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/localsquares/board-rotation/internal/config"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

type application struct {
	cfg    *config.Config
	router *gin.Engine
	logger log.Logger
}

func newApplication(cfg *config.Config, router *gin.Engine, logger log.Logger) *application {
	return &application{cfg: cfg, router: router, logger: logger}
}

func serveCmd(configPath *string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			gin.SetMode(gin.ReleaseMode)
			app, cleanup, err := wireApp(ctx, config.ConfigPath(*configPath))
			if err != nil {
				return fmt.Errorf("init app: %w", err)
			}
			defer cleanup()

			if addr == "" {
				addr = app.cfg.Server.Addr
			}
			return app.run(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")
	return cmd
}

func (a *application) run(ctx context.Context, addr string) error {
	helper := log.NewHelper(a.logger)
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		helper.Infow("msg", "http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	helper.Infow("msg", "http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
