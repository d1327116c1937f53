package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hotel-frontdesk/routes"
	"hotel-frontdesk/services"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the front desk HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.cfg.RequireJWTSecret(); err != nil {
				return err
			}
			if _, err := a.desk.Bootstrap(ctx, a.seedOptions()); err != nil {
				return err
			}

			gin.SetMode(gin.ReleaseMode)
			router := routes.SetupRouter(routes.Options{
				Desk:        a.desk,
				Auth:        services.NewAuthService(a.desk, a.cfg.JWTSecret, a.cfg.TokenTTL),
				Logger:      a.log,
				CORSOrigins: a.cfg.CORSOrigins,
			})

			srv := &http.Server{
				Addr:              ":" + a.cfg.Port,
				Handler:           router,
				ReadTimeout:       10 * time.Second,
				ReadHeaderTimeout: 5 * time.Second,
				WriteTimeout:      20 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.log.Info("server starting", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(quit)
			select {
			case err := <-errCh:
				return err
			case <-quit:
			}
			a.log.Info("shutdown signal received, shutting down server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			a.log.Info("server stopped gracefully")
			return nil
		},
	}
}
