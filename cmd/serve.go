package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campconnect/internal/api"
	"campconnect/internal/catalog"
	"campconnect/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and metrics servers",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	gin.SetMode(a.cfg.Server.Mode)

	server := api.NewServer(api.Deps{
		Catalog:     a.catalog,
		Cache:       a.cache,
		Monitor:     a.monitor,
		Agents:      a.agents,
		Impact:      a.cfg.Impact,
		CORSOrigins: a.cfg.Server.CORSOrigins,
		Log:         a.log,
	})

	servers := []*http.Server{{
		Addr:    fmt.Sprintf(":%d", a.cfg.Server.Port),
		Handler: server.Router(),
	}}
	if a.cfg.Metrics.Enabled {
		metricsRouter := gin.New()
		metricsRouter.Use(gin.Recovery())
		metricsRouter.GET(a.cfg.Metrics.Path, gin.WrapH(a.monitor.Handler()))
		servers = append(servers, &http.Server{
			Addr:    fmt.Sprintf(":%d", a.cfg.Metrics.Port),
			Handler: metricsRouter,
		})
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			a.log.WithField("addr", srv.Addr).Info("starting server")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	if a.cfg.Catalog.Watch && a.cfg.Catalog.Source == config.SourceStatic && a.cfg.Catalog.Dataset != "" {
		watcher := catalog.NewWatcher(a.catalog, a.cfg.Catalog.Dataset, a.log)
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}

	// graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("server %s shutdown: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
