package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ketankishore27/inventory-management/internal/config"
	"github.com/ketankishore27/inventory-management/internal/core/container"
	"github.com/ketankishore27/inventory-management/internal/core/logger"
	"github.com/ketankishore27/inventory-management/internal/core/routes"
	"github.com/ketankishore27/inventory-management/internal/database"
	"github.com/ketankishore27/inventory-management/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API server.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

var PingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the inventory database is reachable.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		db, err := database.NewPostgresConnection(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "database %s on %s:%d is reachable\n", cfg.DB.Name, cfg.DB.Host, cfg.DB.Port)
		return nil
	},
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "inventory",
		Short:        "IT asset inventory dashboard service",
		SilenceUsage: true,
		RunE:         ServeCmd.RunE,
	}
	rootCmd.AddCommand(ServeCmd, PingCmd)

	return rootCmd
}

func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresConnection(ctx, cfg.DB)
	if err != nil {
		log.Error("Unable to connect to the database", zap.Error(err))
		return err
	}
	defer db.Close()
	log.Info("Connected to the database successfully!", zap.String("host", cfg.DB.Host), zap.String("database", cfg.DB.Name))

	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewDBStatsCollector(db, cfg.DB.Name),
		)
	}

	c := container.NewAppContainer(db, repository.DialectPostgres, cfg.DB.Schema, log)
	router := routes.NewRouter(c, routes.Options{
		RequestTimeout: cfg.HTTP.RequestTimeout,
		Registry:       registry,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down server")
	case err := <-errCh:
		if err != nil {
			log.Error("Server stopped", zap.Error(err))
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	return nil
}
