package cmd

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"digitalmindset/config"
	"digitalmindset/handlers"
	"digitalmindset/routes"
	"digitalmindset/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := utils.GetLogger()
	cfg := config.AppConfig

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	gen, err := openGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	if closer, ok := gen.(io.Closer); ok {
		defer closer.Close()
	}
	svcs, err := buildServices(cfg, s, gen, logger)
	if err != nil {
		return err
	}

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, cfg.StoreDriver, cfg.LLMProvider, s.Ping, 60*time.Second)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(svcs.Tokens, svcs.Admin, svcs.Prompts, svcs.Synthesis, svcs.Ghostwriter, svcs.Mentor), cfg.AllowedOrigins())

	port := cfg.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("DigitalMindset AI running on %s (store=%s, llm=%s)", srv.Addr, cfg.StoreDriver, cfg.LLMProvider)
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		if err != nil {
			logger.Error("serve: server failed to start", zap.Error(err))
			return err
		}
	}
	logger.Sugar().Info("serve: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("serve: server forced to shutdown", zap.Error(err))
	}
	if err := s.Close(shutdownCtx); err != nil {
		logger.Warn("serve: closing store", zap.Error(err))
	}

	logger.Sugar().Info("serve: server stopped gracefully")
	return nil
}
