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

	"github.com/gin-gonic/gin"
	flag "github.com/spf13/pflag"

	"github.com/weiawesome/identifier/internal/config"
	idgrpc "github.com/weiawesome/identifier/internal/grpc"
	"github.com/weiawesome/identifier/internal/handler"
	"github.com/weiawesome/identifier/internal/registry"
	"github.com/weiawesome/identifier/internal/service"
	pkglog "github.com/weiawesome/identifier/pkg/log"
)

func main() {
	configFile := flag.StringP("config", "c", "", "path to a config file; defaults to ./config/config.yaml if present")
	flag.Parse()

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if *configFile != "" {
		cfg, err = config.LoadFile(*configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "id-service",
	})
	logger := pkglog.L()

	logger.Info().Msg("starting id-service")

	// Build identifier kinds
	kinds, err := registry.FromConfig(cfg.Kinds)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build identifier kinds")
	}
	idService := service.NewIDService(kinds)
	for _, k := range idService.Kinds(context.Background()) {
		logger.Info().
			Str(pkglog.FieldKind, k.Name).
			Str(pkglog.FieldStrategy, k.Strategy).
			Int(pkglog.FieldWidth, k.Width).
			Msg("identifier kind registered")
	}

	// Start gRPC server
	grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)
	grpcServer, err := idgrpc.StartGRPCServer(grpcAddr, idService, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start grpc server")
	}

	// Start HTTP server
	var httpServer *http.Server
	if cfg.HTTP.Enabled {
		gin.SetMode(gin.ReleaseMode)
		r := gin.New()
		r.Use(gin.Recovery(), pkglog.GinMiddleware(logger))
		r.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		handler.NewHandler(idService).RegisterRoutes(r)

		httpServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
			Handler: r,
		}
		go func() {
			logger.Info().Str("addr", httpServer.Addr).Msg("http server listening")
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("http server error")
			}
		}()
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down id-service")
	if httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("http server shutdown error")
		}
		cancel()
	}
	grpcServer.GracefulStop()
	logger.Info().Msg("id-service stopped")
}
