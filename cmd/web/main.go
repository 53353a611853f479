package main

import (
    "context"
    "errors"
    "flag"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"
    "golang.org/x/sync/errgroup"

    "exoplanet/internal/config"
    "exoplanet/internal/predict"
    "exoplanet/internal/web"
    "exoplanet/pkg/utils"
)

func main() {
    configPath := flag.String("config", "", "YAML config file (env vars override it)")
    flag.Parse()

    cfg, err := config.Load(*configPath)
    if err != nil {
        utils.Logger("", false).Fatal("config", zap.Error(err))
    }
    gin.SetMode(cfg.Mode)

    logger := utils.Logger(cfg.LogFile, cfg.Mode == gin.DebugMode)
    defer logger.Sync()

    client := predict.NewClient(cfg.Endpoint,
        predict.WithAPIKey(cfg.APIKey),
        predict.WithTimeout(cfg.RequestTimeout()),
        predict.WithLogger(logger.Named("predict")),
    )

    srv := &http.Server{
        Addr:              cfg.Addr(),
        Handler:           web.New(cfg, client, logger).Handler(),
        ReadHeaderTimeout: 10 * time.Second,
        IdleTimeout:       time.Minute,
        ErrorLog:          zap.NewStdLog(logger),
    }

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    g, gctx := errgroup.WithContext(ctx)
    g.Go(func() error {
        logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("endpoint", cfg.Endpoint))
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            return err
        }
        return nil
    })
    g.Go(func() error {
        <-gctx.Done()
        shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
        defer cancel()
        logger.Info("shutting down")
        return srv.Shutdown(shutdownCtx)
    })

    if err := g.Wait(); err != nil {
        logger.Fatal("server stopped", zap.Error(err))
    }
}
