package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/handover-backend-go/internal/api"
	"github.com/jengzang/handover-backend-go/internal/config"
	"github.com/jengzang/handover-backend-go/internal/database"
	"github.com/jengzang/handover-backend-go/internal/eventtable"
	"github.com/jengzang/handover-backend-go/internal/logging"
	"github.com/jengzang/handover-backend-go/internal/middleware"
	"github.com/jengzang/handover-backend-go/internal/observability"
	"github.com/jengzang/handover-backend-go/internal/repository"
	"github.com/jengzang/handover-backend-go/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	issue := flag.String("issue-token", "", "print a reload token for the given subject and exit")
	ttl := flag.Duration("token-ttl", 24*time.Hour, "validity of an issued token")
	flag.Parse()

	// 加载配置
	cfg := config.Load()
	log := logging.NewFromEnv()

	if *issue != "" {
		token, err := middleware.IssueToken([]byte(cfg.JWTSecret), *issue, *ttl)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to issue token:", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	if err := run(cfg, log); err != nil {
		log.Error(context.Background(), "server stopped", logging.Err(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scene, err := config.LoadScene(cfg.ScenarioPath)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics, err := observability.NewCollector(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	handover, err := service.NewHandoverService(scene, metrics)
	if err != nil {
		return err
	}

	// 初始化数据库
	db, err := database.Open(ctx, database.Config{Path: cfg.DBPath}, log)
	if err != nil {
		return err
	}
	defer db.Close()

	loader := eventtable.NewLoader(cfg.EventTableSource, cfg.EventFetchTimeout, log)
	events := service.NewEventService(loader, repository.NewEventRepository(db), metrics, log)
	if _, err := events.Reload(ctx); err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	router := api.SetupRouter(api.Deps{
		Handover:    handover,
		Events:      events,
		Metrics:     metrics,
		Logger:      log,
		RateLimiter: middleware.NewRateLimiter(ctx, cfg.RateLimit, cfg.RateWindow),
		JWTSecret:   []byte(cfg.JWTSecret),
	})

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		// 启动服务器
		log.Info(ctx, "server starting",
			logging.String("addr", cfg.Port),
			logging.Int("sites", len(scene.Sites)),
			logging.Float("corridor_length", handover.Path().TotalLength()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info(shutdownCtx, "shutting down")
	return srv.Shutdown(shutdownCtx)
}
