package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobsignal/jobsignal/jobmod"
	"github.com/jobsignal/jobsignal/jobmod/cachestore"
	"github.com/jobsignal/jobsignal/jobmod/companystore"
	"github.com/jobsignal/jobsignal/jobmod/content"
	"github.com/jobsignal/jobsignal/jobmod/countstore"
	"github.com/jobsignal/jobsignal/jobmod/engine"
	"github.com/jobsignal/jobsignal/jobmod/flagstore"
	"github.com/jobsignal/jobsignal/jobmod/postingstore"
	"github.com/jobsignal/jobsignal/util"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	slogecho "github.com/samber/slog-echo"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type Server struct {
	logger *slog.Logger
	engine *jobmod.Engine
	echo   *echo.Echo
	httpd  *http.Server
}

type Config struct {
	Logger          *slog.Logger
	RedisURL        string
	Bind            string
	ModelHost       string
	ModelAPIKey     string
	ModelName       string
	ModelRateLimit  int
	SlackWebhookURL string
}

func NewServer(db *gorm.DB, config Config) (*Server, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	postings, err := postingstore.NewGormPostingStore(db)
	if err != nil {
		return nil, fmt.Errorf("initializing posting store: %v", err)
	}
	companies, err := companystore.NewGormCompanyStore(db)
	if err != nil {
		return nil, fmt.Errorf("initializing company store: %v", err)
	}

	var counters countstore.CountStore
	var cache cachestore.CacheStore
	var flags flagstore.FlagStore
	if config.RedisURL != "" {
		// check redis connection
		opt, err := redis.ParseURL(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis URL: %v", err)
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.TODO()).Result(); err != nil {
			return nil, fmt.Errorf("redis ping failed: %v", err)
		}

		cnt, err := countstore.NewRedisCountStore(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("initializing redis countstore: %v", err)
		}
		counters = cnt

		csh, err := cachestore.NewRedisCacheStore(config.RedisURL, 30*time.Minute)
		if err != nil {
			return nil, fmt.Errorf("initializing redis cachestore: %v", err)
		}
		cache = csh

		flg, err := flagstore.NewRedisFlagStore(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("initializing redis flagstore: %v", err)
		}
		flags = flg
	} else {
		counters = countstore.NewMemCountStore()
		cache = cachestore.NewMemCacheStore(5_000, 30*time.Minute)
		flags = flagstore.NewMemFlagStore()
	}

	var analyzer engine.ContentAnalyzer
	if config.ModelAPIKey != "" {
		mc := content.NewMessagesAPIClient(config.ModelHost, config.ModelAPIKey, config.ModelName)
		mc.Limiter = rate.NewLimiter(rate.Limit(config.ModelRateLimit), 1)
		analyzer = content.NewAnalyzer(mc, content.DefaultPromptConfig(), logger)
	} else {
		logger.Warn("no model API key configured; all submissions will degrade to manual review")
		analyzer = &engine.StubAnalyzer{Err: content.ErrAnalysisUnavailable}
	}

	var notifier engine.Notifier
	if config.SlackWebhookURL != "" {
		notifier = &engine.SlackNotifier{
			SlackWebhookURL: config.SlackWebhookURL,
			Client:          util.RobustHTTPClient(),
		}
	}

	eng := jobmod.Engine{
		Logger:    logger,
		Policy:    jobmod.DefaultScoringPolicy(),
		Checks:    jobmod.DefaultCheckSet(),
		Postings:  postings,
		Companies: companies,
		Analyzer:  analyzer,
		Counters:  counters,
		Flags:     flags,
		Cache:     cache,
		Notifier:  notifier,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))

	srv := &Server{
		logger: logger,
		engine: &eng,
		echo:   e,
	}
	srv.httpd = &http.Server{
		Handler:        srv,
		Addr:           config.Bind,
		WriteTimeout:   1 * time.Minute,
		ReadTimeout:    1 * time.Minute,
		MaxHeaderBytes: 1 * (1024 * 1024),
	}
	e.HTTPErrorHandler = srv.errorHandler

	e.GET("/_health", srv.HandleHealthCheck)
	e.POST("/verify", srv.HandleVerifyJob)
	e.GET("/companies/:companyID/flags", srv.HandleCompanyFlags)
	e.POST("/companies/:companyID/purge-cache", srv.HandlePurgeCompanyCache)

	return srv, nil
}

func (srv *Server) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	srv.echo.ServeHTTP(rw, req)
}

func (srv *Server) RunAPI() error {
	slog.Info("starting server", "bind", srv.httpd.Addr)
	go func() {
		if err := srv.httpd.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				slog.Error("HTTP server shutting down unexpectedly", "err", err)
			}
		}
	}()

	// Wait for a signal to exit.
	quit := make(chan struct{})
	exitSignals := make(chan os.Signal, 1)
	signal.Notify(exitSignals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-exitSignals
		slog.Info("received OS exit signal", "signal", sig)

		if err := srv.Shutdown(); err != nil {
			slog.Error("HTTP server shutdown error", "err", err)
		}

		close(quit)
	}()
	<-quit
	slog.Info("graceful shutdown complete")
	return nil
}

func (srv *Server) RunMetrics(listen string) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(listen, nil)
}

func (srv *Server) Shutdown() error {
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.httpd.Shutdown(ctx)
}
