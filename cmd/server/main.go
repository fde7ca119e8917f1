package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ErlanBelekov/job-portal/config"
	"github.com/ErlanBelekov/job-portal/internal/email"
	"github.com/ErlanBelekov/job-portal/internal/health"
	"github.com/ErlanBelekov/job-portal/internal/infrastructure/memory"
	"github.com/ErlanBelekov/job-portal/internal/infrastructure/postgres"
	"github.com/ErlanBelekov/job-portal/internal/infrastructure/redis"
	"github.com/ErlanBelekov/job-portal/internal/janitor"
	ctxlog "github.com/ErlanBelekov/job-portal/internal/log"
	"github.com/ErlanBelekov/job-portal/internal/metrics"
	"github.com/ErlanBelekov/job-portal/internal/password"
	"github.com/ErlanBelekov/job-portal/internal/repository"
	"github.com/ErlanBelekov/job-portal/internal/seed"
	httptransport "github.com/ErlanBelekov/job-portal/internal/transport/http"
	"github.com/ErlanBelekov/job-portal/internal/transport/http/handler"
	"github.com/ErlanBelekov/job-portal/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

// backend is what main needs from whichever storage was configured.
type backend struct {
	storage repository.Storage
	otps    repository.PasswordResetStore
	purger  repository.OTPPurger // nil when expired codes clean themselves up
	deps    map[string]health.Pinger
	closers []func()
}

func (b *backend) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	b, err := newBackend(ctx, cfg, logger)
	if err != nil {
		stop()
		log.Fatalf("storage: %v", err)
	}
	defer b.close()

	metrics.Register(prometheus.DefaultRegisterer)
	checker := health.NewChecker(b.deps, logger, prometheus.DefaultRegisterer)

	if b.purger != nil {
		j, err := janitor.New(b.purger, logger, cfg.JanitorSchedule)
		if err != nil {
			stop()
			b.close()
			log.Fatalf("janitor: %v", err)
		}
		go j.Start(ctx)
	}

	jwtKey := []byte(cfg.JWTSecret)
	sender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)

	handlers := httptransport.Handlers{
		Auth:        handler.NewAuthHandler(usecase.NewAuthUsecase(b.storage, b.otps, sender, jwtKey, cfg.OTPTTL()), logger),
		Company:     handler.NewCompanyHandler(usecase.NewCompanyUsecase(b.storage), logger),
		Job:         handler.NewJobHandler(usecase.NewJobUsecase(b.storage), logger),
		Course:      handler.NewCourseHandler(usecase.NewCourseUsecase(b.storage), logger),
		Application: handler.NewApplicationHandler(usecase.NewApplicationUsecase(b.storage), logger),
		Contact:     handler.NewContactHandler(usecase.NewContactUsecase(b.storage), logger),
	}

	if cfg.AdminAPIKey == "" {
		logger.Warn("ADMIN_API_KEY not set, catalog write routes are disabled")
	}

	srv := http.Server{
		Addr: ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, handlers, httptransport.Options{
			JWTKey:         jwtKey,
			AdminAPIKey:    cfg.AdminAPIKey,
			AllowedOrigins: cfg.CORSAllowedOrigins,
			HSTS:           cfg.Env != "local",
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

// newBackend picks Postgres when DATABASE_URL is set and the in-memory store otherwise.
// REDIS_URL, when set, moves password-reset codes to Redis.
func newBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*backend, error) {
	hasher := password.NewHasher(cfg.BcryptCost)
	b := &backend{deps: map[string]health.Pinger{}}

	if cfg.DatabaseURL == "" {
		opts := []memory.Option{memory.WithOTPTTL(cfg.OTPTTL())}
		if cfg.SeedSampleData {
			opts = append(opts, memory.WithSeed(seed.Sample(time.Now())))
		}
		store := memory.New(hasher, opts...)
		b.storage, b.otps, b.purger = store, store, store
		logger.Warn("DATABASE_URL not set, using in-memory storage; data is lost on restart")
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		b.closers = append(b.closers, pool.Close)

		if err := postgres.Migrate(ctx, pool); err != nil {
			b.close()
			return nil, fmt.Errorf("migrate: %w", err)
		}

		store := postgres.NewStorage(pool, hasher, cfg.OTPTTL())
		if cfg.SeedSampleData {
			n, err := store.SeedSampleData(ctx, seed.Sample(time.Now()))
			if err != nil {
				b.close()
				return nil, fmt.Errorf("seed sample data: %w", err)
			}
			logger.Info("sample data loaded", "inserted", n)
		}

		b.storage, b.otps, b.purger = store, store, store
		b.deps["postgres"] = store
		logger.Info("using postgres storage")
	}

	if cfg.RedisURL != "" {
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			b.close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		b.closers = append(b.closers, func() { _ = client.Close() })

		b.otps = redis.NewOTPStore(client, cfg.OTPTTL())
		b.purger = nil
		b.deps["redis"] = health.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		logger.Info("password reset codes stored in redis")
	}

	return b, nil
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
