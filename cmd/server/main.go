package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "inkwell/internal/adapters/http"
	"inkwell/internal/adapters/http/request"
	"inkwell/internal/adapters/http/response"
	"inkwell/internal/adapters/http/validator"
	"inkwell/internal/adapters/postgres"
	redisadapter "inkwell/internal/adapters/redis"
	"inkwell/internal/adapters/ws/feed"
	"inkwell/internal/adapters/ws/subscribers"
	"inkwell/internal/config"
	"inkwell/internal/core/auth"
	"inkwell/internal/core/post"
	"inkwell/internal/domain"
	"inkwell/internal/event"
	"inkwell/internal/logger"

	"golang.org/x/sync/errgroup"
)

const feedStream = "feed:posts"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg)

	if cfg.JWTSecret == "" {
		panic("FATAL: JWT_SECRET is mandatory for Server!")
	}

	if cfg.PasswordScheme == config.PasswordSchemePlain {
		log.Warn("auth: PASSWORD_SCHEME=plain stores and compares raw passwords")
	}

	if cfg.MigrateOnStart {
		if err := postgres.Migrate(cfg.DatabaseURL); err != nil {
			log.Error("failed to migrate DB", "error", err)
			os.Exit(1)
		}
		log.Info("database migrations applied")
	}

	dbPool, err := postgres.InitDB(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to init DB", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	bus := event.New(log)

	var (
		postCache domain.PostCache
		recorder  subscribers.Recorder
		history   feed.History
	)
	if cfg.RedisURL != "" {
		redisClient, err := redisadapter.NewClient(ctx, cfg.RedisURL, log)
		if err != nil {
			log.Error("failed to init redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		registry := redisadapter.NewRegistry(redisClient, feedStream, 1000)
		postCache = redisadapter.NewPostCache(redisClient, cfg.CacheTTL)
		recorder = registry
		history = registry
	}

	userRepo := postgres.NewUserRepository(dbPool)
	postRepo := postgres.NewPostRepository(dbPool)

	authService := auth.NewService(userRepo, auth.NewPasswordScheme(cfg.PasswordScheme), cfg.JWTSecret, cfg.JWTExpiry, log)
	postService := post.NewService(postRepo, postCache, bus, log)

	feedHub := feed.NewHub(ctx, log)
	subscribers.Register(bus, feedHub, recorder, log)

	decoder := request.NewJSONDecoder()
	writer := response.NewJSONWriter(log)
	v := validator.New()

	router := httpadapter.NewRouter(cfg, log, &httpadapter.RouterDeps{
		Auth:          httpadapter.NewAuthHandler(authService, log, decoder, writer, v),
		Post:          httpadapter.NewPostHandler(postService, log, decoder, writer, v),
		Feed:          feed.NewHandler(feedHub, history, log, cfg.AllowedOrigins),
		Authenticator: authService,
		Writer:        writer,
	})

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		feedHub.Run()
		return nil
	})

	g.Go(func() error {
		log.Info("http: starting server", "address", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		feedHub.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("http: server error", "error", err)
	}

	log.Info("server stopped")
}
