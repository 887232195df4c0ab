package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

type stores struct {
	profiles usecase.ProfilesRepo
	users    usecase.UsersRepo
	close    func()
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatalf("record store: %v", err)
	}
	defer st.close()

	var storage fiber.Storage
	if cfg.RedisURL != "" {
		rs, err := infra.NewRedisStorageFromURL(ctx, cfg.RedisURL, "resume-builder:session:")
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rs.Close()
		storage = rs
	} else {
		slog.Warn("REDIS_URL not set, sessions are kept in memory")
	}

	archive, err := openArchive(ctx, cfg)
	if err != nil {
		log.Fatalf("archive: %v", err)
	}

	renderer := infra.NewChromedpRenderer(cfg.ChromePath)
	h := httpadapter.NewHandler(
		usecase.NewWizard(st.profiles),
		usecase.NewRenderService(st.profiles, renderer, archive),
		usecase.NewAuthService(st.users),
		httpadapter.NewSessionStore(storage, cfg.SessionTTL, cfg.CookieSecure),
	)
	app := httpadapter.NewApp(h)

	go func() {
		slog.Info("listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
}

func setupLogging(cfg config.Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	if path, ok := cfg.SQLitePath(); ok {
		db, err := repo.OpenSQLite(path)
		if err != nil {
			return stores{}, err
		}
		slog.Info("using sqlite record store", "path", path)
		return stores{
			profiles: repo.NewSQLiteProfilesRepo(db),
			users:    repo.NewSQLiteUsersRepo(db),
			close:    func() { db.Close() },
		}, nil
	}

	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return stores{}, err
	}
	if err := migration.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return stores{}, err
	}
	slog.Info("using postgres record store")
	return stores{
		profiles: repo.NewProfilesRepo(pool),
		users:    repo.NewUsersRepo(pool),
		close:    pool.Close,
	}, nil
}

func openArchive(ctx context.Context, cfg config.Config) (usecase.Archive, error) {
	switch cfg.ArchiveBackend {
	case "fs":
		return infra.NewFSArchive(cfg.ArchiveDir), nil
	case "s3":
		return infra.NewS3Archive(ctx, infra.S3Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		})
	}
	return nil, nil
}
