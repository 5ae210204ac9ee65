package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fhuszti/images-ms-go/internal/cache"
	"github.com/fhuszti/images-ms-go/internal/config"
	"github.com/fhuszti/images-ms-go/internal/db"
	"github.com/fhuszti/images-ms-go/internal/handler/api"
	"github.com/fhuszti/images-ms-go/internal/logger"
	cMiddleware "github.com/fhuszti/images-ms-go/internal/middleware"
	"github.com/fhuszti/images-ms-go/internal/port"
	"github.com/fhuszti/images-ms-go/internal/renderer"
	"github.com/fhuszti/images-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/images-ms-go/internal/storage"
	feedSvc "github.com/fhuszti/images-ms-go/internal/usecase/feed"
	imageSvc "github.com/fhuszti/images-ms-go/internal/usecase/image"
	userSvc "github.com/fhuszti/images-ms-go/internal/usecase/user"
	msuuid "github.com/fhuszti/images-ms-go/internal/uuid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	strg := initStorage(ctx, cfg)
	initBuckets(ctx, strg, []string{cfg.PublicBucket, cfg.PrivateBucket})

	imageRepo := mariadb.NewImageRepository(database.DB)
	userRepo := mariadb.NewUserRepository(database.DB)

	var ca port.Cache
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		logger.Warn(ctx, "⚠️  Redis not configured — caching is disabled")
	}

	r := initRouter(ctx)
	direct := cfg.Direct()

	registrarSvc := userSvc.NewRegistrar(userRepo, msuuid.NewUUID)
	r.Post("/auth/register", api.RegisterHandler(registrarSvc))

	authenticatorSvc := userSvc.NewAuthenticator(userRepo, cfg.JWTSecret, cfg.AccessTokenTTL)
	r.Post("/auth/login", api.LoginHandler(authenticatorSvc))

	profileSvc := userSvc.NewProfileGetter(userRepo)
	r.With(cMiddleware.WithAuth(cfg.JWTSecret)).
		Get("/users/me", api.MeHandler(profileSvc))
	r.Get("/users/profile/{id}", api.ProfileHandler(profileSvc))

	initiatorSvc := imageSvc.NewUploadInitiator(imageRepo, strg, msuuid.NewUUID, direct)
	r.With(cMiddleware.WithAuth(cfg.JWTSecret)).
		Post("/images/upload/{privacy}/generate", api.InitiateUploadHandler(initiatorSvc))

	confirmerSvc := imageSvc.NewUploadConfirmer(imageRepo, strg)
	r.With(cMiddleware.WithAuth(cfg.JWTSecret), cMiddleware.WithImageID()).
		Post("/images/upload/{id}/confirm", api.ConfirmUploadHandler(confirmerSvc))

	byteStorerSvc := imageSvc.NewByteStorer(imageRepo, strg, cfg.ChunkSize)
	r.With(cMiddleware.WithAuth(cfg.JWTSecret), cMiddleware.WithImageID()).
		Post("/images/upload/dev/{id}", api.UploadDevHandler(byteStorerSvc, direct))

	locationSvc := imageSvc.NewLocationGetter(imageRepo, strg, direct)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(cMiddleware.WithOptionalAuth(cfg.JWTSecret), cMiddleware.WithImageID()).
		Get("/images/media/{id}", api.GetImageHandler(rendererSvc, locationSvc))
	r.With(cMiddleware.WithOptionalAuth(cfg.JWTSecret), cMiddleware.WithImageID()).
		Get("/images/media/dev/{id}", api.MediaDevHandler(locationSvc, direct))

	feedListerSvc := feedSvc.NewFeedLister(imageRepo, strg, direct, cfg.PaginationLimit)
	r.With(cMiddleware.WithOptionalAuth(cfg.JWTSecret)).
		Get("/feed/latest", api.FeedLatestHandler(feedListerSvc))
	r.With(cMiddleware.WithOptionalAuth(cfg.JWTSecret)).
		Get("/feed/by_user/{creator}", api.FeedByUserHandler(feedListerSvc))

	r.Get("/health", api.HealthHandler())

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(storage.Options{
		Endpoint:          cfg.MinioEndpoint,
		AccessKey:         cfg.MinioAccessKey,
		SecretKey:         cfg.MinioSecretKey,
		UseSSL:            cfg.MinioUseSSL,
		Region:            cfg.MinioRegion,
		PublicBucket:      cfg.PublicBucket,
		PrivateBucket:     cfg.PrivateBucket,
		PublicEdgeHost:    cfg.PublicEdgeHost,
		PrivateEdgeHost:   cfg.PrivateEdgeHost,
		DownloadURLExpiry: cfg.DownloadURLExpiry,
		UploadGrantExpiry: cfg.UploadGrantExpiry,
		CallTimeout:       cfg.StorageTimeout,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBuckets(ctx context.Context, strg port.Storage, buckets []string) {
	for _, b := range buckets {
		if err := strg.InitBucket(b); err != nil {
			logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", b, err)
			os.Exit(1)
		}
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
