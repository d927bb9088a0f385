// Package app builds the Fiber application: global middleware, backing-store
// clients and route registration.
package app

import (
	"time"

	"recyklat-backend/internal/catalog"
	"recyklat-backend/internal/config"
	"recyklat-backend/internal/database"
	"recyklat-backend/internal/discovery"
	"recyklat-backend/internal/health"
	"recyklat-backend/internal/listings"
	"recyklat-backend/internal/middleware"
	"recyklat-backend/internal/mylistings"
	"recyklat-backend/internal/staging"
	"recyklat-backend/internal/submission"
	"recyklat-backend/internal/uploads"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp wires the whole service. DB and Redis may come back nil when
// unconfigured (e.g. some tests); feature routes are only mounted when both
// stores are available.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
		BodyLimit:             20 * 1024 * 1024, // uncompressed photos arrive here
	})

	app.Use(middleware.CORS(middleware.CORSConfig{AllowedSuffix: cfg.FrontendSuffix}))
	app.Use(middleware.BrowserSession(middleware.SessionConfig{IsProduction: cfg.IsProduction()}))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opt)
	}

	healthHandlers := &health.Handlers{DB: db, Rdb: rdb, StartedAt: time.Now()}
	app.Get("/health/json", healthHandlers.JSON)

	app.Get("/api/v1/catalog", catalog.Reference)

	if db != nil && rdb != nil {
		store := &listings.Store{DB: db}
		stash := &staging.Stash{Store: staging.NewRedisStore(rdb)}
		uploadService := &uploads.Service{
			Storage: &uploads.SupabaseStorage{
				BaseURL:   cfg.SupabaseURL,
				SecretKey: cfg.SupabaseSecretKey,
			},
		}

		subHandlers := &submission.Handlers{Service: &submission.Service{
			Listings: store,
			Stash:    stash,
			Uploader: uploadService,
		}}
		subGroup := app.Group("/api/v1/submission")
		subGroup.Post("/basics", subHandlers.StageBasics)
		subGroup.Get("/draft", subHandlers.GetDraft)
		subGroup.Post("/publish", subHandlers.Publish)
		subGroup.Post("/cancel", subHandlers.Cancel)

		discHandlers := &discovery.Handlers{Service: &discovery.Service{Listings: store}}
		marketGroup := app.Group("/api/v1/market")
		marketGroup.Get("/listings", discHandlers.Search)
		marketGroup.Get("/listings/:id", discHandlers.GetByID)

		myHandlers := &mylistings.Handlers{Service: &mylistings.Service{
			Listings: store,
			Stash:    stash,
		}}
		myGroup := app.Group("/api/v1/my")
		myGroup.Get("/listings", myHandlers.List)
		myGroup.Post("/listings/:id/mark-sold", myHandlers.MarkSold)
		myGroup.Delete("/listings/:id", myHandlers.Delete)
	}

	return app, db, rdb, nil
}
