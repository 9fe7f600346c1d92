package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/campusdev/student-affairs-portal/internal/config"
	"github.com/campusdev/student-affairs-portal/internal/database"
	"github.com/campusdev/student-affairs-portal/internal/handler"
	"github.com/campusdev/student-affairs-portal/internal/middleware"
	"github.com/campusdev/student-affairs-portal/internal/queue"
	"github.com/campusdev/student-affairs-portal/internal/repository"
	"github.com/campusdev/student-affairs-portal/internal/router"
)

func main() {
	// .env is optional; real deployments inject variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.MigrationsPath); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	// Redis backs the response cache and rate limiter. A nil client
	// disables both, the API still serves requests.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	facilities := repository.NewFacilityRepo(db)
	bookings := repository.NewBookingRepo(db)
	concerns := repository.NewConcernRepo(db)
	warnings := repository.NewWarningRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	facilityH := handler.NewFacilityHandler(facilities, bookings)
	studentBookingH := handler.NewStudentBookingHandler(bookings, facilities)
	adminBookingH := handler.NewAdminBookingHandler(bookings)
	studentConcernH := handler.NewStudentConcernHandler(concerns)
	adminConcernH := handler.NewAdminConcernHandler(concerns)
	warningH := handler.NewWarningHandler(warnings, users)
	reportH := handler.NewReportHandler(bookings, concerns, warnings)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, facilityH, cache)
	router.RegisterStudent(e, cfg.JWTSecret, studentBookingH, studentConcernH, warningH)
	router.RegisterAdmin(e, cfg.JWTSecret, adminBookingH, adminConcernH, warningH, reportH)

	// Booking decisions are mirrored to an audit log through RabbitMQ.
	// The consumer retries its connection in the background and never
	// blocks startup.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
