package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/omidsh/ticket-booking-platform/internal/config"
	"github.com/omidsh/ticket-booking-platform/internal/database"
	"github.com/omidsh/ticket-booking-platform/internal/handler"
	"github.com/omidsh/ticket-booking-platform/internal/payment"
	"github.com/omidsh/ticket-booking-platform/internal/queue"
	"github.com/omidsh/ticket-booking-platform/internal/repository"
	"github.com/omidsh/ticket-booking-platform/internal/router"
	"github.com/omidsh/ticket-booking-platform/internal/scheduler"
	"github.com/omidsh/ticket-booking-platform/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiter disabled")
	}

	users := repository.NewUserRepo(db)
	movies := repository.NewMovieRepo(db)
	events := repository.NewEventRepo(db)
	venues := repository.NewVenueRepo(db)
	screens := repository.NewScreenRepo(db)
	shows := repository.NewShowRepo(db)
	openShows := repository.NewOpenShowRepo(db)
	seats := repository.NewSeatRepo(db)
	bookings := repository.NewBookingRepo(db)
	reviews := repository.NewReviewRepo(db)
	banners := repository.NewBannerRepo(db)

	bookingSvc := &service.BookingService{
		DB:        db,
		Shows:     shows,
		OpenShows: openShows,
		Seats:     seats,
		Bookings:  bookings,
		Users:     users,
		Movies:    movies,
		Events:    events,
		Gateway:   payment.NewGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
	}

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(cfg, users),
		Movies:    handler.NewMovieHandler(movies),
		Events:    handler.NewEventHandler(events),
		Shows:     handler.NewShowHandler(shows, openShows),
		Seats:     handler.NewSeatHandler(seats, shows),
		Banners:   handler.NewBannerHandler(banners),
		Reviews:   handler.NewReviewHandler(reviews, users, movies, events),
		Bookings:  handler.NewBookingHandler(bookings, bookingSvc),
		Payments:  handler.NewPaymentHandler(cfg, bookingSvc),
		AdmMovies: handler.NewAdminMovieHandler(movies),
		AdmEvents: handler.NewAdminEventHandler(events),
		AdmVenues: handler.NewAdminVenueHandler(venues, screens),
		AdmBanner: handler.NewAdminBannerHandler(banners),
		AdmShows:  handler.NewAdminShowHandler(shows, openShows, screens, seats),
		Dashboard: handler.NewAdminDashboardHandler(users, movies, events, shows, bookings),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, h, cfg, rdb)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiry := &scheduler.PaymentExpiry{
		Bookings: bookingSvc,
		TTL:      cfg.PendingPaymentTTL,
		Every:    cfg.ExpirySweepEvery,
	}
	go expiry.Run(ctx)

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
