// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/omidsh/ticket-booking-platform/internal/config"
	"github.com/omidsh/ticket-booking-platform/internal/handler"
	"github.com/omidsh/ticket-booking-platform/internal/middleware"
	"github.com/omidsh/ticket-booking-platform/internal/model"
)

// Handlers collects every handler the router registers.
type Handlers struct {
	Auth      *handler.AuthHandler
	Movies    *handler.MovieHandler
	Events    *handler.EventHandler
	Shows     *handler.ShowHandler
	Seats     *handler.SeatHandler
	Banners   *handler.BannerHandler
	Reviews   *handler.ReviewHandler
	Bookings  *handler.BookingHandler
	Payments  *handler.PaymentHandler
	AdmMovies *handler.AdminMovieHandler
	AdmEvents *handler.AdminEventHandler
	AdmVenues *handler.AdminVenueHandler
	AdmBanner *handler.AdminBannerHandler
	AdmShows  *handler.AdminShowHandler
	Dashboard *handler.AdminDashboardHandler
}

// Register mounts the full API surface: public catalog routes (cached
// and rate limited), authenticated booking/payment routes and the
// ADMIN-only back office.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	api := e.Group("/api", limiter)

	// Auth.
	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.GET("/profile", h.Auth.Profile, middleware.JWTAuth(cfg.JWTSecret))

	// Public catalog, cached.
	catalog := api.Group("", cache)
	catalog.GET("/movies", h.Movies.List)
	catalog.GET("/movies/:id", h.Movies.Get)
	catalog.GET("/events", h.Events.List)
	catalog.GET("/events/:id", h.Events.Get)
	catalog.GET("/shows/movie/:id", h.Shows.ByMovie)
	catalog.GET("/shows/movie/:id/dates", h.Shows.MovieDates)
	catalog.GET("/shows/event/:id", h.Shows.ByEvent)
	catalog.GET("/shows/event/:id/dates", h.Shows.EventDates)
	catalog.GET("/shows/open-event-shows/:id", h.Shows.GetOpen)
	catalog.GET("/shows/:id", h.Shows.Get)
	catalog.GET("/seats/show/:id", h.Seats.ByShow)
	catalog.GET("/banners", h.Banners.List)
	catalog.GET("/banners/:id", h.Banners.Get)

	// Reviews mutate often enough to stay out of the response cache.
	api.GET("/reviews/movie/:id", h.Reviews.ByMovie)
	api.GET("/reviews/movie/:id/rating", h.Reviews.MovieRating)
	api.GET("/reviews/event/:id", h.Reviews.ByEvent)
	api.GET("/reviews/event/:id/rating", h.Reviews.EventRating)

	// Authenticated booking and payment flows.
	user := api.Group("", middleware.JWTAuth(cfg.JWTSecret))
	user.POST("/bookings", h.Bookings.Create)
	user.GET("/bookings/my-bookings", h.Bookings.MyBookings)
	user.GET("/bookings/:id", h.Bookings.Get)
	user.POST("/bookings/:id/cancel", h.Bookings.Cancel)
	user.POST("/payments/create-order", h.Payments.CreateOrder)
	user.POST("/payments/verify", h.Payments.Verify)
	user.POST("/payments/cancel/:bookingId", h.Payments.Cancel)
	user.POST("/reviews", h.Reviews.Create)
	user.PUT("/reviews/:id", h.Reviews.Update)
	user.DELETE("/reviews/:id", h.Reviews.Delete)

	// Admin back office.
	admin := api.Group("/admin", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireRole(model.RoleAdmin))

	admin.GET("/movies", h.AdmMovies.List)
	admin.GET("/movies/:id", h.AdmMovies.Get)
	admin.POST("/movies", h.AdmMovies.Create)
	admin.PUT("/movies/:id", h.AdmMovies.Update)
	admin.PUT("/movies/:id/soft-delete", h.AdmMovies.SoftDelete)
	admin.PUT("/movies/:id/activate", h.AdmMovies.Activate)
	admin.DELETE("/movies/:id", h.AdmMovies.SoftDelete)

	admin.GET("/events", h.AdmEvents.List)
	admin.GET("/events/:id", h.AdmEvents.Get)
	admin.POST("/events", h.AdmEvents.Create)
	admin.PUT("/events/:id", h.AdmEvents.Update)
	admin.PUT("/events/:id/soft-delete", h.AdmEvents.SoftDelete)
	admin.PUT("/events/:id/activate", h.AdmEvents.Activate)
	admin.DELETE("/events/:id", h.AdmEvents.SoftDelete)

	admin.GET("/banners", h.AdmBanner.List)
	admin.POST("/banners", h.AdmBanner.Create)
	admin.PUT("/banners/:id", h.AdmBanner.Update)
	admin.PUT("/banners/:id/soft-delete", h.AdmBanner.SoftDelete)
	admin.PUT("/banners/:id/activate", h.AdmBanner.Activate)
	admin.DELETE("/banners/:id", h.AdmBanner.SoftDelete)

	admin.GET("/venues", h.AdmVenues.List)
	admin.GET("/venues/:id", h.AdmVenues.Get)
	admin.POST("/venues", h.AdmVenues.Create)
	admin.PUT("/venues/:id", h.AdmVenues.Update)
	admin.PUT("/venues/:id/soft-delete", h.AdmVenues.SoftDelete)
	admin.PUT("/venues/:id/activate", h.AdmVenues.Activate)
	admin.POST("/venues/:id/screens", h.AdmVenues.CreateScreen)
	admin.PUT("/screens/:screenId", h.AdmVenues.UpdateScreen)
	admin.PUT("/screens/:screenId/soft-delete", h.AdmVenues.DeactivateScreen)

	admin.GET("/shows", h.AdmShows.List)
	admin.POST("/shows", h.AdmShows.Create)
	admin.PUT("/shows/:id", h.AdmShows.Update)
	admin.PUT("/shows/:id/soft-delete", h.AdmShows.SoftDelete)
	admin.PUT("/shows/:id/activate", h.AdmShows.Activate)
	admin.POST("/shows/:id/generate-seats", h.AdmShows.GenerateSeats)

	admin.GET("/open-event-shows", h.AdmShows.ListOpen)
	admin.POST("/open-event-shows", h.AdmShows.CreateOpen)
	admin.PUT("/open-event-shows/:id", h.AdmShows.UpdateOpen)
	admin.PUT("/open-event-shows/:id/soft-delete", h.AdmShows.SoftDeleteOpen)
	admin.PUT("/open-event-shows/:id/activate", h.AdmShows.ActivateOpen)

	admin.GET("/users", h.Dashboard.ListUsers)
	admin.GET("/bookings", h.Dashboard.ListBookings)
	admin.GET("/dashboard/stats", h.Dashboard.Stats)
}
