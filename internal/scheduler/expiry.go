// Package scheduler runs the background jobs of the booking platform.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/omidsh/ticket-booking-platform/internal/service"
)

// PaymentExpiry sweeps pending bookings whose payment never arrived and
// returns their tickets to the pool.
type PaymentExpiry struct {
	Bookings *service.BookingService
	TTL      time.Duration
	Every    time.Duration
}

// Run loops until ctx is cancelled, sweeping once per interval. Each
// sweep cancels pending bookings older than TTL; failures are logged and
// retried on the next tick.
func (w *PaymentExpiry) Run(ctx context.Context) {
	every := w.Every
	if every <= 0 {
		every = time.Minute
	}
	ttl := w.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	log.Printf("payment-expiry: sweeping every %s, ttl %s", every, ttl)
	for {
		select {
		case <-ctx.Done():
			log.Println("payment-expiry: stopped")
			return
		case <-ticker.C:
			n, err := w.Bookings.ExpirePending(ctx, ttl)
			if err != nil {
				log.Printf("payment-expiry: sweep failed: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("payment-expiry: expired %d pending booking(s)", n)
			}
		}
	}
}
