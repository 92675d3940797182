package selection

import (
	"fmt"
	"strconv"

	"github.com/omidsh/ticket-booking-platform/internal/model"
)

// ResolveSeats maps requested seat labels onto the show's seats,
// enforcing the same rules the client-side plan applies: every label
// must exist, none may be booked or blocked, labels may not repeat, and
// the request may not exceed MaxTicketsPerBooking.  On success it
// returns the matched seats in request order so callers can freeze each
// seat's own price on the booking.
func ResolveSeats(seats []model.Seat, labels []string) ([]model.Seat, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no seats requested", ErrSeatUnknown)
	}
	if len(labels) > MaxTicketsPerBooking {
		return nil, fmt.Errorf("%w: %d seats requested, limit is %d", ErrLimitExceeded, len(labels), MaxTicketsPerBooking)
	}
	byLabel := make(map[string]model.Seat, len(seats))
	for _, s := range seats {
		byLabel[s.Label()] = s
	}
	seen := make(map[string]bool, len(labels))
	out := make([]model.Seat, 0, len(labels))
	for _, raw := range labels {
		row, num, err := ParseSeatLabel(raw)
		if err != nil {
			return nil, err
		}
		key := row + strconv.Itoa(num)
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate seat %s", ErrSeatUnknown, key)
		}
		seen[key] = true
		seat, ok := byLabel[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrSeatUnknown, key)
		}
		if !seat.IsAvailable || seat.IsBlocked {
			return nil, fmt.Errorf("%w: %s", ErrSeatUnavailable, key)
		}
		out = append(out, seat)
	}
	return out, nil
}

// ResolveZones checks a requested zone breakdown against an open show's
// pricing zones: every zone must exist, quantities must be positive and
// within the zone's remaining capacity, and the total may not exceed
// MaxTicketsPerBooking.  The returned lines carry the server's price for
// each zone regardless of what the client submitted.
func ResolveZones(zones []model.PricingZone, req []model.ZoneBooking) ([]model.ZoneBooking, error) {
	if len(req) == 0 {
		return nil, fmt.Errorf("%w: no zones requested", ErrZoneUnknown)
	}
	byName := make(map[string]model.PricingZone, len(zones))
	for _, z := range zones {
		if z.AvailableCapacity == 0 && z.Capacity > 0 {
			z.AvailableCapacity = z.Capacity
		}
		byName[z.Name] = z
	}
	total := 0
	out := make([]model.ZoneBooking, 0, len(req))
	seen := make(map[string]bool, len(req))
	for _, line := range req {
		z, ok := byName[line.ZoneName]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrZoneUnknown, line.ZoneName)
		}
		if seen[line.ZoneName] {
			return nil, fmt.Errorf("%w: duplicate zone %s", ErrZoneUnknown, line.ZoneName)
		}
		seen[line.ZoneName] = true
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity for %s must be positive", ErrZoneCapacity, line.ZoneName)
		}
		if line.Quantity > z.AvailableCapacity {
			return nil, fmt.Errorf("%w: %s has %d left", ErrZoneCapacity, z.Name, z.AvailableCapacity)
		}
		total += line.Quantity
		out = append(out, model.ZoneBooking{ZoneName: z.Name, Quantity: line.Quantity, PricePerTicket: z.Price})
	}
	if total > MaxTicketsPerBooking {
		return nil, fmt.Errorf("%w: %d tickets requested, limit is %d", ErrLimitExceeded, total, MaxTicketsPerBooking)
	}
	return out, nil
}

// SeatTotal sums the per-seat prices of a resolved seat list.
func SeatTotal(seats []model.Seat) int64 {
	var total int64
	for _, s := range seats {
		total += s.Price
	}
	return total
}

// ZoneTotal sums price × quantity over resolved zone lines.
func ZoneTotal(lines []model.ZoneBooking) int64 {
	var total int64
	for _, l := range lines {
		total += l.PricePerTicket * int64(l.Quantity)
	}
	return total
}
