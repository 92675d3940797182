package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omidsh/ticket-booking-platform/internal/model"
)

func seatGrid() []model.Seat {
	var seats []model.Seat
	var id uint64
	for _, row := range []string{"A", "B"} {
		for n := 1; n <= 12; n++ {
			id++
			price := int64(200)
			if row == "B" {
				price = 250
			}
			seats = append(seats, model.Seat{
				ID:          id,
				ShowID:      1,
				RowLabel:    row,
				SeatNumber:  n,
				SeatType:    model.SeatTypeRegular,
				Price:       price,
				IsAvailable: true,
			})
		}
	}
	// A5 already booked, B3 blocked.
	seats[4].IsAvailable = false
	seats[14].IsBlocked = true
	return seats
}

func TestParseSeatLabel(t *testing.T) {
	row, n, err := ParseSeatLabel("A12")
	require.NoError(t, err)
	assert.Equal(t, "A", row)
	assert.Equal(t, 12, n)

	row, n, err = ParseSeatLabel("aa3")
	require.NoError(t, err)
	assert.Equal(t, "AA", row)
	assert.Equal(t, 3, n)

	for _, bad := range []string{"", "A", "12", "A0", "A-1", "A+5", "A.1", "#1", "A1B"} {
		_, _, err := ParseSeatLabel(bad)
		assert.Error(t, err, "label %q", bad)
	}
}

func TestSeatPlanToggleSelectsAndDeselects(t *testing.T) {
	p := NewSeatPlan(seatGrid())

	p.Toggle("A", 1)
	assert.Equal(t, 1, p.Count())
	assert.Equal(t, []string{"A1"}, p.Selected())

	// Double toggle restores the previous state.
	p.Toggle("A", 1)
	assert.Zero(t, p.Count())
	assert.Empty(t, p.Selected())
}

func TestSeatPlanIgnoresUnknownUnavailableBlocked(t *testing.T) {
	p := NewSeatPlan(seatGrid())

	p.Toggle("Z", 1)  // no such seat
	p.Toggle("A", 99) // no such number
	p.Toggle("A", 5)  // already booked
	p.Toggle("B", 3)  // blocked
	assert.Zero(t, p.Count())
}

func TestSeatPlanEnforcesTicketLimit(t *testing.T) {
	p := NewSeatPlan(seatGrid())
	for n := 1; n <= 12; n++ {
		p.Toggle("B", n)
	}
	// B3 is blocked, so eleven eligible toggles landed on a ten-seat cap.
	assert.Equal(t, MaxTicketsPerBooking, p.Count())

	// Deselecting one opens a slot again.
	selected := p.Selected()
	row, n, err := ParseSeatLabel(selected[0])
	require.NoError(t, err)
	p.Toggle(row, n)
	p.Toggle("A", 1)
	assert.Equal(t, MaxTicketsPerBooking, p.Count())
}

func TestSeatPlanTotalIsPerSeatSum(t *testing.T) {
	p := NewSeatPlan(seatGrid())
	p.Toggle("A", 1) // 200
	p.Toggle("B", 2) // 250
	assert.Equal(t, int64(450), p.TotalPrice())
}

func TestSeatPlanSelectedSortsRowMajor(t *testing.T) {
	p := NewSeatPlan(seatGrid())
	p.Toggle("B", 2)
	p.Toggle("A", 10)
	p.Toggle("A", 2)
	assert.Equal(t, []string{"A2", "A10", "B2"}, p.Selected())
}

func zones() []model.PricingZone {
	return []model.PricingZone{
		{Name: "GOLD", Price: 500, Capacity: 100, AvailableCapacity: 100},
		{Name: "SILVER", Price: 300, Capacity: 100, AvailableCapacity: 3},
		{Name: "LAWN", Price: 150, Capacity: 0},
	}
}

func TestZonePlanIncrementBounds(t *testing.T) {
	p := NewZonePlan(zones())

	p.Increment("PLATINUM") // unknown zone
	assert.Zero(t, p.TotalTickets())

	for i := 0; i < 5; i++ {
		p.Increment("SILVER")
	}
	// Only three left in SILVER.
	assert.Equal(t, 3, p.Count("SILVER"))

	for i := 0; i < 20; i++ {
		p.Increment("GOLD")
	}
	assert.Equal(t, MaxTicketsPerBooking, p.TotalTickets())
}

func TestZonePlanZeroCapacityNeverIncrements(t *testing.T) {
	p := NewZonePlan(zones())
	for i := 0; i < 5; i++ {
		p.Increment("LAWN")
	}
	assert.Zero(t, p.Count("LAWN"))
}

func TestZonePlanDecrementAtZeroIsNoop(t *testing.T) {
	p := NewZonePlan(zones())
	p.Decrement("GOLD")
	assert.Zero(t, p.Count("GOLD"))

	p.Increment("GOLD")
	p.Decrement("GOLD")
	p.Decrement("GOLD")
	assert.Zero(t, p.Count("GOLD"))
}

func TestZonePlanTotalsAndBreakdown(t *testing.T) {
	p := NewZonePlan(zones())
	p.Increment("GOLD")
	p.Increment("GOLD")
	p.Increment("SILVER")
	assert.Equal(t, int64(2*500+300), p.TotalPrice())

	lines := p.Breakdown()
	require.Len(t, lines, 2)
	assert.Equal(t, model.ZoneBooking{ZoneName: "GOLD", Quantity: 2, PricePerTicket: 500}, lines[0])
	assert.Equal(t, model.ZoneBooking{ZoneName: "SILVER", Quantity: 1, PricePerTicket: 300}, lines[1])
}

func TestResolveSeats(t *testing.T) {
	grid := seatGrid()

	resolved, err := ResolveSeats(grid, []string{"A1", "B2"})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, int64(450), SeatTotal(resolved))

	_, err = ResolveSeats(grid, []string{"Z9"})
	assert.ErrorIs(t, err, ErrSeatUnknown)

	_, err = ResolveSeats(grid, []string{"A5"})
	assert.ErrorIs(t, err, ErrSeatUnavailable)

	_, err = ResolveSeats(grid, []string{"B3"})
	assert.ErrorIs(t, err, ErrSeatUnavailable)

	_, err = ResolveSeats(grid, []string{"A1", "A1"})
	assert.ErrorIs(t, err, ErrSeatUnknown)

	eleven := []string{"A1", "A2", "A3", "A4", "A6", "A7", "A8", "A9", "A10", "A11", "A12"}
	_, err = ResolveSeats(grid, eleven)
	assert.ErrorIs(t, err, ErrLimitExceeded)

	_, err = ResolveSeats(grid, nil)
	assert.Error(t, err)
}

func TestResolveZones(t *testing.T) {
	zs := zones()

	lines, err := ResolveZones(zs, []model.ZoneBooking{
		{ZoneName: "GOLD", Quantity: 2, PricePerTicket: 1}, // client price ignored
		{ZoneName: "SILVER", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2*500+300), ZoneTotal(lines))

	_, err = ResolveZones(zs, []model.ZoneBooking{{ZoneName: "PLATINUM", Quantity: 1}})
	assert.ErrorIs(t, err, ErrZoneUnknown)

	_, err = ResolveZones(zs, []model.ZoneBooking{{ZoneName: "SILVER", Quantity: 4}})
	assert.ErrorIs(t, err, ErrZoneCapacity)

	_, err = ResolveZones(zs, []model.ZoneBooking{{ZoneName: "GOLD", Quantity: 0}})
	assert.ErrorIs(t, err, ErrZoneCapacity)

	_, err = ResolveZones(zs, []model.ZoneBooking{{ZoneName: "GOLD", Quantity: 11}})
	assert.ErrorIs(t, err, ErrLimitExceeded)

	_, err = ResolveZones(zs, []model.ZoneBooking{
		{ZoneName: "GOLD", Quantity: 1},
		{ZoneName: "GOLD", Quantity: 1},
	})
	assert.ErrorIs(t, err, ErrZoneUnknown)
}
