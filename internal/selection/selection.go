// Package selection implements the seat and zone selection rules shared
// by the booking client and the checkout endpoints.  A SeatPlan or
// ZonePlan is an in-memory working set: toggles and increments never
// touch the server, and nothing is reserved until the plan is handed to
// checkout.  The same bounds are re-checked server-side at order
// creation, where the database holds the authoritative availability.
package selection

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/omidsh/ticket-booking-platform/internal/model"
)

// MaxTicketsPerBooking caps a single booking at ten seats or ten zone
// tickets, whichever kind of show is being booked.
const MaxTicketsPerBooking = 10

var (
	// ErrSeatUnknown is returned when a label does not match any seat
	// of the loaded show.
	ErrSeatUnknown = errors.New("unknown seat")
	// ErrSeatUnavailable is returned for seats already booked or blocked.
	ErrSeatUnavailable = errors.New("seat unavailable")
	// ErrLimitExceeded is returned when a selection would exceed
	// MaxTicketsPerBooking.
	ErrLimitExceeded = errors.New("booking limit exceeded")
	// ErrZoneUnknown is returned when a zone name does not exist on the
	// open show.
	ErrZoneUnknown = errors.New("unknown pricing zone")
	// ErrZoneCapacity is returned when a zone cannot cover the requested
	// ticket count.
	ErrZoneCapacity = errors.New("zone capacity exceeded")
)

// ParseSeatLabel splits a customer-facing label like "A12" into its row
// letters and seat number.
func ParseSeatLabel(label string) (row string, number int, err error) {
	label = strings.TrimSpace(label)
	i := 0
	for i < len(label) && isRowLetter(label[i]) {
		i++
	}
	if i == 0 || i == len(label) || label[i] < '0' || label[i] > '9' {
		return "", 0, fmt.Errorf("invalid seat label %q", label)
	}
	n, err := strconv.Atoi(label[i:])
	if err != nil || n <= 0 {
		return "", 0, fmt.Errorf("invalid seat label %q", label)
	}
	return strings.ToUpper(label[:i]), n, nil
}

func isRowLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// SeatPlan is the selection state for a seated show.  It starts empty
// after loading the show's seat grid and mutates only through Toggle.
type SeatPlan struct {
	seats    map[string]model.Seat // all seats of the show, keyed by label
	selected map[string]model.Seat // current selection, keyed by label
}

// NewSeatPlan loads a show's seats into a fresh plan with nothing
// selected.
func NewSeatPlan(seats []model.Seat) *SeatPlan {
	p := &SeatPlan{
		seats:    make(map[string]model.Seat, len(seats)),
		selected: make(map[string]model.Seat),
	}
	for _, s := range seats {
		p.seats[s.Label()] = s
	}
	return p
}

// Toggle flips membership of the seat at row+number in the selected set.
// It is a no-op when the seat is unknown, unavailable, blocked, or when
// selecting it would push the plan past MaxTicketsPerBooking.  Toggling
// a selected seat always deselects it, so a double toggle restores the
// previous state.
func (p *SeatPlan) Toggle(row string, number int) {
	key := strings.ToUpper(row) + strconv.Itoa(number)
	if _, ok := p.selected[key]; ok {
		delete(p.selected, key)
		return
	}
	seat, ok := p.seats[key]
	if !ok || !seat.IsAvailable || seat.IsBlocked {
		return
	}
	if len(p.selected) >= MaxTicketsPerBooking {
		return
	}
	p.selected[key] = seat
}

// Count reports how many seats are currently selected.
func (p *SeatPlan) Count() int { return len(p.selected) }

// Selected returns the selected seat labels sorted row-major, the order
// they appear on screen.
func (p *SeatPlan) Selected() []string {
	labels := make([]string, 0, len(p.selected))
	for k := range p.selected {
		labels = append(labels, k)
	}
	sortLabels(labels)
	return labels
}

// TotalPrice sums the individual prices of the selected seats.  Seats in
// the same show may be priced differently, so the total is never derived
// from a base price times the count.
func (p *SeatPlan) TotalPrice() int64 {
	var total int64
	for _, s := range p.selected {
		total += s.Price
	}
	return total
}

// sortLabels orders labels by row letters first, then seat number.
func sortLabels(labels []string) {
	sort.Slice(labels, func(i, j int) bool { return labelLess(labels[i], labels[j]) })
}

func labelLess(a, b string) bool {
	ra, na, errA := ParseSeatLabel(a)
	rb, nb, errB := ParseSeatLabel(b)
	if errA != nil || errB != nil {
		return a < b
	}
	if ra != rb {
		if len(ra) != len(rb) {
			return len(ra) < len(rb) // "Z" sorts before "AA"
		}
		return ra < rb
	}
	return na < nb
}

// ZonePlan is the selection state for an open-ground show: a ticket
// count per pricing zone, bounded by each zone's remaining capacity and
// by the overall booking limit.
type ZonePlan struct {
	zones  map[string]model.PricingZone
	counts map[string]int
	order  []string // zone display order as loaded
}

// NewZonePlan loads an open show's pricing zones with all counts at
// zero.  A zone whose available capacity was never set inherits its full
// capacity, matching how zones are authored in the back office.
func NewZonePlan(zones []model.PricingZone) *ZonePlan {
	p := &ZonePlan{
		zones:  make(map[string]model.PricingZone, len(zones)),
		counts: make(map[string]int, len(zones)),
		order:  make([]string, 0, len(zones)),
	}
	for _, z := range zones {
		if z.AvailableCapacity == 0 && z.Capacity > 0 {
			// authored without an explicit available count
			z.AvailableCapacity = z.Capacity
		}
		p.zones[z.Name] = z
		p.counts[z.Name] = 0
		p.order = append(p.order, z.Name)
	}
	return p
}

// Increment adds one ticket in the named zone unless the zone is
// unknown, sold out, or the plan already holds MaxTicketsPerBooking
// tickets across all zones.
func (p *ZonePlan) Increment(name string) {
	z, ok := p.zones[name]
	if !ok {
		return
	}
	if p.counts[name] >= z.AvailableCapacity {
		return
	}
	if p.TotalTickets() >= MaxTicketsPerBooking {
		return
	}
	p.counts[name]++
}

// Decrement removes one ticket from the named zone; decrementing a zone
// already at zero is a no-op.
func (p *ZonePlan) Decrement(name string) {
	if p.counts[name] > 0 {
		p.counts[name]--
	}
}

// Count reports the tickets currently selected in one zone.
func (p *ZonePlan) Count(name string) int { return p.counts[name] }

// TotalTickets sums the selected tickets across every zone.
func (p *ZonePlan) TotalTickets() int {
	total := 0
	for _, c := range p.counts {
		total += c
	}
	return total
}

// TotalPrice sums zone price × quantity over all zones.
func (p *ZonePlan) TotalPrice() int64 {
	var total int64
	for name, c := range p.counts {
		total += p.zones[name].Price * int64(c)
	}
	return total
}

// Breakdown returns the non-empty zone lines in display order, ready to
// be submitted as a booking request.
func (p *ZonePlan) Breakdown() []model.ZoneBooking {
	out := make([]model.ZoneBooking, 0, len(p.order))
	for _, name := range p.order {
		if c := p.counts[name]; c > 0 {
			out = append(out, model.ZoneBooking{
				ZoneName:       name,
				Quantity:       c,
				PricePerTicket: p.zones[name].Price,
			})
		}
	}
	return out
}
