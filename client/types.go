package client

// Wire types mirroring the service's JSON payloads.

type Movie struct {
	ID              uint64  `json:"movieId"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Genre           string  `json:"genre"`
	Language        string  `json:"language"`
	ParentalRating  string  `json:"parentalRating"`
	ReleaseDate     string  `json:"releaseDate"`
	Cast            string  `json:"cast"`
	Crew            string  `json:"crew"`
	TrailerURL      string  `json:"trailerUrl"`
	DisplayImageURL string  `json:"displayImageUrl"`
	BannerImageURL  string  `json:"bannerImageUrl"`
	Rating          float64 `json:"rating"`
	IsActive        bool    `json:"isActive"`
}

type Event struct {
	ID              uint64 `json:"eventId"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	EventDate       string `json:"eventDate"`
	EventTime       string `json:"eventTime"`
	DurationMinutes int    `json:"durationMinutes"`
	ArtistOrTeam    string `json:"artistOrTeam"`
	Language        string `json:"language"`
	AgeRestriction  string `json:"ageRestriction"`
	DisplayImageURL string `json:"displayImageUrl"`
	BannerImageURL  string `json:"bannerImageUrl"`
	IsActive        bool   `json:"isActive"`
}

type Show struct {
	ID             uint64  `json:"showId"`
	MovieID        *uint64 `json:"movieId,omitempty"`
	EventID        *uint64 `json:"eventId,omitempty"`
	VenueID        uint64  `json:"venueId"`
	ScreenID       uint64  `json:"screenId"`
	ShowDate       string  `json:"showDate"`
	ShowTime       string  `json:"showTime"`
	BasePrice      int64   `json:"basePrice"`
	TotalSeats     int     `json:"totalSeats"`
	AvailableSeats int     `json:"availableSeats"`
}

type PricingZone struct {
	Name              string `json:"name"`
	Price             int64  `json:"price"`
	Capacity          int    `json:"capacity"`
	AvailableCapacity int    `json:"availableCapacity"`
}

type OpenEventShow struct {
	ID                uint64        `json:"openShowId"`
	EventID           uint64        `json:"eventId"`
	ShowDate          string        `json:"showDate"`
	ShowTime          string        `json:"showTime"`
	PricingZones      []PricingZone `json:"pricingZones"`
	TotalCapacity     int           `json:"totalCapacity"`
	AvailableCapacity int           `json:"availableCapacity"`
}

// EventShows groups an event's shows of both kinds for one date.
type EventShows struct {
	RegularShows   []Show          `json:"regularShows"`
	OpenEventShows []OpenEventShow `json:"openEventShows"`
}

type Seat struct {
	ID          uint64 `json:"seatId"`
	ShowID      uint64 `json:"showId"`
	RowLabel    string `json:"rowLabel"`
	SeatNumber  int    `json:"seatNumber"`
	SeatType    string `json:"seatType"`
	Price       int64  `json:"price"`
	IsAvailable bool   `json:"isAvailable"`
	IsBlocked   bool   `json:"isBlocked"`
}

type ZoneBooking struct {
	ZoneName       string `json:"zoneName"`
	Quantity       int    `json:"quantity"`
	PricePerTicket int64  `json:"pricePerTicket"`
}

type BookingSeat struct {
	SeatID    uint64 `json:"seatId"`
	SeatLabel string `json:"seatLabel"`
	SeatPrice int64  `json:"seatPrice"`
}

type Booking struct {
	ID            uint64        `json:"bookingId"`
	UserID        uint64        `json:"userId"`
	ShowID        *uint64       `json:"showId,omitempty"`
	OpenShowID    *uint64       `json:"openShowId,omitempty"`
	Reference     string        `json:"bookingReference"`
	TotalSeats    int           `json:"totalSeats"`
	TotalAmount   int64         `json:"totalAmount"`
	BookingStatus string        `json:"bookingStatus"`
	PaymentStatus string        `json:"paymentStatus"`
	OrderID       string        `json:"orderId,omitempty"`
	PaymentID     string        `json:"paymentId,omitempty"`
	Seats         []BookingSeat `json:"seats,omitempty"`
	ZoneBookings  []ZoneBooking `json:"zoneBookings,omitempty"`
	BookingDate   string        `json:"bookingDate"`
}

// BookingRequest is the normalized checkout handoff: seat labels for a
// seated show or a zone breakdown for an open event, plus the
// client-computed total the server re-checks.
type BookingRequest struct {
	ShowID       uint64        `json:"showId,omitempty"`
	OpenShowID   uint64        `json:"openShowId,omitempty"`
	IsOpenEvent  bool          `json:"isOpenEvent"`
	SeatNumbers  []string      `json:"seatNumbers,omitempty"`
	ZoneBookings []ZoneBooking `json:"zoneBookings,omitempty"`
	TotalAmount  int64         `json:"totalAmount"`
}

// Order is the gateway order handed to the hosted payment widget.
type Order struct {
	OrderID   string `json:"orderId"`
	BookingID uint64 `json:"bookingId"`
	Reference string `json:"bookingReference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	KeyID     string `json:"keyId"`
}

// Banner is one homepage carousel entry.
type Banner struct {
	ID             uint64  `json:"bannerId"`
	Title          string  `json:"title"`
	Subtitle       string  `json:"subtitle"`
	MovieID        *uint64 `json:"movieId,omitempty"`
	EventID        *uint64 `json:"eventId,omitempty"`
	BannerImageURL string  `json:"bannerImageUrl"`
	DisplayOrder   int     `json:"displayOrder"`
	LinkURL        string  `json:"linkUrl"`
}

// Review is a user's rating and comment on a movie or event.
type Review struct {
	ID         uint64  `json:"reviewId"`
	UserID     uint64  `json:"userId"`
	UserName   string  `json:"userName"`
	MovieID    *uint64 `json:"movieId,omitempty"`
	EventID    *uint64 `json:"eventId,omitempty"`
	ReviewType string  `json:"reviewType"`
	Rating     float64 `json:"rating"`
	Comment    string  `json:"comment"`
	CreatedAt  string  `json:"createdAt"`
}

// ReviewRequest posts or rewrites a review; exactly one of
// MovieID/EventID is set on create.
type ReviewRequest struct {
	MovieID *uint64 `json:"movieId,omitempty"`
	EventID *uint64 `json:"eventId,omitempty"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment,omitempty"`
}
