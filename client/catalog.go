package client

import (
	"context"
	"fmt"
	"net/url"
)

// Movies lists the active movie catalog.
func (c *Client) Movies(ctx context.Context) ([]Movie, error) {
	var out []Movie
	err := c.get(ctx, "/api/movies", &out)
	return out, err
}

// Movie fetches one movie.
func (c *Client) Movie(ctx context.Context, id uint64) (*Movie, error) {
	var out Movie
	if err := c.get(ctx, fmt.Sprintf("/api/movies/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Events lists the active live events.
func (c *Client) Events(ctx context.Context) ([]Event, error) {
	var out []Event
	err := c.get(ctx, "/api/events", &out)
	return out, err
}

// Event fetches one event.
func (c *Client) Event(ctx context.Context, id uint64) (*Event, error) {
	var out Event
	if err := c.get(ctx, fmt.Sprintf("/api/events/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MovieShows lists a movie's shows on one date (YYYY-MM-DD).
func (c *Client) MovieShows(ctx context.Context, movieID uint64, date string) ([]Show, error) {
	var out []Show
	err := c.get(ctx, fmt.Sprintf("/api/shows/movie/%d?date=%s", movieID, url.QueryEscape(date)), &out)
	return out, err
}

// MovieShowDates lists the upcoming dates a movie plays on.
func (c *Client) MovieShowDates(ctx context.Context, movieID uint64) ([]string, error) {
	var out []string
	err := c.get(ctx, fmt.Sprintf("/api/shows/movie/%d/dates", movieID), &out)
	return out, err
}

// EventShowsOn lists an event's seated and open shows on one date.
func (c *Client) EventShowsOn(ctx context.Context, eventID uint64, date string) (*EventShows, error) {
	var out EventShows
	if err := c.get(ctx, fmt.Sprintf("/api/shows/event/%d?date=%s", eventID, url.QueryEscape(date)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EventShowDates lists an event's upcoming dates across both show
// kinds.
func (c *Client) EventShowDates(ctx context.Context, eventID uint64) ([]string, error) {
	var out []string
	err := c.get(ctx, fmt.Sprintf("/api/shows/event/%d/dates", eventID), &out)
	return out, err
}

// Show fetches one seated show.
func (c *Client) Show(ctx context.Context, id uint64) (*Show, error) {
	var out Show
	if err := c.get(ctx, fmt.Sprintf("/api/shows/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OpenShow fetches one open-ground event show with its zones.
func (c *Client) OpenShow(ctx context.Context, id uint64) (*OpenEventShow, error) {
	var out OpenEventShow
	if err := c.get(ctx, fmt.Sprintf("/api/shows/open-event-shows/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShowSeats fetches the seat grid for a show.
func (c *Client) ShowSeats(ctx context.Context, showID uint64) ([]Seat, error) {
	var out []Seat
	err := c.get(ctx, fmt.Sprintf("/api/seats/show/%d", showID), &out)
	return out, err
}
