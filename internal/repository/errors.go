// Package repository provides raw-SQL data access over MySQL.  Sentinel
// errors defined here let handlers map failures onto HTTP statuses
// without inspecting driver errors: not-found values become 404s,
// ErrSeatUnavailable becomes a 400 at checkout, ErrConflict a 409.
package repository

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrVenueNotFound    = errors.New("venue not found")
	ErrScreenNotFound   = errors.New("screen not found")
	ErrShowNotFound     = errors.New("show not found")
	ErrOpenShowNotFound = errors.New("open event show not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrBannerNotFound   = errors.New("banner not found")

	// ErrSeatUnavailable is returned when a checkout attempt loses the
	// race for a seat: the row was booked or blocked by the time the
	// reserving transaction locked it.
	ErrSeatUnavailable = errors.New("seat no longer available")

	// ErrConflict signals state that forbids the operation, such as a
	// capacity decrement below zero.
	ErrConflict = errors.New("conflict")
)
