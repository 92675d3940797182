package model

import "time"

// Role values stored in users.role and embedded in JWT claims.  USER
// accounts are created through registration; ADMIN accounts are seeded
// or promoted directly in the database and unlock the /api/admin surface.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is an account that can browse the catalog and make bookings.
// The password hash never leaves the repository layer; API responses
// carry only the public fields.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique login identifier, stored lowercase.
//  PasswordHash – bcrypt hash of the password.
//  FullName     – display name shown on bookings.
//  Phone        – optional contact number.
//  Role         – USER or ADMIN.
//  IsActive     – soft-delete flag; inactive users cannot log in.
type User struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
