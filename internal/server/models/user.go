// Package models defines the persisted record types used by the server
// repositories and services.
package models

import "time"

// User is an identity record. PasswordDigest is never serialized outward.
type User struct {
	ID             int       `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"-"`
}
