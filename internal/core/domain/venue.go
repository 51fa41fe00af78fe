package domain

import (
	"errors"
	"time"
)

var ErrVenueNotFound = errors.New("venue not found")

// Venue is a bookable performance space. UserID records the creator and is
// the basis of the ownership check on update/delete.
type Venue struct {
	ID           string    `json:"id"`
	VenueName    string    `json:"venuename"`
	Location     string    `json:"location"`
	Capacity     int       `json:"capacity"`
	VenueManager string    `json:"venuemanager"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}
