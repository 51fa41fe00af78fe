package domain

import (
	"errors"
	"time"
)

var ErrShowNotFound = errors.New("show not found")

// Show is a scheduled performance. ShowDate and ShowTime are kept as
// formatted strings (YYYY-MM-DD and HH:MM:SS) validated at the boundary;
// listings sort lexicographically on them, which matches chronological order.
type Show struct {
	ID              string    `json:"id"`
	ShowDate        string    `json:"showdate"`
	ShowTime        string    `json:"showtime"`
	ShowDescription string    `json:"showdescription"`
	Location        string    `json:"location"`
	BandsPlaying    []string  `json:"bandsplaying"`
	TicketPrice     float64   `json:"ticketprice"`
	UserID          string    `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
}
