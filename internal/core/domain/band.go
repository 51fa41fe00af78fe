package domain

import (
	"errors"
	"time"
)

var ErrBandNotFound = errors.New("band not found")

// Band is a performing act managed through the booking dashboard.
type Band struct {
	ID              string    `json:"id"`
	BandName        string    `json:"bandname"`
	Hometown        string    `json:"hometown"`
	Genre           string    `json:"genre"`
	YearStarted     int       `json:"yearstarted"`
	MemberNames     []string  `json:"membernames"`
	BandPhoto       string    `json:"bandphoto"`
	BandDescription string    `json:"banddescription"`
	UserID          string    `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
}
