package handler

import "github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"

type createShowRequest struct {
	ShowDate        string   `json:"showdate"        validate:"required,datetime=2006-01-02"`
	ShowTime        string   `json:"showtime"        validate:"required,datetime=15:04:05"`
	ShowDescription string   `json:"showdescription" validate:"required"`
	Location        string   `json:"location"        validate:"required"`
	BandsPlaying    []string `json:"bandsplaying"    validate:"required,min=1"`
	TicketPrice     float64  `json:"ticketprice"     validate:"required,gt=0"`
}

type updateShowRequest struct {
	ShowDate        *string   `json:"showdate"        validate:"omitempty,datetime=2006-01-02"`
	ShowTime        *string   `json:"showtime"        validate:"omitempty,datetime=15:04:05"`
	ShowDescription *string   `json:"showdescription"`
	Location        *string   `json:"location"`
	BandsPlaying    *[]string `json:"bandsplaying"`
	TicketPrice     *float64  `json:"ticketprice"     validate:"omitempty,gt=0"`
}

type showResponse struct {
	Show *domain.Show `json:"show"`
}

type showListResponse struct {
	Shows []*domain.Show `json:"shows"`
}
