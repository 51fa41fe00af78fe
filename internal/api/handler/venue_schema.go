package handler

import "github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"

// messageResponse is the envelope for delete confirmations.
type messageResponse struct {
	Message string `json:"message"`
}

type createVenueRequest struct {
	VenueName    string `json:"venuename"    validate:"required"`
	Location     string `json:"location"     validate:"required"`
	Capacity     int    `json:"capacity"     validate:"required,gt=0"`
	VenueManager string `json:"venuemanager" validate:"required"`
}

// updateVenueRequest distinguishes absent fields from zero values with
// pointers so partial updates keep stored data intact.
type updateVenueRequest struct {
	VenueName    *string `json:"venuename"`
	Location     *string `json:"location"`
	Capacity     *int    `json:"capacity"`
	VenueManager *string `json:"venuemanager"`
}

type venueResponse struct {
	Venue *domain.Venue `json:"venue"`
}

type venueListResponse struct {
	Venues []*domain.Venue `json:"venues"`
}
