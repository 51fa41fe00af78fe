package handler

import "github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"

type createBandRequest struct {
	BandName        string   `json:"bandname"        validate:"required"`
	Hometown        string   `json:"hometown"        validate:"required"`
	Genre           string   `json:"genre"           validate:"required"`
	YearStarted     int      `json:"yearstarted"     validate:"required,gt=0"`
	MemberNames     []string `json:"membernames"     validate:"required,min=1"`
	BandPhoto       string   `json:"bandphoto"`
	BandDescription string   `json:"banddescription" validate:"required"`
}

type updateBandRequest struct {
	BandName        *string   `json:"bandname"`
	Hometown        *string   `json:"hometown"`
	Genre           *string   `json:"genre"`
	YearStarted     *int      `json:"yearstarted"`
	MemberNames     *[]string `json:"membernames"`
	BandPhoto       *string   `json:"bandphoto"`
	BandDescription *string   `json:"banddescription"`
}

type bandResponse struct {
	Band *domain.Band `json:"band"`
}

type bandListResponse struct {
	Bands []*domain.Band `json:"bands"`
}
