package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/ports"
)

// VenueHandler handles HTTP requests for venue operations.
type VenueHandler struct {
	service ports.VenueService
}

func NewVenueHandler(service ports.VenueService) *VenueHandler {
	return &VenueHandler{service: service}
}

// List handles GET /venues.
//
// @Summary      List all venues
// @Tags         venues
// @Produce      json
// @Success      200  {object}  venueListResponse
// @Failure      500  {object}  errorResponse
// @Router       /venues [get]
func (h *VenueHandler) List(c echo.Context) error {
	venues, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venueListResponse{Venues: venues})
}

// Get handles GET /venues/:id.
//
// @Summary      Get a venue by id
// @Tags         venues
// @Produce      json
// @Param        id   path      string  true  "Venue id"
// @Success      200  {object}  venueResponse
// @Failure      404  {object}  errorResponse
// @Router       /venues/{id} [get]
func (h *VenueHandler) Get(c echo.Context) error {
	venue, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venueResponse{Venue: venue})
}

// Create handles POST /venues.
//
// @Summary      Create a venue
// @Tags         venues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVenueRequest  true  "Venue details"
// @Success      201   {object}  venueResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /venues [post]
func (h *VenueHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	venue, err := h.service.Create(c.Request().Context(), ports.CreateVenueInput{
		VenueName:    req.VenueName,
		Location:     req.Location,
		Capacity:     req.Capacity,
		VenueManager: req.VenueManager,
	}, p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, venueResponse{Venue: venue})
}

// Update handles PUT /venues/:id. Absent fields keep their stored values.
//
// @Summary      Update a venue (owner or admin)
// @Tags         venues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Venue id"
// @Param        body  body      updateVenueRequest  true  "Fields to change"
// @Success      200   {object}  venueResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /venues/{id} [put]
func (h *VenueHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	venue, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateVenueInput{
		VenueName:    req.VenueName,
		Location:     req.Location,
		Capacity:     req.Capacity,
		VenueManager: req.VenueManager,
	}, p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, venueResponse{Venue: venue})
}

// Delete handles DELETE /venues/:id.
//
// @Summary      Delete a venue (owner or admin)
// @Tags         venues
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Venue id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /venues/{id} [delete]
func (h *VenueHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), p); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Venue deleted successfully"})
}
