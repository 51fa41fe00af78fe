package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/ports"
)

// ShowHandler handles HTTP requests for show operations.
type ShowHandler struct {
	service ports.ShowService
}

func NewShowHandler(service ports.ShowService) *ShowHandler {
	return &ShowHandler{service: service}
}

// List handles GET /shows.
//
// @Summary      List all shows
// @Tags         shows
// @Produce      json
// @Success      200  {object}  showListResponse
// @Failure      500  {object}  errorResponse
// @Router       /shows [get]
func (h *ShowHandler) List(c echo.Context) error {
	shows, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, showListResponse{Shows: shows})
}

// Get handles GET /shows/:id.
//
// @Summary      Get a show by id
// @Tags         shows
// @Produce      json
// @Param        id   path      string  true  "Show id"
// @Success      200  {object}  showResponse
// @Failure      404  {object}  errorResponse
// @Router       /shows/{id} [get]
func (h *ShowHandler) Get(c echo.Context) error {
	show, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, showResponse{Show: show})
}

// Create handles POST /shows.
//
// @Summary      Create a show
// @Tags         shows
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShowRequest  true  "Show details"
// @Success      201   {object}  showResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /shows [post]
func (h *ShowHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createShowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	show, err := h.service.Create(c.Request().Context(), ports.CreateShowInput{
		ShowDate:        req.ShowDate,
		ShowTime:        req.ShowTime,
		ShowDescription: req.ShowDescription,
		Location:        req.Location,
		BandsPlaying:    req.BandsPlaying,
		TicketPrice:     req.TicketPrice,
	}, p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, showResponse{Show: show})
}

// Update handles PUT /shows/:id. Absent fields keep their stored values.
//
// @Summary      Update a show (owner or admin)
// @Tags         shows
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Show id"
// @Param        body  body      updateShowRequest  true  "Fields to change"
// @Success      200   {object}  showResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /shows/{id} [put]
func (h *ShowHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateShowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	show, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateShowInput{
		ShowDate:        req.ShowDate,
		ShowTime:        req.ShowTime,
		ShowDescription: req.ShowDescription,
		Location:        req.Location,
		BandsPlaying:    req.BandsPlaying,
		TicketPrice:     req.TicketPrice,
	}, p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, showResponse{Show: show})
}

// Delete handles DELETE /shows/:id.
//
// @Summary      Delete a show (owner or admin)
// @Tags         shows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Show id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /shows/{id} [delete]
func (h *ShowHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), p); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Show deleted successfully"})
}
