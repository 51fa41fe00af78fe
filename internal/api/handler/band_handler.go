package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/ports"
)

// BandHandler handles HTTP requests for band operations.
type BandHandler struct {
	service ports.BandService
}

func NewBandHandler(service ports.BandService) *BandHandler {
	return &BandHandler{service: service}
}

// List handles GET /bands.
//
// @Summary      List all bands
// @Tags         bands
// @Produce      json
// @Success      200  {object}  bandListResponse
// @Failure      500  {object}  errorResponse
// @Router       /bands [get]
func (h *BandHandler) List(c echo.Context) error {
	bands, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bandListResponse{Bands: bands})
}

// Get handles GET /bands/:id.
//
// @Summary      Get a band by id
// @Tags         bands
// @Produce      json
// @Param        id   path      string  true  "Band id"
// @Success      200  {object}  bandResponse
// @Failure      404  {object}  errorResponse
// @Router       /bands/{id} [get]
func (h *BandHandler) Get(c echo.Context) error {
	band, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bandResponse{Band: band})
}

// Create handles POST /bands.
//
// @Summary      Create a band
// @Tags         bands
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBandRequest  true  "Band details"
// @Success      201   {object}  bandResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /bands [post]
func (h *BandHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createBandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	band, err := h.service.Create(c.Request().Context(), ports.CreateBandInput{
		BandName:        req.BandName,
		Hometown:        req.Hometown,
		Genre:           req.Genre,
		YearStarted:     req.YearStarted,
		MemberNames:     req.MemberNames,
		BandPhoto:       req.BandPhoto,
		BandDescription: req.BandDescription,
	}, p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, bandResponse{Band: band})
}

// Update handles PUT /bands/:id. Absent fields keep their stored values.
//
// @Summary      Update a band (owner or admin)
// @Tags         bands
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Band id"
// @Param        body  body      updateBandRequest  true  "Fields to change"
// @Success      200   {object}  bandResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /bands/{id} [put]
func (h *BandHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateBandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	band, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateBandInput{
		BandName:        req.BandName,
		Hometown:        req.Hometown,
		Genre:           req.Genre,
		YearStarted:     req.YearStarted,
		MemberNames:     req.MemberNames,
		BandPhoto:       req.BandPhoto,
		BandDescription: req.BandDescription,
	}, p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bandResponse{Band: band})
}

// Delete handles DELETE /bands/:id.
//
// @Summary      Delete a band (owner or admin)
// @Tags         bands
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Band id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /bands/{id} [delete]
func (h *BandHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), p); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Band deleted successfully"})
}
