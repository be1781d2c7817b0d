package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-api/internal/api/metrics"
	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

// SweetHandler handles HTTP requests for catalog and stock operations.
type SweetHandler struct {
	service ports.SweetService
}

func NewSweetHandler(service ports.SweetService) *SweetHandler {
	return &SweetHandler{service: service}
}

// List handles GET /api/sweets.
//
// @Summary      List all sweets, newest first
// @Tags         sweets
// @Produce      json
// @Success      200  {array}   sweetResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c echo.Context) error {
	sweets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSweetListResponse(sweets))
}

// Search handles GET /api/sweets/search.
//
// @Summary      Search sweets by name and/or category
// @Tags         sweets
// @Produce      json
// @Param        name      query     string  false  "Case-insensitive name substring"
// @Param        category  query     string  false  "Exact category"
// @Success      200       {array}   sweetResponse
// @Failure      500       {object}  errorResponse
// @Router       /api/sweets/search [get]
func (h *SweetHandler) Search(c echo.Context) error {
	filter := ports.SearchSweetsFilter{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
	}

	sweets, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSweetListResponse(sweets))
}

// Create handles POST /api/sweets.
//
// @Summary      Add a sweet to the catalog
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSweetRequest  true  "Sweet details"
// @Success      201   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/sweets [post]
func (h *SweetHandler) Create(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req createSweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sweet, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.SweetsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toSweetResponse(sweet))
}

// Update handles PUT /api/sweets/:id.
//
// @Summary      Update fields of a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Sweet id"
// @Param        body  body      updateSweetRequest  true  "Fields to update"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/sweets/{id} [put]
func (h *SweetHandler) Update(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req updateSweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sweet, err := h.service.Update(c.Request().Context(), c.Param("id"), toPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Delete handles DELETE /api/sweets/:id (admin only).
//
// @Summary      Remove a sweet from the catalog
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Sweet id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sweets/{id} [delete]
func (h *SweetHandler) Delete(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "sweet deleted"})
}

// Purchase handles POST /api/sweets/:id/purchase.
//
// @Summary      Purchase one unit of a sweet
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Sweet id"
// @Success      200  {object}  sweetResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	sweet, err := h.service.Purchase(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			metrics.PurchasesTotal.WithLabelValues("out_of_stock").Inc()
		}
		return err
	}

	metrics.PurchasesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Restock handles POST /api/sweets/:id/restock (admin only).
//
// @Summary      Add stock to a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Sweet id"
// @Param        body  body      restockRequest  true  "Restock amount"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req restockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sweet, err := h.service.Restock(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return err
	}

	metrics.RestocksTotal.Inc()
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}
