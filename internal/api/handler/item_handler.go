package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsdesk/backoffice/internal/core/ports"
)

// ItemHandler handles HTTP requests for the item master, mirroring the
// employee endpoint verb for verb.
type ItemHandler struct {
	service ports.ItemService
}

func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

type itemRequest struct {
	ID       uint   `json:"id"`
	Name     string `json:"name" validate:"required"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// List handles GET /api/item-master.
//
// @Summary      List items
// @Tags         items
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}  domain.Item
// @Router       /api/item-master [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/item-master.
//
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      itemRequest  true  "Item details"
// @Success      200   {object}  domain.Item
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/item-master [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), ports.ItemInput{
		Name:     req.Name,
		SKU:      req.SKU,
		Quantity: req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, created)
}

// Update handles PUT /api/item-master.
//
// @Summary      Update an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      itemRequest  true  "Item details including id"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/item-master [put]
func (h *ItemHandler) Update(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.service.Update(c.Request().Context(), req.ID, ports.ItemInput{
		Name:     req.Name,
		SKU:      req.SKU,
		Quantity: req.Quantity,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Delete handles DELETE /api/item-master.
//
// @Summary      Delete an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      deleteRequest  true  "Row id"
// @Success      200   {object}  successResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/item-master [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.service.Delete(c.Request().Context(), req.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
