package mylistings

import (
	"errors"
	"strconv"

	"recyklat-backend/internal/listings"
	"recyklat-backend/internal/middleware"
	"recyklat-backend/internal/models"
	"recyklat-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// GET /api/v1/my/listings
func (h *Handlers) List(c *fiber.Ctx) error {
	result, err := h.Service.List(c.Context(), middleware.SessionID(c))
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	if result == nil {
		result = []models.Listing{}
	}
	return response.Success(c, "My listings fetched", result)
}

// POST /api/v1/my/listings/:id/mark-sold
func (h *Handlers) MarkSold(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, "Invalid listing id", fiber.StatusBadRequest, nil)
	}
	listing, err := h.Service.MarkSold(c.Context(), middleware.SessionID(c), id)
	if err != nil {
		return ownerError(c, err)
	}
	return response.Success(c, "Listing marked as sold", listing)
}

// DELETE /api/v1/my/listings/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, "Invalid listing id", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), middleware.SessionID(c), id); err != nil {
		return ownerError(c, err)
	}
	return response.Success(c, "Listing deleted", nil)
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func ownerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotOwner):
		return response.Error(c, err.Error(), fiber.StatusForbidden, nil)
	case errors.Is(err, listings.ErrNotFound):
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	case errors.Is(err, listings.ErrAlreadySold):
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	default:
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
}
