package discovery

import (
	"errors"
	"strconv"

	"recyklat-backend/internal/listings"
	"recyklat-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// GET /api/v1/market/listings?type=&category=&q= — full catalog through the
// filter chain. With no params this is the plain newest-first load.
func (h *Handlers) Search(c *fiber.Ctx) error {
	result, err := h.Service.Search(c.Context(), Filter{
		TransactionType: c.Query("type"),
		Category:        c.Query("category"),
		Query:           c.Query("q"),
	})
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Listings fetched", result)
}

// GET /api/v1/market/listings/:id — detail view. 404 for a missing id; the
// client redirects to the collection instead of rendering an error page.
func (h *Handlers) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.Error(c, "Invalid listing id", fiber.StatusBadRequest, nil)
	}
	listing, err := h.Service.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, listings.ErrNotFound) {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Listing fetched", listing)
}
