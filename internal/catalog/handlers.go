package catalog

import (
	"recyklat-backend/internal/models"
	"recyklat-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Reference GET /api/v1/catalog — all the fixed lists the forms are built
// from, in one payload.
func Reference(c *fiber.Ctx) error {
	return response.Success(c, "Catalog fetched", fiber.Map{
		"categories":           Categories,
		"browse_filters":       BrowseFilters,
		"provinces":            Provinces,
		"forms":                models.MaterialForms(),
		"impurity_levels":      models.ImpurityLevels(),
		"certificate_tags":     CertificateTags,
		"logistics_tags":       LogisticsTags,
		"default_pickup_hours": DefaultPickupHours,
	})
}
