package submission

import (
	"errors"
	"io"

	"recyklat-backend/internal/middleware"
	"recyklat-backend/internal/pkg/response"
	"recyklat-backend/internal/staging"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// POST /api/v1/submission/basics — multipart form with the stage-1 fields and
// an optional "image" part. Stages the draft and returns it.
func (h *Handlers) StageBasics(c *fiber.Ctx) error {
	in := BasicsInput{
		TransactionType: c.FormValue("transaction_type"),
		Title:           c.FormValue("title"),
		Material:        c.FormValue("material"),
		Weight:          c.FormValue("weight"),
		Province:        c.FormValue("province"),
		Locality:        c.FormValue("locality"),
		Phone:           c.FormValue("phone"),
	}
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return response.Error(c, "Failed to read image", fiber.StatusBadRequest, nil)
		}
		in.Image, err = io.ReadAll(f)
		f.Close()
		if err != nil {
			return response.Error(c, "Failed to read image", fiber.StatusBadRequest, nil)
		}
	}

	draft, err := h.Service.StageBasics(c.Context(), middleware.SessionID(c), in)
	if err != nil {
		return submissionError(c, err)
	}
	return response.Success(c, "Draft staged", draft)
}

// GET /api/v1/submission/draft — the stage-2 entry gate. 404 when no draft is
// staged; the client answers that by going back to stage 1.
func (h *Handlers) GetDraft(c *fiber.Ctx) error {
	draft, err := h.Service.LoadDraft(c.Context(), middleware.SessionID(c))
	if err != nil {
		return submissionError(c, err)
	}
	return response.Success(c, "Draft loaded", draft)
}

type publishRequest struct {
	WasteCode    string   `json:"waste_code"`
	Price        string   `json:"price"`
	Impurity     *int     `json:"impurity_level"`
	Form         string   `json:"form"`
	Certificates []string `json:"certificates"`
	Logistics    []string `json:"logistics"`
	PickupHours  string   `json:"pickup_hours"`
	Description  string   `json:"description"`
	HasExtraDocs bool     `json:"has_extra_docs"`
	Email        string   `json:"email"`
}

// POST /api/v1/submission/publish — merges the draft with the stage-2 fields
// and commits the listing. 201 with the persisted record on success.
func (h *Handlers) Publish(c *fiber.Ctx) error {
	var req publishRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	listing, err := h.Service.SubmitParameters(c.Context(), middleware.SessionID(c), ParametersInput{
		WasteCode:     req.WasteCode,
		Price:         req.Price,
		ImpurityLevel: req.Impurity,
		Form:          req.Form,
		Certificates:  req.Certificates,
		Logistics:     req.Logistics,
		PickupHours:   req.PickupHours,
		Description:   req.Description,
		HasExtraDocs:  req.HasExtraDocs,
		Email:         req.Email,
	})
	if err != nil {
		return submissionError(c, err)
	}
	return response.SuccessCreated(c, "Listing published", listing)
}

// POST /api/v1/submission/cancel — drops the staged draft.
func (h *Handlers) Cancel(c *fiber.Ctx) error {
	if err := h.Service.Cancel(c.Context(), middleware.SessionID(c)); err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Draft discarded", nil)
}

func submissionError(c *fiber.Ctx, err error) error {
	var mf *MissingFieldError
	switch {
	case errors.As(err, &mf),
		errors.Is(err, ErrUnknownMaterial),
		errors.Is(err, ErrUnknownProvince),
		errors.Is(err, ErrUnknownForm),
		errors.Is(err, ErrUnknownImpurity),
		errors.Is(err, ErrInvalidEmail):
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	case errors.Is(err, staging.ErrNoDraft), errors.Is(err, staging.ErrDraftVersion):
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	default:
		// Upload and insert failures surface their message so the user can
		// retry; the draft is untouched.
		return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
	}
}
