// Package submission implements the two-stage listing flow: the basics stage
// stages a draft in the per-browser store, the parameters stage merges, final
// validates and commits one listing. No partial listing is ever persisted; a
// failed step leaves the draft intact for a manual retry.
package submission

import (
	"context"
	"errors"
	"fmt"

	"recyklat-backend/internal/catalog"
	"recyklat-backend/internal/listings"
	"recyklat-backend/internal/models"
	"recyklat-backend/internal/pkg/textutil"
	"recyklat-backend/internal/staging"

	"github.com/rs/zerolog/log"
)

// ImageUploader is what the basics stage needs from the uploads service.
type ImageUploader interface {
	UploadListingImage(ctx context.Context, data []byte) (string, error)
}

var (
	ErrUnknownMaterial = errors.New("Unknown material category")
	ErrUnknownProvince = errors.New("Unknown province")
	ErrUnknownForm     = errors.New("Unknown material form")
	ErrUnknownImpurity = errors.New("Impurity level is not on the scale")
	ErrInvalidEmail    = errors.New("Invalid email format")
)

// MissingFieldError names the empty required field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

func missing(field string) error {
	return &MissingFieldError{Field: field}
}

type Service struct {
	Listings *listings.Store
	Stash    *staging.Stash
	Uploader ImageUploader
}

// BasicsInput carries the raw stage-1 form. Numeric fields arrive as typed
// text and are parsed defensively.
type BasicsInput struct {
	TransactionType string
	Title           string
	Material        string
	Weight          string
	Province        string
	Locality        string
	Phone           string
	Image           []byte
}

// StageBasics validates and sanitizes the stage-1 form, uploads the optional
// image, and stages the draft for this browser session. An upload failure
// aborts the whole stage; the image is never silently dropped.
func (s *Service) StageBasics(ctx context.Context, sessionID string, in BasicsInput) (*models.Draft, error) {
	title := textutil.SanitizeText(in.Title)
	if title == "" {
		return nil, missing("title")
	}
	if in.Material == "" {
		return nil, missing("material")
	}
	if !catalog.IsCategory(in.Material) {
		return nil, ErrUnknownMaterial
	}
	phone := textutil.FormatPhone(in.Phone)
	if phone == "" {
		return nil, missing("phone")
	}
	if in.Province == "" {
		return nil, missing("province")
	}
	if !catalog.IsProvince(in.Province) {
		return nil, ErrUnknownProvince
	}

	imageURL := ""
	if len(in.Image) > 0 {
		url, err := s.Uploader.UploadListingImage(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	draft := models.Draft{
		TransactionType: models.ParseTransactionType(in.TransactionType),
		Title:           title,
		Material:        in.Material,
		WasteCode:       catalog.WasteCodeFor(in.Material),
		WeightTonnes:    textutil.ParseDecimal(in.Weight),
		Province:        in.Province,
		Locality:        textutil.SanitizeText(in.Locality),
		Phone:           phone,
		ImageURL:        imageURL,
	}
	if err := s.Stash.SaveDraft(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	draft.Version = models.DraftVersion
	return &draft, nil
}

// LoadDraft returns the staged draft; staging.ErrNoDraft if the parameters
// stage was entered without one.
func (s *Service) LoadDraft(ctx context.Context, sessionID string) (*models.Draft, error) {
	return s.Stash.LoadDraft(ctx, sessionID)
}

// ParametersInput carries the raw stage-2 form.
type ParametersInput struct {
	WasteCode     string
	Price         string
	ImpurityLevel *int
	Form          string
	Certificates  []string
	Logistics     []string
	PickupHours   string
	Description   string
	HasExtraDocs  bool
	Email         string
}

// SubmitParameters merges the staged draft with the stage-2 form and commits
// one listing. On success the new id joins the session's ownership index and
// the draft is cleared; on insert failure the draft stays so the user can
// retry without data loss.
func (s *Service) SubmitParameters(ctx context.Context, sessionID string, in ParametersInput) (*models.Listing, error) {
	draft, err := s.Stash.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if in.Price == "" {
		return nil, missing("price")
	}
	if in.ImpurityLevel == nil {
		return nil, missing("impurity_level")
	}
	impurity, ok := models.ParseImpurityLevel(*in.ImpurityLevel)
	if !ok {
		return nil, ErrUnknownImpurity
	}
	if in.Form == "" {
		return nil, missing("form")
	}
	form, ok := models.ParseMaterialForm(in.Form)
	if !ok {
		return nil, ErrUnknownForm
	}
	email := textutil.SanitizeText(in.Email)
	if email != "" && !textutil.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	wasteCode := textutil.FormatWasteCode(in.WasteCode)
	if wasteCode == "" {
		wasteCode = textutil.FormatWasteCode(draft.WasteCode)
	}
	pickup := textutil.SanitizeText(in.PickupHours)
	if pickup == "" {
		pickup = catalog.DefaultPickupHours
	}

	listing := &models.Listing{
		TransactionType: draft.TransactionType,
		Title:           textutil.SanitizeText(draft.Title),
		Material:        draft.Material,
		WasteCode:       wasteCode,
		Form:            form,
		PricePerTonne:   textutil.ParseDecimal(in.Price),
		WeightTonnes:    draft.WeightTonnes,
		ImpurityLevel:   impurity,
		Certificates:    models.JoinTags(sanitizeTags(in.Certificates)),
		Logistics:       models.JoinTags(sanitizeTags(in.Logistics)),
		Province:        draft.Province,
		Locality:        textutil.SanitizeText(draft.Locality),
		Phone:           draft.Phone,
		Email:           email,
		ImageURL:        draft.ImageURL,
		Description:     textutil.SanitizeText(in.Description),
		PickupHours:     pickup,
		HasExtraDocs:    in.HasExtraDocs,
		Status:          models.StatusActive,
	}

	if err := s.Listings.Insert(ctx, listing); err != nil {
		return nil, err
	}

	// Bookkeeping after a successful insert must not undo it; failures here
	// are logged and the listing stands.
	if err := s.Stash.AddOwned(ctx, sessionID, listing.ID); err != nil {
		log.Warn().Err(err).Uint("listing_id", listing.ID).Msg("ownership index append failed")
	}
	if err := s.Stash.RemoveDraft(ctx, sessionID); err != nil {
		log.Warn().Err(err).Msg("draft cleanup failed")
	}
	return listing, nil
}

// Cancel drops the staged draft for this session.
func (s *Service) Cancel(ctx context.Context, sessionID string) error {
	return s.Stash.RemoveDraft(ctx, sessionID)
}

func sanitizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if clean := textutil.SanitizeText(t); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}
