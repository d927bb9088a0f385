package mylistings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"recyklat-backend/internal/middleware"
	"recyklat-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOwnerApp(t *testing.T) (*fiber.App, *Service, string) {
	svc := setupOwnerTest(t)
	h := &Handlers{Service: svc}

	app := fiber.New()
	app.Use(middleware.BrowserSession(middleware.SessionConfig{}))
	grp := app.Group("/api/v1/my")
	grp.Get("/listings", h.List)
	grp.Post("/listings/:id/mark-sold", h.MarkSold)
	grp.Delete("/listings/:id", h.Delete)

	return app, svc, uuid.NewString()
}

func ownerRequest(sid, method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.AddCookie(&http.Cookie{Name: "recyklat.sid", Value: sid})
	return req
}

func TestListHandler_EmptyIndexIsEmptyArray(t *testing.T) {
	app, _, sid := setupOwnerApp(t)

	resp, err := app.Test(ownerRequest(sid, http.MethodGet, "/api/v1/my/listings"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Listing `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
}

func TestMarkSoldHandler(t *testing.T) {
	app, svc, sid := setupOwnerApp(t)
	l := seedOwned(t, svc, sid, "Folia")

	resp, err := app.Test(ownerRequest(sid, http.MethodPost, "/api/v1/my/listings/"+itoa(l.ID)+"/mark-sold"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A second attempt hits the terminal state.
	resp, err = app.Test(ownerRequest(sid, http.MethodPost, "/api/v1/my/listings/"+itoa(l.ID)+"/mark-sold"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMarkSoldHandler_ForeignListing(t *testing.T) {
	app, svc, sid := setupOwnerApp(t)
	l := seedOwned(t, svc, uuid.NewString(), "Cudza folia")

	resp, err := app.Test(ownerRequest(sid, http.MethodPost, "/api/v1/my/listings/"+itoa(l.ID)+"/mark-sold"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestDeleteHandler_InvalidID(t *testing.T) {
	app, _, sid := setupOwnerApp(t)

	resp, err := app.Test(ownerRequest(sid, http.MethodDelete, "/api/v1/my/listings/abc"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
