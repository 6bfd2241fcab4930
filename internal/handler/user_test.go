package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tareqmahmud/letterdesk/internal/model"
	"github.com/tareqmahmud/letterdesk/internal/repository"
	"github.com/tareqmahmud/letterdesk/internal/service"
)

func newUserHandler(t *testing.T) *UserHandler {
	t.Helper()
	db := newTestDB(t)
	return NewUserHandler(repository.NewUserRepo(db), service.NewImporter(db, nil, testLogger()))
}

func TestUserCRUD(t *testing.T) {
	h := newUserHandler(t)
	e := echo.New()

	c, rec := newRequest(e, http.MethodPost, "/v1/users",
		`{"id": "u1", "email": "Rahim@Office.gov.bd", "role": "admin"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	assert.Equal(t, "rahim@office.gov.bd", created["email"])
	assert.Equal(t, model.RoleAdmin, created["role"])
	assert.Equal(t, model.StatusActive, created["status"])

	c, rec = newRequest(e, http.MethodGet, "/v1/users/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newRequest(e, http.MethodPatch, "/v1/users/u1", `{"status": "inactive"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	require.NoError(t, h.Patch(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.StatusInactive, decodeBody(t, rec)["status"])

	c, rec = newRequest(e, http.MethodDelete, "/v1/users/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newRequest(e, http.MethodGet, "/v1/users/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserCreateConflict(t *testing.T) {
	h := newUserHandler(t)
	e := echo.New()

	body := `{"id": "u1", "email": "a@office.gov.bd"}`
	c, rec := newRequest(e, http.MethodPost, "/v1/users", body)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newRequest(e, http.MethodPost, "/v1/users", body)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUserByEmail(t *testing.T) {
	h := newUserHandler(t)
	e := echo.New()

	c, rec := newRequest(e, http.MethodPost, "/v1/users", `{"id": "u1", "email": "a@office.gov.bd"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newRequest(e, http.MethodPost, "/v1/users/by-email", `{"email": "A@office.gov.bd"}`)
	require.NoError(t, h.ByEmail(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", decodeBody(t, rec)["id"])

	c, rec = newRequest(e, http.MethodPost, "/v1/users/by-email", `{"email": ""}`)
	require.NoError(t, h.ByEmail(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newRequest(e, http.MethodPost, "/v1/users/by-email", `{"email": "nobody@office.gov.bd"}`)
	require.NoError(t, h.ByEmail(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserBulk(t *testing.T) {
	h := newUserHandler(t)
	e := echo.New()

	c, rec := newRequest(e, http.MethodPost, "/v1/users/bulk",
		`{"users": [
			{"id": "u1", "email": "a@office.gov.bd"},
			{"id": "", "email": "broken@office.gov.bd"}
		]}`)
	require.NoError(t, h.Bulk(c))
	require.Equal(t, http.StatusOK, rec.Code)

	out := decodeBody(t, rec)
	raw, err := json.Marshal(out["results"])
	require.NoError(t, err)
	var results []service.UserResult
	require.NoError(t, json.Unmarshal(raw, &results))
	require.Len(t, results, 2)
	assert.Equal(t, service.OutcomeCreated, results[0].Outcome)
	assert.Equal(t, service.OutcomeRejected, results[1].Outcome)

	c, rec = newRequest(e, http.MethodPost, "/v1/users/bulk", `{"users": []}`)
	require.NoError(t, h.Bulk(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
