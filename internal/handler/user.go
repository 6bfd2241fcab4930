// Package handler contains the REST resource handlers.  Handlers are a
// thin translation layer: parse and validate the request, delegate to
// repositories and services, map store errors to status codes.  Numeral
// normalization happens here at the consumer boundary.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tareqmahmud/letterdesk/internal/model"
	"github.com/tareqmahmud/letterdesk/internal/repository"
	"github.com/tareqmahmud/letterdesk/internal/service"
)

const dbTimeout = 5 * time.Second

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// UserHandler bundles dependencies for the user management endpoints.
type UserHandler struct {
	Users    *repository.UserRepo
	Importer *service.Importer
}

func NewUserHandler(users *repository.UserRepo, imp *service.Importer) *UserHandler {
	return &UserHandler{Users: users, Importer: imp}
}

// List returns all staff users, newest first.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch users"})
	}
	return c.JSON(http.StatusOK, users)
}

// Create inserts one user.  id and email are required; role and status
// default to "user"/"active".
func (h *UserHandler) Create(c echo.Context) error {
	var u model.User
	if err := c.Bind(&u); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if u.ID == "" || strings.TrimSpace(u.Email) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields: id, email"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "user already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create user"})
	}
	created, err := h.Users.GetByID(ctx, u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load user"})
	}
	return c.JSON(http.StatusCreated, created)
}

// Get returns one user by id.
func (h *UserHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch user"})
	}
	return c.JSON(http.StatusOK, u)
}

// Patch applies a partial update (email/role/status) to one user.
func (h *UserHandler) Patch(c echo.Context) error {
	var p repository.UserPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if p.Empty() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no fields to update"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id := c.Param("id")
	if err := h.Users.Update(ctx, id, p); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		case errors.Is(err, repository.ErrDuplicate):
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update user"})
		}
	}
	updated, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load user"})
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a user permanently.
func (h *UserHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Users.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete user"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

type byEmailReq struct {
	Email string `json:"email"`
}

// ByEmail looks up a user by email.  The login flow calls this after the
// identity provider has verified the credential, to resolve role/status.
func (h *UserHandler) ByEmail(c echo.Context) error {
	var req byEmailReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch user"})
	}
	return c.JSON(http.StatusOK, u)
}

type bulkUsersReq struct {
	Users []service.UserRecord `json:"users"`
}

// Bulk upserts a batch of users and best-effort mirrors new accounts into
// the identity provider.  The endpoint returns 200 with one result per
// input record even when individual records were rejected or their
// identity sync failed; only a local transaction failure fails the call.
func (h *UserHandler) Bulk(c echo.Context) error {
	var req bulkUsersReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(req.Users) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no users provided"})
	}

	// The identity phase makes one remote call per new user, so the
	// request budget scales with batch size.
	ctx, cancel := context.WithTimeout(c.Request().Context(),
		dbTimeout+time.Duration(len(req.Users))*10*time.Second)
	defer cancel()

	results, err := h.Importer.BulkUpsertUsers(ctx, req.Users)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "bulk upsert failed, no records were written"})
	}
	return c.JSON(http.StatusOK, echo.Map{"results": results})
}
