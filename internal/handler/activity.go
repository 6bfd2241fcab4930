package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tareqmahmud/letterdesk/internal/middleware"
	"github.com/tareqmahmud/letterdesk/internal/model"
	"github.com/tareqmahmud/letterdesk/internal/queue"
	"github.com/tareqmahmud/letterdesk/internal/repository"
	"github.com/tareqmahmud/letterdesk/internal/service"
)

// ActivityHandler bundles dependencies for the letter activity log.
// Events may be nil when no broker is configured.
type ActivityHandler struct {
	Activities *repository.ActivityRepo
	Events     *service.EventPublisher
	Log        *zap.Logger
}

func NewActivityHandler(acts *repository.ActivityRepo, events *service.EventPublisher, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{Activities: acts, Events: events, Log: log}
}

// List returns activities, newest first, filterable by createdBy, date and
// limit.  Staff use createdBy=<own email> for their personal log; admins
// omit it for the global log.
func (h *ActivityHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := reqCtx(c)
	defer cancel()

	acts, err := h.Activities.List(ctx, repository.ActivityFilter{
		CreatedBy: c.QueryParam("createdBy"),
		Date:      c.QueryParam("date"),
		Limit:     limit,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch activities"})
	}
	return c.JSON(http.StatusOK, acts)
}

// Create logs one generated letter.  A letter for the same account, subject
// and calendar day is logged at most once: when an identical key already
// exists the stored record is returned with duplicate=true and nothing is
// inserted.  The check is read-then-write without a lock, so two truly
// concurrent submissions can both pass it; the office's single-writer
// usage makes that acceptable.
func (h *ActivityHandler) Create(c echo.Context) error {
	var in model.LetterActivity
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if in.AccountNumber == "" || in.ConsumerName == "" || in.Subject == "" ||
		in.CreatedBy == "" || in.Date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	existing, err := h.Activities.FindByKey(ctx, in.AccountNumber, in.Subject, in.Date)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"duplicate": true, "activity": existing})
	case !errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check for duplicates"})
	}

	in.ID = uuid.NewString()
	if err := h.Activities.Create(ctx, in); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create activity"})
	}
	created, err := h.Activities.GetByID(ctx, in.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load activity"})
	}

	if h.Events != nil {
		// Best effort; the activity is already persisted.
		if err := h.Events.PublishLetterLogged(ctx, queue.LetterLoggedEvent{
			ActivityID:    created.ID,
			AccountNumber: created.AccountNumber,
			ConsumerName:  created.ConsumerName,
			Subject:       created.Subject,
			LetterType:    created.LetterType,
			CreatedBy:     created.CreatedBy,
			Date:          created.Date,
			LoggedAt:      time.Now().UTC().Format(time.RFC3339),
		}); err != nil {
			h.Log.Warn("letter.logged publish failed", zap.String("activity_id", created.ID))
		}
	}
	return c.JSON(http.StatusCreated, created)
}

// Get returns one activity by id.
func (h *ActivityHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Activities.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "activity not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch activity"})
	}
	return c.JSON(http.StatusOK, a)
}

// Delete removes an activity.  Only the staff member who logged it or an
// admin may delete it.
func (h *ActivityHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Activities.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "activity not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch activity"})
	}
	if middleware.Role(c) != model.RoleAdmin && middleware.Email(c) != a.CreatedBy {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if err := h.Activities.Delete(ctx, a.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete activity"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
