package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tareqmahmud/letterdesk/internal/letters"
)

// LetterHandler serves the fixed letter-type catalog and composes letter
// previews.  Logging a generated letter is a separate call to the
// activities resource.
type LetterHandler struct{}

func NewLetterHandler() *LetterHandler { return &LetterHandler{} }

// Types lists the letter catalog in menu order.
func (h *LetterHandler) Types(c echo.Context) error {
	return c.JSON(http.StatusOK, letters.Catalog())
}

type previewReq struct {
	Type   letters.Type   `json:"type"`
	Fields letters.Fields `json:"fields"`
}

// Preview composes the subject and body for a letter type with the given
// field values.  Nothing is persisted.
func (h *LetterHandler) Preview(c echo.Context) error {
	var req previewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	letter, err := letters.Compose(req.Type, req.Fields)
	if err != nil {
		if errors.Is(err, letters.ErrUnknownType) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown letter type"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compose letter"})
	}
	return c.JSON(http.StatusOK, letter)
}
