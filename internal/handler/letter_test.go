package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tareqmahmud/letterdesk/internal/letters"
)

func TestLetterTypes(t *testing.T) {
	h := NewLetterHandler()
	e := echo.New()

	c, rec := newRequest(e, http.MethodGet, "/v1/letter-types", "")
	require.NoError(t, h.Types(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var infos []letters.Info
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &infos))
	assert.Len(t, infos, 14)
	assert.Equal(t, letters.TypeDue, infos[0].Type)
}

func TestLetterPreview(t *testing.T) {
	h := NewLetterHandler()
	e := echo.New()

	c, rec := newRequest(e, http.MethodPost, "/v1/letters/preview",
		`{"type": "due", "fields": {"accNo": "12345", "dueAmount": "5000", "dueMonths": "3"}}`)
	require.NoError(t, h.Preview(c))
	require.Equal(t, http.StatusOK, rec.Code)

	out := decodeBody(t, rec)
	body, _ := out["body"].(string)
	assert.Contains(t, body, "১২৩৪৫")
	assert.Contains(t, body, "৫০০০")
}

func TestLetterPreviewUnknownType(t *testing.T) {
	h := NewLetterHandler()
	e := echo.New()

	c, rec := newRequest(e, http.MethodPost, "/v1/letters/preview", `{"type": "eviction"}`)
	require.NoError(t, h.Preview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
