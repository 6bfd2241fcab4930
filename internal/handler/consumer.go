package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tareqmahmud/letterdesk/internal/model"
	"github.com/tareqmahmud/letterdesk/internal/numeral"
	"github.com/tareqmahmud/letterdesk/internal/repository"
	"github.com/tareqmahmud/letterdesk/internal/service"
)

// ConsumerHandler bundles dependencies for the consumer endpoints.
type ConsumerHandler struct {
	Consumers *repository.ConsumerRepo
	Importer  *service.Importer
}

func NewConsumerHandler(consumers *repository.ConsumerRepo, imp *service.Importer) *ConsumerHandler {
	return &ConsumerHandler{Consumers: consumers, Importer: imp}
}

// displayConsumer renders the account number in Bangla digits for the UI;
// the stored row keeps the canonical English form.
func displayConsumer(c model.Consumer) model.Consumer {
	c.AccNo = numeral.ToBangla(c.AccNo)
	return c
}

// List returns one page of consumers plus the total count, as
// {"consumers": [...], "total": n}.  page is 1-based; limit defaults to 20.
func (h *ConsumerHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	consumers, total, err := h.Consumers.List(ctx, page, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch consumers"})
	}
	return c.JSON(http.StatusOK, echo.Map{"consumers": consumers, "total": total})
}

// Create inserts one consumer.  accNo and name are required; numeral
// fields are accepted in either digit alphabet.
func (h *ConsumerHandler) Create(c echo.Context) error {
	var in model.Consumer
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(in.AccNo) == "" || strings.TrimSpace(in.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields: accNo, name"})
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Consumers.Create(ctx, in); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "consumer with this accNo already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create consumer"})
	}
	created, err := h.Consumers.GetByAccNo(ctx, in.AccNo)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load consumer"})
	}
	return c.JSON(http.StatusCreated, displayConsumer(created))
}

// Get fetches one consumer by account number, in either digit alphabet.
func (h *ConsumerHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	consumer, err := h.Consumers.GetByAccNo(ctx, c.Param("accNo"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "consumer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch consumer"})
	}
	return c.JSON(http.StatusOK, displayConsumer(consumer))
}

// Patch applies a partial update keyed by account number.
func (h *ConsumerHandler) Patch(c echo.Context) error {
	var p repository.ConsumerPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if p.Empty() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no fields to update"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	accNo := c.Param("accNo")
	if err := h.Consumers.Update(ctx, accNo, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "consumer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update consumer"})
	}
	updated, err := h.Consumers.GetByAccNo(ctx, accNo)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load consumer"})
	}
	return c.JSON(http.StatusOK, displayConsumer(updated))
}

// Delete removes a consumer by account number.
func (h *ConsumerHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Consumers.DeleteByAccNo(ctx, c.Param("accNo")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "consumer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete consumer"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "consumer deleted"})
}

type bulkConsumersReq struct {
	Consumers []model.Consumer `json:"consumers"`
}

// bulkSummary shapes the outcome of a consumer batch the way the office's
// import screen reports it.
func bulkSummary(results []service.ConsumerResult) echo.Map {
	inserted := 0
	var failures []service.ConsumerResult
	for _, r := range results {
		if r.Outcome == service.OutcomeCreated {
			inserted++
		} else {
			failures = append(failures, r)
		}
	}
	out := echo.Map{"success": true, "inserted": inserted, "failed": len(failures)}
	if len(failures) > 0 {
		out["errors"] = failures
	}
	return out
}

// Bulk inserts a batch of consumers.  Rows missing accNo or name fail
// individually; valid rows are committed atomically.
func (h *ConsumerHandler) Bulk(c echo.Context) error {
	var req bulkConsumersReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(req.Consumers) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "consumers array is required and must not be empty"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	results, err := h.Importer.BulkInsertConsumers(ctx, req.Consumers)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "bulk import failed, no records were written"})
	}
	return c.JSON(http.StatusOK, bulkSummary(results))
}

// ImportCSV accepts a raw consumer CSV file (fixed header, comma-separated,
// no quoting) and inserts the parsed rows.  Per-line parse errors and
// per-record rejections are reported with their zero-based row index.
func (h *ConsumerHandler) ImportCSV(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, 10<<20))
	if err != nil || len(body) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "csv body is required"})
	}

	rows, parseErrs, err := service.ParseConsumersCSV(string(body))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	records := make([]model.Consumer, len(rows))
	for i, row := range rows {
		records[i] = row.Consumer
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	var results []service.ConsumerResult
	if len(records) > 0 {
		results, err = h.Importer.BulkInsertConsumers(ctx, records)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "csv import failed, no records were written"})
		}
		// Report outcomes against file rows, not batch positions.
		for i := range results {
			results[i].Index = rows[results[i].Index].Index
		}
	}
	for _, pe := range parseErrs {
		results = append(results, service.ConsumerResult{
			Index: pe.Index, Outcome: service.OutcomeRejected, Reason: pe.Reason,
		})
	}
	return c.JSON(http.StatusOK, bulkSummary(results))
}
