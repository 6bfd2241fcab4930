package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tareqmahmud/letterdesk/internal/model"
	"github.com/tareqmahmud/letterdesk/internal/numeral"
)

// ConsumerResult is the per-record outcome of a bulk consumer insert.
// Index refers back to the input slice so callers can report which row of
// an import file failed.
type ConsumerResult struct {
	Index   int     `json:"index"`
	AccNo   string  `json:"accNo,omitempty"`
	Name    string  `json:"name,omitempty"`
	Outcome Outcome `json:"outcome"`
	Reason  string  `json:"reason,omitempty"`
}

// BulkInsertConsumers inserts a batch of consumers.  Records missing accNo
// or name are rejected individually before the transaction; all valid rows
// are written in one atomic transaction, so a constraint violation (for
// example a duplicate accNo inside the batch) rolls every row back and is
// returned as an error.  Numeral fields are normalized to English digits
// before insert.
func (im *Importer) BulkInsertConsumers(ctx context.Context, records []model.Consumer) ([]ConsumerResult, error) {
	results := make([]ConsumerResult, len(records))

	tx, err := im.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	inserted := 0
	for i, rec := range records {
		results[i] = ConsumerResult{Index: i, AccNo: rec.AccNo, Name: rec.Name}
		if rec.AccNo == "" || rec.Name == "" {
			results[i].Outcome = OutcomeRejected
			results[i].Reason = "missing required fields: accNo, name"
			continue
		}
		accNo := numeral.ToEnglish(rec.AccNo)
		results[i].AccNo = accNo
		id := rec.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO consumers (id, accNo, name, guardian, meterNo, mobile, address, tarrif) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			id, accNo, rec.Name, rec.Guardian,
			numeral.ToEnglish(rec.MeterNo), numeral.ToEnglish(rec.Mobile),
			rec.Address, rec.Tarrif); err != nil {
			return nil, err
		}
		results[i].Outcome = OutcomeCreated
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	im.Log.Info("bulk consumer insert",
		zap.Int("received", len(records)), zap.Int("inserted", inserted))
	return results, nil
}
