package model

import "encoding/json"

// LetterActivity records one generated letter.  FormData is an opaque
// snapshot of the form values at generation time; it is stored as raw JSON
// text and round-tripped verbatim, so it is kept as json.RawMessage rather
// than a typed struct.
//
// AccountNumber and CreatedBy are informal foreign keys (Consumer.AccNo,
// User.Email); they are resolved by value lookup and not enforced by the
// database.
type LetterActivity struct {
	ID            string          `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	ConsumerName  string          `json:"consumerName"`
	Subject       string          `json:"subject"`
	CreatedBy     string          `json:"createdBy"`
	Date          string          `json:"date"` // calendar day, YYYY-MM-DD
	LetterType    string          `json:"letterType"`
	FormData      json.RawMessage `json:"formData,omitempty"`
	CreatedAt     string          `json:"created_at"`
}
