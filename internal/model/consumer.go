package model

// Consumer is a utility customer identified by account number.  AccNo,
// MeterNo and Mobile are stored in English digits (the canonical form);
// conversion to Bangla digits happens at the handler boundary, never in
// the database.  The JSON tags keep the field names the billing office's
// existing import files and clients use, including the historical
// "tarrif" spelling.
type Consumer struct {
	ID        string `json:"id"`
	AccNo     string `json:"accNo"`
	Name      string `json:"name"`
	Guardian  string `json:"guardian"`
	MeterNo   string `json:"meterNo"`
	Mobile    string `json:"mobile"`
	Address   string `json:"address"`
	Tarrif    string `json:"tarrif"`
	CreatedAt string `json:"created_at"`
}
