// Package queue defines message payloads exchanged over the message broker.
package queue

// LetterLoggedEvent is published after a letter activity has been recorded.
// It carries enough for downstream consumers (audit trail, daily reports)
// without querying the database.
type LetterLoggedEvent struct {
	ActivityID    string `json:"activity_id"`
	AccountNumber string `json:"account_number"`
	ConsumerName  string `json:"consumer_name"`
	Subject       string `json:"subject"`
	LetterType    string `json:"letter_type"`
	CreatedBy     string `json:"created_by"`
	Date          string `json:"date"`
	LoggedAt      string `json:"logged_at"`
}
