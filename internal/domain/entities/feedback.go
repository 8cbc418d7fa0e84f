package entities

import "time"

// FeedbackItem captures a resident's feedback to the society office.
// Immutable once submitted.
type FeedbackItem struct {
	ID          string    `json:"id" db:"id"`
	FlatNumber  string    `json:"flat_number" db:"flat_number"`
	Message     string    `json:"message" db:"message"`
	SubmittedBy string    `json:"submitted_by" db:"submitted_by"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
}
