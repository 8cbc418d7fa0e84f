package entities

import "time"

// Notice is an admin-authored announcement shown to all residents.
// Notices are immutable once published.
type Notice struct {
	ID      string    `json:"id" db:"id"`
	Title   string    `json:"title" db:"title"`
	Content string    `json:"content" db:"content"`
	Date    time.Time `json:"date" db:"date"`
}
