package entities

import "time"

// ServiceRequest is a resident's request for a maintenance visit.
// Handled flips false to true exactly once via an admin action and never
// reverts; requests are never deleted.
type ServiceRequest struct {
	ID          string    `json:"id" db:"id"`
	FlatNumber  string    `json:"flat_number" db:"flat_number"`
	ServiceType string    `json:"service_type" db:"service_type"`
	Date        time.Time `json:"date" db:"date"`
	TimeSlot    string    `json:"time_slot" db:"time_slot"`
	RequestedBy string    `json:"requested_by" db:"requested_by"`
	Handled     bool      `json:"handled" db:"handled"`
}
