package entities

// RentalListing is a resident's offer to rent out a flat. FlatCode is the
// society's internal code for the flat, a free-text attribute like
// FlatNumber, not a validated reference.
type RentalListing struct {
	ID            string `json:"id" db:"id"`
	FlatNumber    string `json:"flat_number" db:"flat_number"`
	FlatCode      string `json:"flat_code" db:"flat_code"`
	ExpectedRent  int    `json:"expected_rent" db:"expected_rent"`
	ContactNumber string `json:"contact_number" db:"contact_number"`
	ListedBy      string `json:"listed_by" db:"listed_by"`
	Handled       bool   `json:"handled" db:"handled"`
}

// RentalQuery is a prospective tenant's request for a flat matching the
// given criteria.
type RentalQuery struct {
	ID             string `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Size           string `json:"size" db:"size"`
	Facing         string `json:"facing" db:"facing"`
	Budget         string `json:"budget" db:"budget"`
	FurnishingType string `json:"furnishing_type" db:"furnishing_type"`
	ContactEmail   string `json:"contact_email" db:"contact_email"`
	RequestedBy    string `json:"requested_by" db:"requested_by"`
	Handled        bool   `json:"handled" db:"handled"`
}
