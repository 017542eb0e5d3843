package models

import "time"

// Scheme is one government support programme from the catalogue.
type Scheme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Benefit     string `json:"benefit"`
	Description string `json:"description"`
}

// SchemeEnrollment is the single scheme a user has currently applied to.
type SchemeEnrollment struct {
	Scheme
	AppliedAt time.Time `json:"appliedAt"`
}
