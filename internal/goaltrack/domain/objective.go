package domain

import "time"

// Objective is a departmental objective tasks may link to. The catalog is
// read-only from this service's perspective; records are synced in from an
// externally owned source at startup.
type Objective struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
