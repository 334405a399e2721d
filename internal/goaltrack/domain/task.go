package domain

import "time"

// Task is a user-owned unit of work. DepartmentalGoal optionally references
// an Objective from the catalog; the reference is loosely typed and not
// enforced as a foreign key.
type Task struct {
	ID               string
	Title            string
	Description      string
	Completed        bool
	Date             time.Time
	DepartmentalGoal string // optional Objective ID, empty when unlinked
	UserID           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
