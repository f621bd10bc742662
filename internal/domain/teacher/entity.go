package teacher

import "time"

// Teacher is a directory entry for a worker on the campus payroll.
// Profiles, rates and contract terms live in the payroll domain.
type Teacher struct {
	ID        string
	Name      string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
