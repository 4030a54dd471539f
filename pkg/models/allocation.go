package models

import (
	"strings"
	"time"
)

// Allocation assigns a device to a person. Field names follow the storage
// columns because that is what dashboard clients read back.
type Allocation struct {
	Name           *string `json:"name" db:"name"`
	SerialNumber   *string `json:"service_tag_number" db:"service_tag_number"`
	AllocationDate *string `json:"allocation_date" db:"allocation_date"`
	CostCenter     *string `json:"cost_center" db:"cost_center"`
	Location       *string `json:"location" db:"location"`
	Email          *string `json:"email" db:"email"`
	Details        *string `json:"details" db:"details"`
}

// NormalizeDates trims timestamp values produced by DATE columns down to
// YYYY-MM-DD.
func (a *Allocation) NormalizeDates() {
	if a.AllocationDate == nil {
		return
	}
	value := strings.TrimSpace(*a.AllocationDate)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			value = t.Format(time.DateOnly)
			break
		}
	}
	a.AllocationDate = &value
}
