package models

// AllocationRequest is the payload of addResourceAllocation. The json names
// are the ones the dashboard form posts.
type AllocationRequest struct {
	Name           *string `json:"name"`
	SerialNumber   string  `json:"serialNumber" binding:"required"`
	AllocationDate *string `json:"allocationDate"`
	PO             *string `json:"po"`
	Location       *string `json:"location"`
	Email          *string `json:"email"`
	Detail         *string `json:"detail"`
	Details        *string `json:"details"`
}

// DetailsValue prefers "details" and falls back to the "detail" key the
// add form posts.
func (r AllocationRequest) DetailsValue() *string {
	return firstSet(r.Details, r.Detail)
}

type AssigneeLookupRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type SerialNumberRequest struct {
	SerialNumber string `json:"serialnumber" binding:"required"`
}

// UpdateAllocationRequest replaces every allocation field of the row with
// the given serial number. Absent optional fields are written as NULL; name
// is required so a bare serial number cannot blank the row.
type UpdateAllocationRequest struct {
	SerialNumber   string  `json:"serialnumber" binding:"required"`
	Name           *string `json:"name" binding:"required"`
	AllocationDate *string `json:"allocation_date"`
	CostCenter     *string `json:"cost_center"`
	Location       *string `json:"location"`
	Email          *string `json:"email"`
	Detail         *string `json:"detail"`
	Details        *string `json:"details"`
}

// DetailsValue prefers "details" and falls back to the older "detail" key
// still sent by the update form.
func (r UpdateAllocationRequest) DetailsValue() *string {
	return firstSet(r.Details, r.Detail)
}

func firstSet(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
