package models

// Device is a row of the inventory table. The table is maintained outside
// this service, so every attribute except the serial number may be NULL.
type Device struct {
	SerialNumber   string  `json:"service_tag_number" db:"service_tag_number"`
	Status         *string `json:"status" db:"status"`
	SubStatus      *string `json:"sub_status" db:"sub_status"`
	OrderedBy      *string `json:"ordered_by" db:"ordered_by"`
	MakeModel      *string `json:"make_model" db:"make_model"`
	PO             *string `json:"po" db:"po"`
	Ownership      *string `json:"ownership" db:"ownership"`
	DeployedDate   *string `json:"deployed_date" db:"deployed_date"`
	Location       *string `json:"location" db:"location"`
	Received       *string `json:"received" db:"received"`
	WarrantyEnd    *string `json:"warranty_end" db:"warranty_end"`
	WarrantyDate   *string `json:"warranty_date" db:"warranty_date"`
	WarrantyStatus *string `json:"warranty_status" db:"warranty_status"`
	Year           *int64  `json:"year" db:"year"`
}

// DeviceCount is the body of every count endpoint.
type DeviceCount struct {
	Count int64 `json:"count"`
}

type FlatGroupCount struct {
	Key   *string `db:"group_key"`
	Count int64   `db:"count"`
}
