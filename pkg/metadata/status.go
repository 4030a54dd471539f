package metadata

import "strings"

// Filter selects inventory rows whose column contains Keyword, ignoring
// case. Inventory statuses are free text, so there is no exact match.
type Filter struct {
	Name    string
	Column  string
	Keyword string
}

var (
	Deployed      = Filter{Name: "deployed", Column: "status", Keyword: "deploy"}
	InStock       = Filter{Name: "stock", Column: "status", Keyword: "stock"}
	EndOfWarranty = Filter{Name: "eow", Column: "warranty_status", Keyword: "eow"}
)

// Pattern is the LIKE operand matched against LOWER(Column).
func (f Filter) Pattern() string {
	return "%" + strings.ToLower(f.Keyword) + "%"
}

type GroupColumn string

const (
	GroupByModel     GroupColumn = "make_model"
	GroupBySubStatus GroupColumn = "sub_status"
)

func (g GroupColumn) IsValid() bool {
	switch g {
	case GroupByModel, GroupBySubStatus:
		return true
	default:
		return false
	}
}

func (g GroupColumn) String() string {
	return string(g)
}
