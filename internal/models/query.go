package models

// vehicleSortColumns is the allow-list of sortable vehicle fields. Sorting
// by anything else falls back to createdAt, which keeps ordering
// deterministic and keeps client input out of the ORDER BY clause.
var vehicleSortColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"pricePerDay": "price_per_day",
	"vehicleName": "vehicle_name",
	"category":    "category",
	"location":    "location",
}

// VehicleQuery is the coerced form of the vehicle discovery parameters.
// All filters are optional and combine as a conjunction. Price bounds are
// pointers so a zero bound remains expressible; an inverted range simply
// matches nothing rather than erroring.
type VehicleQuery struct {
	Category  string   // exact match
	Location  string   // case-insensitive substring match
	MinPrice  *float64 // inclusive lower bound on pricePerDay
	MaxPrice  *float64 // inclusive upper bound on pricePerDay
	UserEmail string   // exact match; a filter, not an authorization check
	SortBy    string   // field name, default createdAt
	SortOrder string   // "asc" or "desc", default desc
	Limit     int      // positive cap on results; <= 0 means unbounded
}

// SortColumn resolves SortBy against the allow-list.
func (q VehicleQuery) SortColumn() string {
	if col, ok := vehicleSortColumns[q.SortBy]; ok {
		return col
	}
	return "created_at"
}

// Descending reports whether results should be sorted descending.
func (q VehicleQuery) Descending() bool {
	return q.SortOrder != "asc"
}
