package models

// TransactionFilters narrows a gateway transaction query. Both fields are
// optional; the zero value means "no filtering requested" and the gateway
// client must then omit the corresponding query parameters entirely rather
// than send empty values.
type TransactionFilters struct {
	DateRange *DateRange
	Category  string
}

// IsZero reports whether no filtering was requested
func (f TransactionFilters) IsZero() bool {
	return f.DateRange == nil && f.Category == ""
}
