package domain

import "fmt"

// FilterOperator identifies a comparison or pattern operator in a filter
// descriptor. The set matches what PostgREST exposes for row filtering.
type FilterOperator string

// Supported filter operators.
const (
	FilterEq    FilterOperator = "eq"
	FilterNeq   FilterOperator = "neq"
	FilterGt    FilterOperator = "gt"
	FilterLt    FilterOperator = "lt"
	FilterGte   FilterOperator = "gte"
	FilterLte   FilterOperator = "lte"
	FilterLike  FilterOperator = "like"
	FilterIlike FilterOperator = "ilike"
	FilterIn    FilterOperator = "in"
)

// Valid reports whether the operator is one the gateway supports.
func (op FilterOperator) Valid() bool {
	switch op {
	case FilterEq, FilterNeq, FilterGt, FilterLt, FilterGte, FilterLte,
		FilterLike, FilterIlike, FilterIn:
		return true
	}
	return false
}

// Filter is one entry of a filter descriptor: a column, an operator and a
// comparison value. Filters are applied conjunctively in the order given.
// Column existence is not validated here; unknown columns surface as
// provider errors.
type Filter struct {
	Column   string         `json:"column"`
	Operator FilterOperator `json:"operator"`
	Value    any            `json:"value"`
}

// Order is one ordering directive for a fetch. Ascending defaults to true
// when the field is absent from the request payload.
type Order struct {
	Column    string `json:"column"`
	Ascending *bool  `json:"ascending,omitempty"`
}

// Asc reports the effective sort direction.
func (o Order) Asc() bool {
	return o.Ascending == nil || *o.Ascending
}

// QueryParams describes a read query in declarative form. The data gateway
// translates it into provider query-builder calls in fixed order: column
// selection, filters, ordering, limit, offset.
type QueryParams struct {
	Select  string   `json:"select,omitempty"`
	Filters []Filter `json:"filters,omitempty"`
	Order   []Order  `json:"order,omitempty"`
	Limit   int      `json:"limit,omitempty"`
	Offset  int      `json:"offset,omitempty"`
}

// Validate checks the declarative query for malformed entries before any
// provider call is made.
func (q *QueryParams) Validate() error {
	for _, f := range q.Filters {
		if f.Column == "" {
			return fmt.Errorf("%w: filter column is required", ErrValidation)
		}
		if f.Value == nil {
			return fmt.Errorf("%w: filter value is required for column %q", ErrValidation, f.Column)
		}
		if f.Operator == "" {
			// Operator defaults to eq when omitted; nothing to check.
			continue
		}
		if !f.Operator.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownOperator, string(f.Operator))
		}
	}
	for _, o := range q.Order {
		if o.Column == "" {
			return fmt.Errorf("%w: order column is required", ErrValidation)
		}
	}
	if q.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrValidation)
	}
	if q.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative", ErrValidation)
	}
	return nil
}
