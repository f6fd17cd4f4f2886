package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/supabase-community/postgrest-go"

	"github.com/phrazzld/portico-api/internal/domain"
	"github.com/phrazzld/portico-api/internal/gateway"
)

// maxPageRows bounds an offset-only fetch. PostgREST expresses offsets as
// ranges, so a page end is always needed once an offset is set.
const maxPageRows = 10000

// DataGateway implements gateway.Data over PostgREST, translating the
// declarative filter descriptors into query-builder calls.
type DataGateway struct {
	provider *Provider
	logger   *slog.Logger
}

// NewDataGateway creates a DataGateway using the given provider.
func NewDataGateway(provider *Provider, logger *slog.Logger) *DataGateway {
	return &DataGateway{provider: provider, logger: logger}
}

var _ gateway.Data = (*DataGateway)(nil)

// Insert writes one record or a batch into table and returns the rows the
// provider reports back.
func (g *DataGateway) Insert(ctx context.Context, table string, records any, token string) ([]map[string]any, error) {
	rest, err := g.provider.Rest(token)
	if err != nil {
		return nil, err
	}

	// The PostgREST client's executor does not take a context; ctx scopes
	// logging only.
	raw, _, err := rest.From(table).
		Insert(records, false, "", "representation", "").
		Execute()
	if err != nil {
		g.logger.ErrorContext(ctx, "insert failed", "table", table, "error", err)
		return nil, gateway.WrapProvider(gateway.ErrProvider, err)
	}
	return decodeRows(raw)
}

// Fetch reads rows from table, applying params in fixed order: column
// selection, filters, ordering, limit, offset.
func (g *DataGateway) Fetch(ctx context.Context, table, token string, params *domain.QueryParams) ([]map[string]any, error) {
	if params == nil {
		params = &domain.QueryParams{}
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	rest, err := g.provider.Rest(token)
	if err != nil {
		return nil, err
	}

	columns := params.Select
	if columns == "" {
		columns = "*"
	}
	fb := rest.From(table).Select(columns, "", false)

	fb, err = applyFilters(fb, params.Filters)
	if err != nil {
		return nil, err
	}

	for _, o := range params.Order {
		fb = fb.Order(o.Column, &postgrest.OrderOpts{Ascending: o.Asc()})
	}

	switch {
	case params.Offset > 0 && params.Limit > 0:
		fb = fb.Range(params.Offset, params.Offset+params.Limit-1, "")
	case params.Offset > 0:
		fb = fb.Range(params.Offset, params.Offset+maxPageRows-1, "")
	case params.Limit > 0:
		fb = fb.Limit(params.Limit, "")
	}

	raw, _, err := fb.Execute()
	if err != nil {
		g.logger.ErrorContext(ctx, "fetch failed", "table", table, "error", err)
		return nil, gateway.WrapProvider(gateway.ErrProvider, err)
	}
	return decodeRows(raw)
}

// Update modifies rows matched by single-column equality and returns the
// updated rows.
func (g *DataGateway) Update(ctx context.Context, table string, data map[string]any, matchColumn string, matchValue any, token string) ([]map[string]any, error) {
	rest, err := g.provider.Rest(token)
	if err != nil {
		return nil, err
	}

	raw, _, err := rest.From(table).
		Update(data, "representation", "").
		Eq(matchColumn, filterValue(matchValue)).
		Execute()
	if err != nil {
		g.logger.ErrorContext(ctx, "update failed", "table", table, "match_column", matchColumn, "error", err)
		return nil, gateway.WrapProvider(gateway.ErrProvider, err)
	}
	return decodeRows(raw)
}

// Delete removes rows matched by single-column equality and returns the
// deleted rows.
func (g *DataGateway) Delete(ctx context.Context, table, matchColumn string, matchValue any, token string) ([]map[string]any, error) {
	rest, err := g.provider.Rest(token)
	if err != nil {
		return nil, err
	}

	raw, _, err := rest.From(table).
		Delete("representation", "").
		Eq(matchColumn, filterValue(matchValue)).
		Execute()
	if err != nil {
		g.logger.ErrorContext(ctx, "delete failed", "table", table, "match_column", matchColumn, "error", err)
		return nil, gateway.WrapProvider(gateway.ErrProvider, err)
	}
	return decodeRows(raw)
}

// ExecuteRPC invokes a server-side stored procedure and returns its result
// decoded from JSON where possible, or as a raw string otherwise.
func (g *DataGateway) ExecuteRPC(ctx context.Context, function string, params map[string]any, token string) (any, error) {
	rest, err := g.provider.Rest(token)
	if err != nil {
		return nil, err
	}

	if params == nil {
		params = map[string]any{}
	}
	raw := rest.Rpc(function, "", params)
	if rest.ClientError != nil {
		g.logger.ErrorContext(ctx, "rpc failed", "function", function, "error", rest.ClientError)
		return nil, gateway.WrapProvider(gateway.ErrProvider, rest.ClientError)
	}

	var result any
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		// Scalar-returning functions can produce non-JSON bodies.
		return raw, nil
	}
	return result, nil
}

// applyFilters translates the filter descriptor sequence onto the builder,
// conjunctively and in the order given. Unknown operators are rejected.
func applyFilters(fb *postgrest.FilterBuilder, filters []domain.Filter) (*postgrest.FilterBuilder, error) {
	for _, f := range filters {
		op := f.Operator
		if op == "" {
			op = domain.FilterEq
		}
		switch op {
		case domain.FilterEq:
			fb = fb.Eq(f.Column, filterValue(f.Value))
		case domain.FilterNeq:
			fb = fb.Neq(f.Column, filterValue(f.Value))
		case domain.FilterGt:
			fb = fb.Gt(f.Column, filterValue(f.Value))
		case domain.FilterLt:
			fb = fb.Lt(f.Column, filterValue(f.Value))
		case domain.FilterGte:
			fb = fb.Gte(f.Column, filterValue(f.Value))
		case domain.FilterLte:
			fb = fb.Lte(f.Column, filterValue(f.Value))
		case domain.FilterLike:
			fb = fb.Like(f.Column, filterValue(f.Value))
		case domain.FilterIlike:
			fb = fb.Ilike(f.Column, filterValue(f.Value))
		case domain.FilterIn:
			fb = fb.In(f.Column, filterValues(f.Value))
		default:
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownOperator, string(op))
		}
	}
	return fb, nil
}

// filterValue renders a JSON-decoded value the way PostgREST expects it in
// a query parameter.
func filterValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; render integers without the
		// trailing ".0" so id=eq.42 stays id=eq.42.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// filterValues renders the value list of an "in" filter.
func filterValues(v any) []string {
	if list, ok := v.([]any); ok {
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, filterValue(item))
		}
		return out
	}
	return []string{filterValue(v)}
}

// decodeRows parses a PostgREST response body into row maps. A single
// object response is wrapped into a one-row slice; an empty body means no
// rows.
func decodeRows(raw []byte) ([]map[string]any, error) {
	if len(raw) == 0 {
		return []map[string]any{}, nil
	}

	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err == nil {
		return rows, nil
	}

	var row map[string]any
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, gateway.NewError(gateway.ErrProvider, fmt.Sprintf("unexpected provider response: %v", err))
	}
	return []map[string]any{row}, nil
}
