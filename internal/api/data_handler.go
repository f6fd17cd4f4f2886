package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/portico-api/internal/api/shared"
	"github.com/phrazzld/portico-api/internal/domain"
	"github.com/phrazzld/portico-api/internal/gateway"
)

// DataHandler handles row-level data API requests.
type DataHandler struct {
	data   gateway.Data
	logger *slog.Logger
}

// NewDataHandler creates a new DataHandler with the given dependencies.
func NewDataHandler(data gateway.Data, logger *slog.Logger) *DataHandler {
	return &DataHandler{data: data, logger: logger}
}

// Insert handles POST /data.
func (h *DataHandler) Insert(w http.ResponseWriter, r *http.Request) {
	var req InsertRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rows, err := h.data.Insert(r.Context(), req.Table, req.Data, shared.GetAccessToken(r.Context()))
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{"data": rows})
}

// Fetch handles GET /data. The table comes from the query string; an
// optional id narrows the fetch to that row via an equality filter, and
// select/limit/offset pass through to the query.
func (h *DataHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	table := r.URL.Query().Get("table")
	if table == "" {
		RespondWithError(w, r, http.StatusBadRequest, "table is required")
		return
	}

	params := &domain.QueryParams{
		Select: r.URL.Query().Get("select"),
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}
	if id := r.URL.Query().Get("id"); id != "" {
		params.Filters = append(params.Filters, domain.Filter{
			Column:   "id",
			Operator: domain.FilterEq,
			Value:    id,
		})
	}

	rows, err := h.data.Fetch(r.Context(), table, shared.GetAccessToken(r.Context()), params)
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{"data": rows})
}

// Update handles PUT /data.
func (h *DataHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	column, value, ok := matchTarget(req.MatchColumn, req.MatchValue, req.ID)
	if !ok {
		RespondWithError(w, r, http.StatusBadRequest, "id or match_column/match_value is required")
		return
	}

	rows, err := h.data.Update(r.Context(), req.Table, req.Data, column, value, shared.GetAccessToken(r.Context()))
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{"data": rows})
}

// Delete handles DELETE /data.
func (h *DataHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	column, value, ok := matchTarget(req.MatchColumn, req.MatchValue, req.ID)
	if !ok {
		RespondWithError(w, r, http.StatusBadRequest, "id or match_column/match_value is required")
		return
	}

	rows, err := h.data.Delete(r.Context(), req.Table, column, value, shared.GetAccessToken(r.Context()))
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{"data": rows})
}

// Query handles POST /data/query: the richer declarative fetch.
func (h *DataHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rows, err := h.data.Fetch(r.Context(), req.Table, shared.GetAccessToken(r.Context()), req.QueryParams)
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{"data": rows})
}

// ExecuteRPC handles POST /data/rpc.
func (h *DataHandler) ExecuteRPC(w http.ResponseWriter, r *http.Request) {
	var req RPCRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.data.ExecuteRPC(r.Context(), req.Function, req.Params, shared.GetAccessToken(r.Context()))
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{"data": result})
}

// matchTarget resolves the single-column equality match of an update or
// delete. Only equality matching is supported, and only on one column.
func matchTarget(column string, value any, id any) (string, any, bool) {
	if column != "" && value != nil {
		return column, value, true
	}
	if id != nil {
		return "id", id, true
	}
	return "", nil, false
}
