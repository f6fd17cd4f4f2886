package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/portico-api/internal/domain"
	"github.com/phrazzld/portico-api/internal/gateway"
)

// MockDataGateway implements gateway.Data for testing
type MockDataGateway struct {
	// Custom behavior functions
	InsertFn     func(ctx context.Context, table string, records any, token string) ([]map[string]any, error)
	FetchFn      func(ctx context.Context, table, token string, params *domain.QueryParams) ([]map[string]any, error)
	UpdateFn     func(ctx context.Context, table string, data map[string]any, matchColumn string, matchValue any, token string) ([]map[string]any, error)
	DeleteFn     func(ctx context.Context, table, matchColumn string, matchValue any, token string) ([]map[string]any, error)
	ExecuteRPCFn func(ctx context.Context, function string, params map[string]any, token string) (any, error)

	// Default response values
	Rows      []map[string]any
	RPCResult any
	Err       error

	// Call tracking for verification
	InsertCalls struct {
		mu      sync.Mutex
		Count   int
		Tables  []string
		Records []any
		Tokens  []string
	}

	FetchCalls struct {
		mu     sync.Mutex
		Count  int
		Tables []string
		Tokens []string
		Params []*domain.QueryParams
	}

	UpdateCalls struct {
		mu           sync.Mutex
		Count        int
		Tables       []string
		Data         []map[string]any
		MatchColumns []string
		MatchValues  []any
		Tokens       []string
	}

	DeleteCalls struct {
		mu           sync.Mutex
		Count        int
		Tables       []string
		MatchColumns []string
		MatchValues  []any
		Tokens       []string
	}

	ExecuteRPCCalls struct {
		mu        sync.Mutex
		Count     int
		Functions []string
		Params    []map[string]any
		Tokens    []string
	}
}

var _ gateway.Data = (*MockDataGateway)(nil)

// Insert implements the gateway.Data interface
func (m *MockDataGateway) Insert(ctx context.Context, table string, records any, token string) ([]map[string]any, error) {
	m.InsertCalls.mu.Lock()
	m.InsertCalls.Count++
	m.InsertCalls.Tables = append(m.InsertCalls.Tables, table)
	m.InsertCalls.Records = append(m.InsertCalls.Records, records)
	m.InsertCalls.Tokens = append(m.InsertCalls.Tokens, token)
	m.InsertCalls.mu.Unlock()

	if m.InsertFn != nil {
		return m.InsertFn(ctx, table, records, token)
	}
	return m.Rows, m.Err
}

// Fetch implements the gateway.Data interface
func (m *MockDataGateway) Fetch(ctx context.Context, table, token string, params *domain.QueryParams) ([]map[string]any, error) {
	m.FetchCalls.mu.Lock()
	m.FetchCalls.Count++
	m.FetchCalls.Tables = append(m.FetchCalls.Tables, table)
	m.FetchCalls.Tokens = append(m.FetchCalls.Tokens, token)
	m.FetchCalls.Params = append(m.FetchCalls.Params, params)
	m.FetchCalls.mu.Unlock()

	if m.FetchFn != nil {
		return m.FetchFn(ctx, table, token, params)
	}
	return m.Rows, m.Err
}

// Update implements the gateway.Data interface
func (m *MockDataGateway) Update(
	ctx context.Context,
	table string,
	data map[string]any,
	matchColumn string,
	matchValue any,
	token string,
) ([]map[string]any, error) {
	m.UpdateCalls.mu.Lock()
	m.UpdateCalls.Count++
	m.UpdateCalls.Tables = append(m.UpdateCalls.Tables, table)
	m.UpdateCalls.Data = append(m.UpdateCalls.Data, data)
	m.UpdateCalls.MatchColumns = append(m.UpdateCalls.MatchColumns, matchColumn)
	m.UpdateCalls.MatchValues = append(m.UpdateCalls.MatchValues, matchValue)
	m.UpdateCalls.Tokens = append(m.UpdateCalls.Tokens, token)
	m.UpdateCalls.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, table, data, matchColumn, matchValue, token)
	}
	return m.Rows, m.Err
}

// Delete implements the gateway.Data interface
func (m *MockDataGateway) Delete(
	ctx context.Context,
	table, matchColumn string,
	matchValue any,
	token string,
) ([]map[string]any, error) {
	m.DeleteCalls.mu.Lock()
	m.DeleteCalls.Count++
	m.DeleteCalls.Tables = append(m.DeleteCalls.Tables, table)
	m.DeleteCalls.MatchColumns = append(m.DeleteCalls.MatchColumns, matchColumn)
	m.DeleteCalls.MatchValues = append(m.DeleteCalls.MatchValues, matchValue)
	m.DeleteCalls.Tokens = append(m.DeleteCalls.Tokens, token)
	m.DeleteCalls.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, table, matchColumn, matchValue, token)
	}
	return m.Rows, m.Err
}

// ExecuteRPC implements the gateway.Data interface
func (m *MockDataGateway) ExecuteRPC(ctx context.Context, function string, params map[string]any, token string) (any, error) {
	m.ExecuteRPCCalls.mu.Lock()
	m.ExecuteRPCCalls.Count++
	m.ExecuteRPCCalls.Functions = append(m.ExecuteRPCCalls.Functions, function)
	m.ExecuteRPCCalls.Params = append(m.ExecuteRPCCalls.Params, params)
	m.ExecuteRPCCalls.Tokens = append(m.ExecuteRPCCalls.Tokens, token)
	m.ExecuteRPCCalls.mu.Unlock()

	if m.ExecuteRPCFn != nil {
		return m.ExecuteRPCFn(ctx, function, params, token)
	}
	return m.RPCResult, m.Err
}
