// Package mocks provides hand-written test doubles for the gateway and
// generation interfaces. Each mock exposes Fn fields for custom behavior,
// default response values, and call tracking for verification.
package mocks
