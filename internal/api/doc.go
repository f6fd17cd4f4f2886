// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between the frontend client
// and the provider gateways, translating HTTP concerns into gateway
// operations and gateway errors into status codes and the uniform
// response envelope.
package api
