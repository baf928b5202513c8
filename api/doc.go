// Package api provides the HTTP layer for the VidExtract application.
//
// The package is structured as follows:
//
//   - server.go: route table, middleware chain and CORS setup
//   - handlers/: HTTP request handlers
//   - dto/: request and response shapes
//   - middleware/: request logging and per-IP rate limiting
//
// Handlers depend only on the service interfaces defined in
// core/interfaces, so they can be tested with in-memory fakes.
package api
