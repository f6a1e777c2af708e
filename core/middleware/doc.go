// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Isolation: Appends the Cross-Origin-Opener-Policy and
//     Cross-Origin-Embedder-Policy headers to every response, including
//     error responses, so browsers grant the page cross-origin isolation.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// These middleware components are registered globally in core/server.
package middleware
