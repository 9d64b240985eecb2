// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation protecting the analysis endpoints.
//   - RayID: a unique Request ID (RayID) for every incoming request,
//     injected into the context and response headers for tracing.
package middleware
