// Package static implements the static file responders.
//
// Two sources are supported, each registered as a loader feature:
//
//   - Feature serves a local directory through Fiber's filesystem middleware,
//     opening each file per request. Directory requests resolve to the index
//     file or a generated listing.
//   - BucketFeature serves the same paths from an S3/MinIO bucket, optionally
//     under a key prefix. Directory requests resolve to the index object; there
//     is no listing.
//
// In both cases ".." segments are normalized away before lookup and missing
// paths end in a 404. Headers common to all responses (cross-origin isolation)
// are added by core/middleware/isolation, not here.
//
// # Components
//
//   - Service: Maps request paths to object keys and opens objects.
//   - Handler: Streams objects with their content type and length.
//   - Loader: Registers the responders with the application.
package static
