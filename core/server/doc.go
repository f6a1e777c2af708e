// Package server builds and runs the HTTP server.
//
// A Server owns an immutable copy of its Config: the port, the document root,
// and the ordered list of headers appended to every response. By default those
// are the cross-origin isolation headers:
//
//	Cross-Origin-Opener-Policy: same-origin
//	Cross-Origin-Embedder-Policy: require-corp
//
// # Middleware
//
// New registers, in order: RayID, request logging, and the isolation headers.
// The application error handler applies the same headers, so error pages
// (including those for malformed requests) carry them as well.
//
// # Usage
//
//	srv, err := server.New(cfg.Server, logg, mgr)
//	ln, err := srv.Bind()
//	srv.Banner(os.Stdout)
//	go srv.Serve(ln)
//	defer srv.Shutdown()
package server
