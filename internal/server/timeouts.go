package server

import "time"

const (
	readTimeout = 10 * time.Second
	// writeTimeout stays above the router's per-request timeout so a slow
	// lookup ends with a 504 body, not a severed connection.
	writeTimeout = 25 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
