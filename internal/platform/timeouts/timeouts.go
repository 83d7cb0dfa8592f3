// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// GatewayRequest caps a single REST backend call, after which the request
// is aborted and reported as a transport failure.
const GatewayRequest = 10 * time.Second

// AdminRegisterRedirect is the pause between a successful admin registration
// and the navigation to the login view.
const AdminRegisterRedirect = 2 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
