// Package timeouts defines shared timeout constants used by the admin console.
package timeouts

import "time"

// APIRequest caps a single call from the console to the flight API.
const APIRequest = 10 * time.Second

// AuditWrite caps a single audit log insert.
const AuditWrite = 2 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown caps the final span flush on exit.
const TelemetryShutdown = 5 * time.Second
