// Package timeouts defines shared timeout constants used across the site.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// HostRequest caps one request to the media host, retries included.
const HostRequest = 15 * time.Second

// CatalogLoad caps a full catalog build: one search plus every placeholder.
const CatalogLoad = 30 * time.Second
