// Package timeouts defines shared timeout constants used across the process.
package timeouts

import "time"

// GRPCDial caps the wait when dialing a gRPC peer.
const GRPCDial = 2 * time.Second

// StorePing caps the startup reachability check of a network-backed store.
const StorePing = 2 * time.Second

// HealthProbe caps a single health check call while waiting for a peer.
const HealthProbe = time.Second

// Shutdown limits how long a graceful stop waits for open streams before the
// server is stopped hard.
const Shutdown = 5 * time.Second
