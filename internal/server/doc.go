// Package server runs the course API over HTTP.
//
// It owns the listener lifecycle: startup, termination-signal handling and
// graceful shutdown that lets in-flight requests finish.
package server
