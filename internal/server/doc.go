// Package server runs the sync API over HTTP.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown that lets in-flight sync requests finish.
package server
