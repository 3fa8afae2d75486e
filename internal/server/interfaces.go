package server

// Server is the sync API process. RunServer blocks until a stop signal and
// returns after in-flight pulls and pushes have drained; Shutdown triggers the
// same drain from outside.
type Server interface {
	RunServer()
	Shutdown()
}
