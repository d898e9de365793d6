package server

// Server runs the transport servers until a stop signal arrives and shuts
// them down gracefully.
type Server interface {
	RunServer()
	Shutdown()
}
