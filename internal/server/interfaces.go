package server

// Server is the lifecycle of the inbound transport layer.
type Server interface {
	// RunServer blocks until the server stops, either by signal or by an
	// unrecoverable listener error.
	RunServer()

	// Shutdown stops accepting new requests and drains in-flight ones.
	Shutdown()
}
