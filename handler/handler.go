package handler

// Handler is a destination for fully formatted log bytes.
//
// Handlers receive bytes rather than entries because every sink of a
// single emission must carry byte-identical text; formatting therefore
// happens exactly once, upstream in the logger.
type Handler interface {
	// Write sends formatted bytes to the destination.
	Write(p []byte) error

	// Flush forces any buffered bytes to be persisted.
	Flush() error

	// Close releases the destination. It must be safe to call more
	// than once.
	Close() error
}
