package flogger

// Sink receives finalized, formatted output. Implementations perform their
// own filtering and backend delivery; their failure contract is opaque to
// this core, which never assumes delivery succeeded and never retries.
type Sink interface {
	Emit(severity Severity, site CallSite, message string) error
}

// Batcher is the buffering strategy a windowed aggregation engine drives.
// Implementations own the buffer and the count policy; the engine owns the
// flush protocol.
type Batcher interface {
	// ShouldFlushByNumber reports whether the buffered count has reached
	// the number-window threshold.
	ShouldFlushByNumber() bool

	// Buffered returns the current buffered item count.
	Buffered() int

	// Message drains up to count items (0 meaning all currently present)
	// and renders them into the final text. Drain and render are a single
	// atomic step: concurrent calls never drain overlapping items.
	// A negative count is rejected with ErrNegativeCount.
	Message(count int) (string, error)
}
