package core

// Output is a digital output line.
// Platform-specific implementations handle actual hardware control.
type Output interface {
	// High drives the line to logic high
	High()

	// Low drives the line to logic low
	Low()
}

// Input is a digital input line
type Input interface {
	// Get reads the current logic level (true = high)
	Get() bool
}

// EdgeInput is an input line that has been set up to listen for an edge.
// The pending flag is latched by the platform when the edge occurs and stays
// set until ClearInterrupt is called.
type EdgeInput interface {
	Input

	// InterruptPending reports whether this line raised the current interrupt
	InterruptPending() bool

	// ClearInterrupt acknowledges this line's pending interrupt only
	ClearInterrupt()
}
