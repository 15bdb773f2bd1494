package core

// LogWriter writes one diagnostic line to the platform's log sink
type LogWriter func(string)

var (
	// logPrintln is the global log function (set by platform code)
	logPrintln LogWriter = func(s string) {} // No-op by default

	// logEnabled controls whether log output is active
	logEnabled = true

	// Async log output channel
	logChan chan string
)

// SetLogWriter sets the platform-specific log output function
// This allows platforms to redirect log output to USB, UART, stderr, etc.
func SetLogWriter(writer LogWriter) {
	if writer == nil {
		writer = func(s string) {}
	}
	logPrintln = writer
}

// SetLogEnabled enables or disables log output
func SetLogEnabled(enabled bool) {
	logEnabled = enabled
}

// InitAsyncLog starts the async log output goroutine
// Call this from main() after SetLogWriter
func InitAsyncLog() {
	logChan = make(chan string, 16) // Buffer 16 messages
	go logOutputWorker(logChan)
}

// logOutputWorker runs in background, drains the log channel
func logOutputWorker(ch <-chan string) {
	for msg := range ch {
		logPrintln(msg)
	}
}

// Logln writes a log line, blocking until the sink accepts it
func Logln(msg string) {
	if logEnabled {
		logPrintln(msg)
	}
}

// LogAsync queues a log line for async output (non-blocking)
// Drops the line if the channel is full; falls back to Logln when
// InitAsyncLog was never called. Not for use in interrupt context.
func LogAsync(msg string) {
	if !logEnabled {
		return
	}
	if logChan == nil {
		logPrintln(msg)
		return
	}
	select {
	case logChan <- msg:
	default:
		// Channel full, drop message
	}
}
