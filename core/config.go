package core

// Timing and calibration defaults
const (
	DefaultTicksPerMicro = 16   // 16MHz system timer
	TriggerPulseMicros   = 10   // minimum HC-SR04 trigger width
	MicrosPerCM          = 58   // round-trip echo time per centimeter
	MaxDistanceCM        = 1000 // above this the echo is considered lost

	// MaxMaskedMicros bounds how long Trigger.Fire keeps interrupts masked:
	// the pulse itself plus two pin writes and the clock reads around it.
	MaxMaskedMicros = TriggerPulseMicros + 2
)

// Config holds the build-time timing parameters for one board
type Config struct {
	// TicksPerMicro is the rate of the board's free-running timer
	TicksPerMicro uint32

	// EchoTimeoutMicros bounds each echo edge wait.
	// Zero waits forever, which hangs the loop if the echo line is stuck.
	EchoTimeoutMicros uint32

	// MaxDistanceCM is the largest distance reported as a reading
	MaxDistanceCM uint32
}

// DefaultConfig returns the configuration of the reference board
func DefaultConfig() Config {
	var cfg Config
	applyDefaults(&cfg)
	return cfg
}

// applyDefaults fills in missing configuration values
func applyDefaults(cfg *Config) {
	if cfg.TicksPerMicro == 0 {
		cfg.TicksPerMicro = DefaultTicksPerMicro
	}
	if cfg.MaxDistanceCM == 0 {
		cfg.MaxDistanceCM = MaxDistanceCM
	}
}
