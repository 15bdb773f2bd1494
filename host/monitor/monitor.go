// Package monitor parses the rangefinder's diagnostic log as it arrives
// over the serial port.
package monitor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"metter/host/serial"
)

// Kind classifies one log line
type Kind int

const (
	KindOther    Kind = iota
	KindDistance      // "<n> cm"
	KindLost          // "lost <n> cm"
	KindTimeout       // "timeout"
	KindPress         // "button pressed x<n>"
	KindEvent         // "[EVT] ..."
)

func (k Kind) String() string {
	switch k {
	case KindDistance:
		return "distance"
	case KindLost:
		return "lost"
	case KindTimeout:
		return "timeout"
	case KindPress:
		return "press"
	case KindEvent:
		return "event"
	default:
		return "other"
	}
}

// Line is one parsed log line
type Line struct {
	Kind    Kind
	CM      uint32 // for KindDistance and KindLost
	Presses uint32 // for KindPress
	Raw     string
}

// ParseLine classifies a log line. Unknown lines come back as KindOther.
func ParseLine(s string) Line {
	s = strings.TrimSpace(s)
	l := Line{Kind: KindOther, Raw: s}

	switch {
	case s == "timeout":
		l.Kind = KindTimeout
	case strings.HasPrefix(s, "[EVT]"):
		l.Kind = KindEvent
	case strings.HasPrefix(s, "button pressed x"):
		if n, ok := parseUint(strings.TrimPrefix(s, "button pressed x")); ok {
			l.Kind, l.Presses = KindPress, n
		}
	case strings.HasPrefix(s, "lost ") && strings.HasSuffix(s, " cm"):
		if n, ok := parseUint(strings.TrimSuffix(strings.TrimPrefix(s, "lost "), " cm")); ok {
			l.Kind, l.CM = KindLost, n
		}
	case strings.HasSuffix(s, " cm"):
		if n, ok := parseUint(strings.TrimSuffix(s, " cm")); ok {
			l.Kind, l.CM = KindDistance, n
		}
	}
	return l
}

func parseUint(s string) (uint32, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// Stats summarizes a log stream
type Stats struct {
	Readings int
	Lost     int
	Timeouts int
	Presses  uint32
	MinCM    uint32
	MaxCM    uint32
	LastCM   uint32
}

// Add folds one line into the summary
func (s *Stats) Add(l Line) {
	switch l.Kind {
	case KindDistance:
		if s.Readings == 0 || l.CM < s.MinCM {
			s.MinCM = l.CM
		}
		if l.CM > s.MaxCM {
			s.MaxCM = l.CM
		}
		s.LastCM = l.CM
		s.Readings++
	case KindLost:
		s.Lost++
	case KindTimeout:
		s.Timeouts++
	case KindPress:
		s.Presses += l.Presses
	}
}

func (s Stats) String() string {
	if s.Readings == 0 {
		return fmt.Sprintf("no readings (lost=%d timeouts=%d presses=%d)", s.Lost, s.Timeouts, s.Presses)
	}
	return fmt.Sprintf("readings=%d min=%dcm max=%dcm last=%dcm lost=%d timeouts=%d presses=%d",
		s.Readings, s.MinCM, s.MaxCM, s.LastCM, s.Lost, s.Timeouts, s.Presses)
}

// Watch reads log lines from r until EOF, calling fn for each one
func Watch(r io.Reader, fn func(Line)) error {
	err := serial.ScanLines(r, func(text string) {
		fn(ParseLine(text))
	})
	if err != nil {
		return fmt.Errorf("reading log: %w", err)
	}
	return nil
}
