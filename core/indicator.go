package core

// Proximity bands for the indicator LEDs
const (
	NearCM = 5  // below: red blinks
	WarnCM = 10 // up to: red
	SafeCM = 20 // up to: yellow, beyond: green
)

// Indicator drives three proximity LEDs from each reading
type Indicator struct {
	red, yellow, green Output
	redOn              bool
}

// NewIndicator creates an indicator on the three LED outputs
func NewIndicator(red, yellow, green Output) *Indicator {
	return &Indicator{red: red, yellow: yellow, green: green}
}

// Show lights the LED for msg's band. Very close readings toggle red on
// every call so it blinks at the loop rate; a lost echo turns all off.
func (ind *Indicator) Show(msg Message) {
	if msg.Kind == KindOutOfRange {
		ind.set(false, false, false)
		return
	}

	switch cm := msg.CM; {
	case cm < NearCM:
		ind.set(!ind.redOn, false, false)
	case cm <= WarnCM:
		ind.set(true, false, false)
	case cm <= SafeCM:
		ind.set(false, true, false)
	default:
		ind.set(false, false, true)
	}
}

func (ind *Indicator) set(red, yellow, green bool) {
	ind.redOn = red
	setLevel(ind.red, red)
	setLevel(ind.yellow, yellow)
	setLevel(ind.green, green)
}

func setLevel(o Output, high bool) {
	if high {
		o.High()
	} else {
		o.Low()
	}
}
