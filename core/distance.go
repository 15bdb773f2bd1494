package core

// MessageKind tags what the display should show
type MessageKind uint8

const (
	KindDistance MessageKind = iota
	KindOutOfRange
)

// Message is what one loop iteration hands to the presentation layer
type Message struct {
	Kind MessageKind
	CM   uint32 // valid for KindDistance
}

// DistanceCM converts an echo window to centimeters:
// ticks -> microseconds -> centimeters, truncating at each step.
func DistanceCM(elapsed Tick, ticksPerMicro uint32) uint32 {
	return TicksToMicros(elapsed, ticksPerMicro) / MicrosPerCM
}

// Classify maps a distance to a display message.
// Anything beyond maxCM means the echo was lost.
func Classify(cm, maxCM uint32) Message {
	if cm > maxCM {
		return Message{Kind: KindOutOfRange}
	}
	return Message{Kind: KindDistance, CM: cm}
}
