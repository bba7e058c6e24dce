package mutation

// Level is the severity bucket of an edit distance.
type Level int

const (
	Identical Level = iota
	Low
	Medium
	High
)

// Inclusive upper bounds of the Low and Medium buckets.
const (
	lowMax    = 5
	mediumMax = 8
)

// Classify maps a distance to its Level: 0 is Identical, up to 5 Low,
// up to 8 Medium, anything above High.
func Classify(distance int) Level {
	switch {
	case distance <= 0:
		return Identical
	case distance <= lowMax:
		return Low
	case distance <= mediumMax:
		return Medium
	default:
		return High
	}
}

func (l Level) String() string {
	switch l {
	case Identical:
		return "Identical"
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	}
	return "Unknown"
}

// Description is the human readable label shown to users.
func (l Level) Description() string {
	switch l {
	case Identical:
		return "Identical"
	case Low:
		return "Similar (Low Mutation)"
	case Medium:
		return "Different (Medium Mutation)"
	case High:
		return "Highly Different (High Mutation)"
	}
	return "Unknown"
}
