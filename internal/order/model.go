package order

// Customer is the contact record an order is placed under. Every field
// is required once surrounding whitespace is trimmed.
type Customer struct {
	Name     string
	Phone    string
	Location string
}

// State is the checkout flow position. Submission is transient: a
// successful handoff returns the flow to Idle.
type State int

const (
	StateIdle State = iota
	StateComposing
)

func (s State) String() string {
	switch s {
	case StateComposing:
		return "composing"
	default:
		return "idle"
	}
}
