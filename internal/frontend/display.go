package frontend

// State of an operation result display.
type State int

const (
	StateIdle State = iota
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "idle"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Display is the outcome of the latest submission of a form.
// Value holds the raw transaction hash or balance on success.
type Display struct {
	State   State  `json:"state"`
	Message string `json:"message,omitempty"`
	Value   string `json:"value,omitempty"`
}

func (d Display) Idle() bool {
	return d.State == StateIdle
}

func (d Display) Succeeded() bool {
	return d.State == StateSuccess
}

func (d Display) Failed() bool {
	return d.State == StateFailure
}
