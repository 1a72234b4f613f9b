package wled

// State mirrors the fields of the device's /json/state document that the
// CLI touches. Pointers distinguish "absent from the patch" from zero
// values, so a patch changes only what it names.
type State struct {
	On         *bool  `json:"on,omitempty"`
	Brightness *uint8 `json:"bri,omitempty"`
}

// Status classifies a device for the status command.
type Status int

const (
	StatusOn Status = iota
	StatusOff
	StatusUnreachable
)

func (s Status) String() string {
	switch s {
	case StatusOn:
		return "ON"
	case StatusOff:
		return "OFF"
	default:
		return "UNREACHABLE"
	}
}

// MarshalText lets Status render as its string form in JSON and YAML output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
