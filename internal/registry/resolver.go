package registry

// Source tells where a resolved address came from.
type Source int

const (
	// ResolvedFromName means the reference matched a saved device name.
	ResolvedFromName Source = iota
	// ResolvedFromLiteral means the reference was used verbatim as an address.
	ResolvedFromLiteral
	// ResolvedFromDefault means no reference was given and the default
	// device was used.
	ResolvedFromDefault
)

func (s Source) String() string {
	switch s {
	case ResolvedFromName:
		return "name"
	case ResolvedFromLiteral:
		return "literal"
	case ResolvedFromDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Resolve maps a device reference to a concrete network address.
//
// A non-empty reference that matches a saved name exactly resolves to the
// saved address; a saved name always wins over reading the same string as a
// literal address. Any other non-empty reference is returned verbatim, with
// no syntactic validation: a bad address fails naturally at the HTTP layer.
// An empty reference resolves to the default device, or ErrNoDefaultDevice
// when no default is set. A default that names a device missing from the
// registry (possible after a hand edit) is treated as unset.
func (r *Registry) Resolve(ref string) (string, Source, error) {
	if ref != "" {
		if address, ok := r.Devices[ref]; ok {
			return address, ResolvedFromName, nil
		}
		return ref, ResolvedFromLiteral, nil
	}

	if r.DefaultDevice != "" {
		if address, ok := r.Devices[r.DefaultDevice]; ok {
			return address, ResolvedFromDefault, nil
		}
	}
	return "", 0, ErrNoDefaultDevice
}

// Address resolves ref and returns only the concrete address.
func (r *Registry) Address(ref string) (string, error) {
	address, _, err := r.Resolve(ref)
	return address, err
}
