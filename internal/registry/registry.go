package registry

import (
	"iter"
	"maps"
	"slices"
)

// Registry holds the named devices and the default-device pointer.
//
// Invariants:
//   - DefaultDevice, when non-empty, is a key of Devices.
//   - The first device ever added becomes the default.
//   - Removing the default device promotes the lexicographically first
//     remaining device, or clears the default when none remain.
type Registry struct {
	Devices       map[string]string `koanf:"devices"`
	DefaultDevice string            `koanf:"default_device"`
}

// Device is a single registry entry as produced by List.
type Device struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Default bool   `json:"default"`
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		Devices: make(map[string]string),
	}
}

// Add inserts a name to address mapping. Adding an existing name overwrites
// its address. It reports whether the device became the default, which
// happens exactly when it is the only device in the registry.
func (r *Registry) Add(name, address string) bool {
	if r.Devices == nil {
		r.Devices = make(map[string]string)
	}
	r.Devices[name] = address

	if len(r.Devices) == 1 {
		r.DefaultDevice = name
		return true
	}
	return false
}

// Remove deletes a device by name. Removing the current default promotes
// the lexicographically first remaining device, or clears the default when
// the registry becomes empty.
func (r *Registry) Remove(name string) error {
	if _, ok := r.Devices[name]; !ok {
		return &NotFoundError{Name: name}
	}
	delete(r.Devices, name)

	if r.DefaultDevice == name {
		r.DefaultDevice = ""
		if names := slices.Sorted(maps.Keys(r.Devices)); len(names) > 0 {
			r.DefaultDevice = names[0]
		}
	}
	return nil
}

// SetDefault marks an existing device as the default.
func (r *Registry) SetDefault(name string) error {
	if _, ok := r.Devices[name]; !ok {
		return &NotFoundError{Name: name}
	}
	r.DefaultDevice = name
	return nil
}

// Lookup returns the address saved for a device name.
func (r *Registry) Lookup(name string) (string, bool) {
	address, ok := r.Devices[name]
	return address, ok
}

// Len returns the number of saved devices.
func (r *Registry) Len() int {
	return len(r.Devices)
}

// List returns the devices in lexicographic name order. The sequence is
// re-derived from the registry on every call, so it is safe to range over
// it multiple times.
func (r *Registry) List() iter.Seq[Device] {
	return func(yield func(Device) bool) {
		for _, name := range slices.Sorted(maps.Keys(r.Devices)) {
			d := Device{
				Name:    name,
				Address: r.Devices[name],
				Default: name == r.DefaultDevice,
			}
			if !yield(d) {
				return
			}
		}
	}
}
