// Package settings provides the settings records of the rich presence
// integration.
//
// Every record embeds Value and redeclares its mutators so that they
// return the concrete record, which keeps setter chains on the concrete
// type:
//
//	s := settings.NewApplicationSettings().SetEnabled(false).SetTimeOverride(true)
package settings

// Settings is implemented by every settings record.
// T is the concrete record type, usually a pointer.
type Settings[T any] interface {
	IsEnabled() bool
	SetEnabled(enabled bool) T
	// CloneFrom copies the configuration fields of src to the receiver
	// and returns the receiver.
	CloneFrom(src T) T
	Equal(other T) bool
	// Hash returns a hash of the fields compared by Equal.
	Hash() uint64
}

// A Value is the part that all settings records share.
type Value struct {
	Enabled bool `yaml:"enabled"`
}

// NewValue creates new Value with default values.
func NewValue() Value {
	return Value{Enabled: true}
}

// IsEnabled reports whether the settings are active.
func (v *Value) IsEnabled() bool {
	return v.Enabled
}

// SetEnabled sets the flag.
func (v *Value) SetEnabled(enabled bool) {
	v.Enabled = enabled
}

// CloneFrom copies the flag of src.
func (v *Value) CloneFrom(src *Value) {
	v.SetEnabled(src.IsEnabled())
}

// Equal reports whether v and o hold the same flag.
func (v *Value) Equal(o *Value) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil {
		return false
	}
	return v.Enabled == o.Enabled
}

// HashTo writes the fields of v to h.
func (v *Value) HashTo(h *Hasher) {
	h.WriteBool(v.Enabled)
}

// Clone returns a copy of src built on a new record made by newFn.
func Clone[T Settings[T]](newFn func() T, src T) T {
	return newFn().CloneFrom(src)
}
