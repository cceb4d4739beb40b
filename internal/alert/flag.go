package alert

// Flag is a shared boolean cell owned by the host. The host, its trigger and
// the alert callbacks write it; the Controller only reads it.
//
// Writes happen on the UI goroutine, so Flag carries no locking. A nil
// *Flag reads as false and ignores writes.
type Flag struct {
	value bool
}

// NewFlag creates a flag with the given initial value
func NewFlag(initial bool) *Flag {
	return &Flag{value: initial}
}

// Get returns the current value
func (f *Flag) Get() bool {
	if f == nil {
		return false
	}
	return f.value
}

// Set stores a new value
func (f *Flag) Set(v bool) {
	if f == nil {
		return
	}
	f.value = v
}

// Toggle flips the value
func (f *Flag) Toggle() {
	if f == nil {
		return
	}
	f.value = !f.value
}
