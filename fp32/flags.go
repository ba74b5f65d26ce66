package fp32

// Flags are the exception indicators of one operation. They reset when
// an operation starts and report alongside the packed result; no flag
// is ever raised as a Go error.
type Flags struct {
	Invalid   bool // Operation mathematically undefined.
	Overflow  bool // Result forced to signed infinity.
	Underflow bool // Result flushed to signed zero.
}

// Reset clears all flags.
func (fl *Flags) Reset() {
	*fl = Flags{}
}

// None reports whether no flag is set.
func (fl Flags) None() bool {
	return fl == Flags{}
}

// String renders the flags as "iou" letters, "-" for clear bits.
func (fl Flags) String() string {
	text := []byte("---")
	if fl.Invalid {
		text[0] = 'i'
	}
	if fl.Overflow {
		text[1] = 'o'
	}
	if fl.Underflow {
		text[2] = 'u'
	}
	return string(text)
}
