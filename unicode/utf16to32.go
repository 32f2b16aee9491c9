package unicode

// UTF16To32 decodes a stream of UTF-16 code units into UTF-32 code points.
//
// It tracks at most one pending high surrogate, per the table in spec.md
// section 3: a lone high surrogate is buffered until the next unit arrives;
// a lone low surrogate, or a second high surrogate, is ill-formed.
type UTF16To32 struct {
	high       uint16
	hasHigh    bool
	wellFormed bool
}

// NewUTF16To32 returns a transcoder with no pending high surrogate.
func NewUTF16To32() *UTF16To32 {
	return &UTF16To32{wellFormed: true}
}

// WellFormed reports whether every unit consumed so far was valid.
func (t *UTF16To32) WellFormed() bool { return t.wellFormed }

// Partial reports whether a high surrogate is awaiting its pair.
func (t *UTF16To32) Partial() bool { return t.hasHigh }

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u <= 0xDBFF }
func isLowSurrogate(u uint16) bool  { return u >= 0xDC00 && u <= 0xDFFF }

// Consume offers one UTF-16 code unit, emitting zero, one, or two code
// points per the combination table in spec.md section 4.1.
func (t *UTF16To32) Consume(u uint16, emit func(rune)) {
	switch {
	case !t.hasHigh && !isHighSurrogate(u) && !isLowSurrogate(u):
		emit(rune(u))
	case !t.hasHigh && isLowSurrogate(u):
		t.wellFormed = false
		emit(Replacement)
	case !t.hasHigh && isHighSurrogate(u):
		t.high, t.hasHigh = u, true
	case t.hasHigh && isLowSurrogate(u):
		v := (rune(t.high-0xD800)<<10 | rune(u-0xDC00)) + 0x10000
		emit(v)
		t.hasHigh = false
	case t.hasHigh && isHighSurrogate(u):
		t.wellFormed = false
		emit(Replacement)
		t.high = u // remains pending
	default: // pending high followed by a non-surrogate
		t.wellFormed = false
		emit(Replacement)
		emit(rune(u))
		t.hasHigh = false
	}
}

// Finish must be called exactly once after the final input unit. A
// pending high surrogate with no pair is ill-formed.
func (t *UTF16To32) Finish(emit func(rune)) {
	if t.hasHigh {
		t.wellFormed = false
		emit(Replacement)
		t.hasHigh = false
	}
}
