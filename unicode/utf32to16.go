package unicode

// UTF32To16 converts a stream of UTF-32 code points into UTF-16 code units.
type UTF32To16 struct {
	wellFormed bool
}

// NewUTF32To16 returns a transcoder ready to accept its first code point.
func NewUTF32To16() *UTF32To16 {
	return &UTF32To16{wellFormed: true}
}

// WellFormed reports whether every code point consumed so far was valid.
func (t *UTF32To16) WellFormed() bool { return t.wellFormed }

// Partial is always false.
func (t *UTF32To16) Partial() bool { return false }

// Consume encodes one code point, pushing one or two UTF-16 code units.
func (t *UTF32To16) Consume(cp rune, emit func(uint16)) {
	switch {
	case isSurrogate(cp) || cp < 0 || cp > maxCodePoint:
		t.wellFormed = false
		emit(uint16(Replacement))
	case cp < 0x10000:
		emit(uint16(cp))
	default:
		v := uint32(cp) - 0x10000
		emit(uint16(0xD800 + (v >> 10)))
		emit(uint16(0xDC00 + (v & 0x3FF)))
	}
}

// Finish is a no-op.
func (t *UTF32To16) Finish(emit func(uint16)) {}
