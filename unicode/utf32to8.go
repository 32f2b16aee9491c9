package unicode

// UTF32To8 converts a stream of UTF-32 code points (runes) into UTF-8 bytes.
//
// It carries no state beyond the well-formed flag: every code point is
// either emitted as 1-4 bytes on its own, or, if it is a surrogate or
// outside the Unicode range, replaced by the 3-byte encoding of
// Replacement and the well-formed flag is cleared.
type UTF32To8 struct {
	wellFormed bool
}

// NewUTF32To8 returns a transcoder ready to accept its first code point.
func NewUTF32To8() *UTF32To8 {
	return &UTF32To8{wellFormed: true}
}

// WellFormed reports whether every code point consumed so far was valid.
func (t *UTF32To8) WellFormed() bool { return t.wellFormed }

// Partial is always false: a single rune maps to a self-contained byte
// sequence with no carry between calls.
func (t *UTF32To8) Partial() bool { return false }

// Consume encodes one code point, pushing 1-4 bytes to emit.
func (t *UTF32To8) Consume(cp rune, emit func(byte)) {
	switch {
	case cp < 0:
		t.illFormed(emit)
	case cp < 0x80:
		emit(byte(cp))
	case cp < 0x800:
		emit(byte(0xC0 | (cp >> 6)))
		emit(byte(0x80 | (cp & 0x3F)))
	case isSurrogate(cp):
		t.illFormed(emit)
	case cp < 0x10000:
		emit(byte(0xE0 | (cp >> 12)))
		emit(byte(0x80 | ((cp >> 6) & 0x3F)))
		emit(byte(0x80 | (cp & 0x3F)))
	case cp <= maxCodePoint:
		emit(byte(0xF0 | (cp >> 18)))
		emit(byte(0x80 | ((cp >> 12) & 0x3F)))
		emit(byte(0x80 | ((cp >> 6) & 0x3F)))
		emit(byte(0x80 | (cp & 0x3F)))
	default:
		t.illFormed(emit)
	}
}

func (t *UTF32To8) illFormed(emit func(byte)) {
	t.wellFormed = false
	// U+FFFD encodes as the fixed 3-byte sequence EF BF BD.
	emit(0xEF)
	emit(0xBF)
	emit(0xBD)
}

// Finish is a no-op: UTF-32 to UTF-8 never leaves a partial sequence.
func (t *UTF32To8) Finish(emit func(byte)) {}
