package unicode

// This file implements the "triangulating" transcoders of spec.md section
// 4.1: source -> UTF-32 -> destination pairs that never materialize an
// intermediate buffer larger than the single code point passing through at
// any moment, since each stage's emit callback drives the next stage
// synchronously.

// UTF8To16 composes UTF8To32 and UTF32To16.
type UTF8To16 struct {
	first  *UTF8To32
	second *UTF32To16
}

// NewUTF8To16 returns a transcoder chaining UTF-8 decode and UTF-16 encode.
func NewUTF8To16() *UTF8To16 {
	return &UTF8To16{first: NewUTF8To32(), second: NewUTF32To16()}
}

// WellFormed is the conjunction of both stages.
func (t *UTF8To16) WellFormed() bool { return t.first.WellFormed() && t.second.WellFormed() }

// Partial reflects the first stage only, per spec.md section 4.1.
func (t *UTF8To16) Partial() bool { return t.first.Partial() }

// Consume decodes one UTF-8 byte, emitting zero or more UTF-16 units.
func (t *UTF8To16) Consume(b byte, emit func(uint16)) {
	t.first.Consume(b, func(cp rune) { t.second.Consume(cp, emit) })
}

// Finish flushes both stages.
func (t *UTF8To16) Finish(emit func(uint16)) {
	t.first.Finish(func(cp rune) { t.second.Consume(cp, emit) })
	t.second.Finish(emit)
}

// UTF16To8 composes UTF16To32 and UTF32To8.
type UTF16To8 struct {
	first  *UTF16To32
	second *UTF32To8
}

// NewUTF16To8 returns a transcoder chaining UTF-16 decode and UTF-8 encode.
func NewUTF16To8() *UTF16To8 {
	return &UTF16To8{first: NewUTF16To32(), second: NewUTF32To8()}
}

// WellFormed is the conjunction of both stages.
func (t *UTF16To8) WellFormed() bool { return t.first.WellFormed() && t.second.WellFormed() }

// Partial reflects the first stage only.
func (t *UTF16To8) Partial() bool { return t.first.Partial() }

// Consume decodes one UTF-16 unit, emitting zero or more UTF-8 bytes.
func (t *UTF16To8) Consume(u uint16, emit func(byte)) {
	t.first.Consume(u, func(cp rune) { t.second.Consume(cp, emit) })
}

// Finish flushes both stages.
func (t *UTF16To8) Finish(emit func(byte)) {
	t.first.Finish(func(cp rune) { t.second.Consume(cp, emit) })
	t.second.Finish(emit)
}

// UTF8To8 composes UTF8To32 and UTF32To8; useful for validating or
// re-encoding a UTF-8 stream byte-by-byte through the same code path as
// the other transcoders.
type UTF8To8 struct {
	first  *UTF8To32
	second *UTF32To8
}

// NewUTF8To8 returns a transcoder that validates UTF-8 via the UTF-32
// midpoint.
func NewUTF8To8() *UTF8To8 {
	return &UTF8To8{first: NewUTF8To32(), second: NewUTF32To8()}
}

// WellFormed is the conjunction of both stages.
func (t *UTF8To8) WellFormed() bool { return t.first.WellFormed() && t.second.WellFormed() }

// Partial reflects the first stage only.
func (t *UTF8To8) Partial() bool { return t.first.Partial() }

// Consume re-encodes one input byte.
func (t *UTF8To8) Consume(b byte, emit func(byte)) {
	t.first.Consume(b, func(cp rune) { t.second.Consume(cp, emit) })
}

// Finish flushes both stages.
func (t *UTF8To8) Finish(emit func(byte)) {
	t.first.Finish(func(cp rune) { t.second.Consume(cp, emit) })
	t.second.Finish(emit)
}

// UTF16To16 composes UTF16To32 and UTF32To16; validates or normalizes a
// UTF-16 stream (for example, replacing each unpaired surrogate with a
// replacement character).
type UTF16To16 struct {
	first  *UTF16To32
	second *UTF32To16
}

// NewUTF16To16 returns a transcoder that validates UTF-16 via the UTF-32
// midpoint.
func NewUTF16To16() *UTF16To16 {
	return &UTF16To16{first: NewUTF16To32(), second: NewUTF32To16()}
}

// WellFormed is the conjunction of both stages.
func (t *UTF16To16) WellFormed() bool { return t.first.WellFormed() && t.second.WellFormed() }

// Partial reflects the first stage only.
func (t *UTF16To16) Partial() bool { return t.first.Partial() }

// Consume re-encodes one input unit.
func (t *UTF16To16) Consume(u uint16, emit func(uint16)) {
	t.first.Consume(u, func(cp rune) { t.second.Consume(cp, emit) })
}

// Finish flushes both stages.
func (t *UTF16To16) Finish(emit func(uint16)) {
	t.first.Finish(func(cp rune) { t.second.Consume(cp, emit) })
	t.second.Finish(emit)
}
