package unicode

// Encoding identifies the Unicode transformation format a ByteTranscoder
// has detected (or "unknown" while still buffering a possible BOM).
type Encoding int

// The encodings a ByteTranscoder can auto-detect, per spec.md section 4.1's
// BOM table.
const (
	Unknown Encoding = iota
	UTF8Encoding
	UTF16BEEncoding
	UTF16LEEncoding
	UTF32BEEncoding
	UTF32LEEncoding
)

func (e Encoding) String() string {
	switch e {
	case UTF8Encoding:
		return "UTF-8"
	case UTF16BEEncoding:
		return "UTF-16BE"
	case UTF16LEEncoding:
		return "UTF-16LE"
	case UTF32BEEncoding:
		return "UTF-32BE"
	case UTF32LEEncoding:
		return "UTF-32LE"
	default:
		return "unknown"
	}
}

// ByteTranscoder auto-detects its source encoding from a leading byte order
// mark and transcodes to UTF-8 bytes. Until the encoding is determined, up
// to 4 bytes are buffered; once committed, no further output is withheld.
type ByteTranscoder struct {
	committed bool
	encoding  Encoding
	pending   []byte // bytes buffered while the BOM is still ambiguous
	assembly  []byte // partial multi-byte code unit once committed

	utf8 *UTF8To8
	u16  *UTF16To8
	u32  *UTF32To8
}

// NewByteTranscoder returns a transcoder that has not yet seen any input.
func NewByteTranscoder() *ByteTranscoder {
	return &ByteTranscoder{}
}

// SelectedEncoding reports the detected encoding, or Unknown while BOM
// recognition is still in progress.
func (t *ByteTranscoder) SelectedEncoding() Encoding { return t.encoding }

// WellFormed reports whether the committed inner transcoder (if any) has
// seen only well-formed input so far; true while still recognizing the BOM.
func (t *ByteTranscoder) WellFormed() bool {
	switch {
	case t.utf8 != nil:
		return t.utf8.WellFormed()
	case t.u16 != nil:
		return t.u16.WellFormed()
	case t.u32 != nil:
		return t.u32.WellFormed()
	default:
		return true
	}
}

// Consume offers one input byte, pushing zero or more UTF-8 bytes to emit.
func (t *ByteTranscoder) Consume(b byte, emit func(byte)) {
	if t.committed {
		t.consumeCommitted(b, emit)
		return
	}
	t.pending = append(t.pending, b)
	t.recognize(emit)
}

// recognize advances BOM detection by one buffered byte. It either leaves
// the transcoder still buffering, commits to a detected BOM (discarding the
// BOM bytes), or commits to plain UTF-8 and replays everything buffered so
// far.
func (t *ByteTranscoder) recognize(emit func(byte)) {
	p := t.pending
	switch len(p) {
	case 1:
		switch p[0] {
		case 0xEF, 0xFE, 0xFF, 0x00:
			return // still a candidate for some BOM; keep buffering
		default:
			t.commitUTF8(emit)
		}
	case 2:
		switch {
		case p[0] == 0xEF && p[1] == 0xBB:
			return // candidate UTF-8 BOM, need third byte
		case p[0] == 0xFE && p[1] == 0xFF:
			t.commit(UTF16BEEncoding, nil, emit)
		case p[0] == 0xFF && p[1] == 0xFE:
			return // ambiguous: UTF-16LE BOM or the start of UTF-32LE's
		case p[0] == 0x00 && p[1] == 0x00:
			return // candidate UTF-32BE BOM, need more bytes
		default:
			t.commitUTF8(emit)
		}
	case 3:
		switch {
		case p[0] == 0xEF && p[1] == 0xBB && p[2] == 0xBF:
			t.commit(UTF8Encoding, nil, emit)
		case p[0] == 0xFF && p[1] == 0xFE && p[2] == 0x00:
			return // still ambiguous: could extend to UTF-32LE's 00 00
		case p[0] == 0xFF && p[1] == 0xFE:
			// The third byte is not 0x00: the BOM was the 2-byte UTF-16LE
			// form, and this byte begins the first content code unit.
			t.commit(UTF16LEEncoding, p[2:3], emit)
		case p[0] == 0x00 && p[1] == 0x00 && p[2] == 0xFE:
			return // candidate UTF-32BE BOM, need fourth byte
		default:
			t.commitUTF8(emit)
		}
	case 4:
		switch {
		case p[0] == 0xFF && p[1] == 0xFE && p[2] == 0x00 && p[3] == 0x00:
			t.commit(UTF32LEEncoding, nil, emit)
		case p[0] == 0x00 && p[1] == 0x00 && p[2] == 0xFE && p[3] == 0xFF:
			t.commit(UTF32BEEncoding, nil, emit)
		case p[0] == 0xFF && p[1] == 0xFE && p[2] == 0x00:
			// FF FE 00 did not extend to UTF-32LE: the BOM was UTF-16LE and
			// the last two bytes form its first content code unit.
			t.commit(UTF16LEEncoding, p[2:4], emit)
		default:
			t.commitUTF8(emit)
		}
	}
}

// commitUTF8 commits to plain UTF-8 and replays every byte buffered during
// BOM recognition through the UTF-8 path.
func (t *ByteTranscoder) commitUTF8(emit func(byte)) {
	buffered := t.pending
	t.commit(UTF8Encoding, nil, emit)
	for _, b := range buffered {
		t.consumeCommitted(b, emit)
	}
}

// commit fixes the detected encoding, discards the BOM-recognition buffer,
// and seeds the post-commit assembly buffer with any leftover content bytes
// (used only for UTF-16LE, where bytes after FF FE were buffered while a
// UTF-32LE BOM was still possible).
func (t *ByteTranscoder) commit(enc Encoding, leftover []byte, emit func(byte)) {
	t.committed = true
	t.encoding = enc
	t.pending = nil
	switch enc {
	case UTF8Encoding:
		t.utf8 = NewUTF8To8()
	case UTF16BEEncoding, UTF16LEEncoding:
		t.u16 = NewUTF16To8()
	case UTF32BEEncoding, UTF32LEEncoding:
		t.u32 = NewUTF32To8()
	}
	for _, b := range leftover {
		t.consumeCommitted(b, emit)
	}
}

func (t *ByteTranscoder) consumeCommitted(b byte, emit func(byte)) {
	switch t.encoding {
	case UTF8Encoding:
		t.utf8.Consume(b, emit)
	case UTF16BEEncoding, UTF16LEEncoding:
		t.assembly = append(t.assembly, b)
		if len(t.assembly) < 2 {
			return
		}
		var u uint16
		if t.encoding == UTF16BEEncoding {
			u = uint16(t.assembly[0])<<8 | uint16(t.assembly[1])
		} else {
			u = uint16(t.assembly[0]) | uint16(t.assembly[1])<<8
		}
		t.assembly = t.assembly[:0]
		t.u16.Consume(u, emit)
	case UTF32BEEncoding, UTF32LEEncoding:
		t.assembly = append(t.assembly, b)
		if len(t.assembly) < 4 {
			return
		}
		var v uint32
		if t.encoding == UTF32BEEncoding {
			v = uint32(t.assembly[0])<<24 | uint32(t.assembly[1])<<16 | uint32(t.assembly[2])<<8 | uint32(t.assembly[3])
		} else {
			v = uint32(t.assembly[0]) | uint32(t.assembly[1])<<8 | uint32(t.assembly[2])<<16 | uint32(t.assembly[3])<<24
		}
		t.assembly = t.assembly[:0]
		t.u32.Consume(rune(v), emit)
	}
}

// Finish must be called exactly once after the final input byte.
func (t *ByteTranscoder) Finish(emit func(byte)) {
	if !t.committed {
		// Never saw enough bytes to determine a BOM; whatever was buffered
		// is itself the entire (short) input, so it commits to UTF-8.
		t.commitUTF8(emit)
	}
	switch t.encoding {
	case UTF8Encoding:
		t.utf8.Finish(emit)
	case UTF16BEEncoding, UTF16LEEncoding:
		t.u16.Finish(emit)
	case UTF32BEEncoding, UTF32LEEncoding:
		t.u32.Finish(emit)
	}
}
