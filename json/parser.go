package json

import (
	"math"

	"github.com/mcvoid/peej/unicode"
)

/*
This is a pushdown automaton, ported from and generalized out of
Doug Crockford's json-c state tables (the shape mcvoid/json's original
parser.go used): a stack of state tags, one matcher family per JSON
grammar production, and explicit push/pop actions standing in for
recursion. Each code point is offered to the top of the stack until
some matcher consumes it; a matcher that doesn't want the code point
pops (or reconfigures) without consuming, so the same code point is
re-offered to whatever is now on top.

The teacher's flat state enum is replaced here by an 8-bit tag split
into a 3-bit group and a 5-bit sub-state, matching a state's two
questions: which matcher owns this frame, and where within its own
grammar it currently sits.
*/

type groupTag uint8

const (
	groupRoot groupTag = iota
	groupToken
	groupString
	groupNumber
	groupArray
	groupObject
	groupEOF
)

type stateTag uint8

func tag(g groupTag, sub uint8) stateTag { return stateTag(g)<<5 | stateTag(sub&0x1F) }
func (s stateTag) group() groupTag       { return groupTag(s >> 5) }
func (s stateTag) sub() uint8            { return uint8(s & 0x1F) }

const rootStart uint8 = 0

const tokMatching uint8 = 0

const (
	strNormal uint8 = iota
	strEscape
	strHex1
	strHex2
	strHex3
	strHex4
)

const (
	numStart uint8 = iota
	numIntInitial
	numZero
	numIntDigit
	numFracInitial
	numFracDigit
	numExpSign
	numExpInitial
	numExpDigit
)

const (
	arrFirst uint8 = iota
	arrComma
	arrAfterComma
)

const (
	objFirstKey uint8 = iota
	objAfterComma
	objColon
	objValue
	objComma
)

const eofStart uint8 = 0

// eofRune is offered to the automaton once real input is exhausted; it
// never matches a real grammar character, so every matcher's "anything
// else" branch also correctly handles true end-of-input.
const eofRune rune = -1

type tokenResult int

const (
	tokTrue tokenResult = iota
	tokFalse
	tokNull
)

// Parser is the streaming pushdown automaton. Create one with NewParser,
// feed it input with Write, and call Eof exactly once when the input is
// exhausted.
type Parser struct {
	cfg     Config
	backend Backend

	stack []stateTag

	err error
	pos int
	line, col int
	crArmed bool

	u8to32 *unicode.UTF8To32

	strBuf   []byte
	strIsKey bool
	strU16   *unicode.UTF16To8
	strU32   *unicode.UTF32To8
	hex      uint16

	numNeg        bool
	numIsFloat    bool
	numInt        uint64
	numFloatVal   float64
	numFracPart   float64
	numFracDigits uint64
	numExponent   uint64
	numExpNeg     bool

	tokRemaining string
	tokResult    tokenResult
}

// NewParser returns a Parser ready to accept input under cfg, delivering
// events to backend.
func NewParser(cfg Config, backend Backend) *Parser {
	cfg = cfg.normalized()
	p := &Parser{
		cfg:     cfg,
		backend: backend,
		u8to32:  unicode.NewUTF8To32(),
	}
	p.stack = make([]stateTag, 0, cfg.MaxStackDepth)
	p.stack = append(p.stack, tag(groupEOF, eofStart), tag(groupRoot, rootStart))
	if cfg.PosTracking {
		p.line, p.col = 1, 1
	}
	return p
}

func (p *Parser) errorf(kind ErrorKind) error {
	return newParseError(kind, p.pos, p.line, p.col, p.cfg.PosTracking)
}

// push adds a container frame (array or object) to the stack, enforcing
// MaxStackDepth: this is what "nesting depth" means. Only array and
// object matchers nest; string, number and token matchers are leaf
// values that never contain another value, so they don't spend the
// nesting budget (see pushLeaf).
func (p *Parser) push(t stateTag) error {
	if len(p.stack) >= p.cfg.MaxStackDepth {
		return p.errorf(ErrNestingTooDeep)
	}
	p.stack = append(p.stack, t)
	return nil
}

// pushLeaf adds a string, number or token matcher frame. These stand in
// for the single-slot "storage" of a value-in-progress rather than
// grammar nesting, so they're never rejected for depth.
func (p *Parser) pushLeaf(t stateTag) {
	p.stack = append(p.stack, t)
}

func (p *Parser) pop() stateTag {
	t := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return t
}

func (p *Parser) top() stateTag          { return p.stack[len(p.stack)-1] }
func (p *Parser) setTop(t stateTag)      { p.stack[len(p.stack)-1] = t }

// Write feeds input bytes to the parser. It may be called any number of
// times with successive chunks; Eof must be called exactly once after
// the final chunk.
func (p *Parser) Write(data []byte) error {
	for _, b := range data {
		if p.err != nil {
			return p.err
		}
		p.u8to32.Consume(b, func(cp rune) { p.feedRune(cp) })
		p.pos++
	}
	return p.err
}

// Position reports the parser's current cursor position: the line and
// column of the next code point Write would consume. Both are 1-based and
// both are zero if Config.PosTracking is off. A ParseError carries this
// same cursor position as it stood when the error was detected; the start
// of the offending token is not tracked.
func (p *Parser) Position() (line, col int) { return p.line, p.col }

// Eof signals end of input and returns the backend's aggregated result.
// It is safe to call even after an error: the backend's Result is always
// invoked, per spec.md's "eof() returns the consumer's result() regardless".
func (p *Parser) Eof() (any, error) {
	if p.err == nil {
		p.u8to32.Finish(func(cp rune) { p.feedRune(cp) })
	}
	for p.err == nil && len(p.stack) > 0 {
		top := p.top()
		if top.group() == groupEOF {
			p.pop()
			break
		}
		if _, err := p.step(top, eofRune); err != nil {
			p.err = err
		}
	}
	result, rerr := p.backend.Result()
	if p.err == nil {
		p.err = rerr
	}
	return result, p.err
}

func (p *Parser) feedRune(cp rune) {
	for p.err == nil {
		if len(p.stack) == 0 {
			return
		}
		consumed, err := p.step(p.top(), cp)
		if err != nil {
			p.err = err
			return
		}
		if consumed {
			p.advance(cp)
			return
		}
	}
}

// advance updates position bookkeeping for one consumed code point. CR
// advances the line and arms a one-character look-ahead so a following
// LF is swallowed as the same line terminator, matching spec.md's CRLF
// rule.
func (p *Parser) advance(cp rune) {
	if !p.cfg.PosTracking {
		return
	}
	switch cp {
	case '\n':
		if p.crArmed {
			p.crArmed = false
		} else {
			p.line++
			p.col = 1
		}
	case '\r':
		p.line++
		p.col = 1
		p.crArmed = true
	default:
		p.crArmed = false
		p.col++
	}
}

func isWhitespace(cp rune) bool {
	return cp == ' ' || cp == '\t' || cp == '\n' || cp == '\r'
}

func (p *Parser) step(top stateTag, cp rune) (bool, error) {
	switch top.group() {
	case groupRoot:
		return p.stepRoot(cp)
	case groupToken:
		return p.stepToken(cp)
	case groupString:
		return p.stepString(top.sub(), cp)
	case groupNumber:
		return p.stepNumber(top.sub(), cp)
	case groupArray:
		return p.stepArray(top.sub(), cp)
	case groupObject:
		return p.stepObject(top.sub(), cp)
	case groupEOF:
		return p.stepEOF(cp)
	}
	return true, p.errorf(ErrUnrecognizedToken)
}

// afterValue runs once a value (of any kind) has just been emitted and
// its own matcher frame popped. It advances whatever frame is now on
// top: an array waits for a comma or close, an object waits for a colon
// (after a key) or a comma/close (after a value), and a lone top-level
// value pops the root frame, leaving only eof.
func (p *Parser) afterValue(wasKey bool) error {
	if len(p.stack) == 0 {
		return nil
	}
	switch top := p.top(); top.group() {
	case groupArray:
		p.setTop(tag(groupArray, arrComma))
	case groupObject:
		if wasKey {
			p.setTop(tag(groupObject, objColon))
		} else {
			p.setTop(tag(groupObject, objComma))
		}
	case groupRoot:
		p.pop()
	}
	return nil
}

// dispatchValue pushes the matcher for whatever value starts at cp;
// fallback names the ErrorKind to report when cp starts nothing valid,
// letting callers distinguish "expected a value" from "expected an
// array member" from "expected an object member".
func (p *Parser) dispatchValue(cp rune, fallback ErrorKind) (bool, error) {
	switch {
	case cp == '-' || (cp >= '0' && cp <= '9'):
		if err := p.pushNumber(); err != nil {
			return false, err
		}
		return false, nil
	case cp == '"':
		if err := p.pushString(false); err != nil {
			return false, err
		}
		return true, nil
	case cp == 't':
		if err := p.pushToken("rue", tokTrue); err != nil {
			return false, err
		}
		return true, nil
	case cp == 'f':
		if err := p.pushToken("alse", tokFalse); err != nil {
			return false, err
		}
		return true, nil
	case cp == 'n':
		if err := p.pushToken("ull", tokNull); err != nil {
			return false, err
		}
		return true, nil
	case cp == '[':
		if err := p.pushArray(); err != nil {
			return false, err
		}
		return true, nil
	case cp == '{':
		if err := p.pushObject(); err != nil {
			return false, err
		}
		return true, nil
	default:
		return true, p.errorf(fallback)
	}
}

func (p *Parser) stepRoot(cp rune) (bool, error) {
	if isWhitespace(cp) {
		return true, nil
	}
	return p.dispatchValue(cp, ErrExpectedToken)
}

func (p *Parser) stepEOF(cp rune) (bool, error) {
	if isWhitespace(cp) {
		return true, nil
	}
	return true, p.errorf(ErrUnexpectedExtraInput)
}

// --- token matcher ---

func (p *Parser) pushToken(remaining string, result tokenResult) error {
	p.pushLeaf(tag(groupToken, tokMatching))
	p.tokRemaining = remaining
	p.tokResult = result
	return nil
}

func (p *Parser) stepToken(cp rune) (bool, error) {
	if cp == eofRune || rune(p.tokRemaining[0]) != cp {
		return true, p.errorf(ErrUnrecognizedToken)
	}
	p.tokRemaining = p.tokRemaining[1:]
	if len(p.tokRemaining) > 0 {
		return true, nil
	}
	p.pop()
	var err error
	switch p.tokResult {
	case tokTrue:
		err = p.backend.BooleanValue(true)
	case tokFalse:
		err = p.backend.BooleanValue(false)
	case tokNull:
		err = p.backend.NullValue()
	}
	if err != nil {
		return true, err
	}
	if err := p.afterValue(false); err != nil {
		return true, err
	}
	return true, nil
}

// --- array matcher ---

func (p *Parser) pushArray() error {
	if err := p.push(tag(groupArray, arrFirst)); err != nil {
		return err
	}
	return p.backend.BeginArray()
}

func (p *Parser) stepArray(sub uint8, cp rune) (bool, error) {
	switch sub {
	case arrFirst:
		if isWhitespace(cp) {
			return true, nil
		}
		if cp == ']' {
			p.pop()
			if err := p.backend.EndArray(); err != nil {
				return true, err
			}
			if err := p.afterValue(false); err != nil {
				return true, err
			}
			return true, nil
		}
		return p.dispatchValue(cp, ErrExpectedArrayMember)
	case arrComma:
		if isWhitespace(cp) {
			return true, nil
		}
		switch cp {
		case ',':
			p.setTop(tag(groupArray, arrAfterComma))
			return true, nil
		case ']':
			p.pop()
			if err := p.backend.EndArray(); err != nil {
				return true, err
			}
			if err := p.afterValue(false); err != nil {
				return true, err
			}
			return true, nil
		default:
			return true, p.errorf(ErrExpectedArrayMember)
		}
	case arrAfterComma:
		if isWhitespace(cp) {
			return true, nil
		}
		return p.dispatchValue(cp, ErrExpectedArrayMember)
	}
	return true, p.errorf(ErrUnrecognizedToken)
}

// --- object matcher ---

func (p *Parser) pushObject() error {
	if err := p.push(tag(groupObject, objFirstKey)); err != nil {
		return err
	}
	return p.backend.BeginObject()
}

func (p *Parser) stepObject(sub uint8, cp rune) (bool, error) {
	switch sub {
	case objFirstKey:
		if isWhitespace(cp) {
			return true, nil
		}
		if cp == '}' {
			p.pop()
			if err := p.backend.EndObject(); err != nil {
				return true, err
			}
			if err := p.afterValue(false); err != nil {
				return true, err
			}
			return true, nil
		}
		if cp == '"' {
			if err := p.pushString(true); err != nil {
				return false, err
			}
			return true, nil
		}
		return true, p.errorf(ErrExpectedObjectKey)
	case objAfterComma:
		if isWhitespace(cp) {
			return true, nil
		}
		if cp == '"' {
			if err := p.pushString(true); err != nil {
				return false, err
			}
			return true, nil
		}
		return true, p.errorf(ErrExpectedObjectKey)
	case objColon:
		if isWhitespace(cp) {
			return true, nil
		}
		if cp == ':' {
			p.setTop(tag(groupObject, objValue))
			return true, nil
		}
		return true, p.errorf(ErrExpectedColon)
	case objValue:
		if isWhitespace(cp) {
			return true, nil
		}
		return p.dispatchValue(cp, ErrExpectedObjectMember)
	case objComma:
		if isWhitespace(cp) {
			return true, nil
		}
		switch cp {
		case ',':
			p.setTop(tag(groupObject, objAfterComma))
			return true, nil
		case '}':
			p.pop()
			if err := p.backend.EndObject(); err != nil {
				return true, err
			}
			if err := p.afterValue(false); err != nil {
				return true, err
			}
			return true, nil
		default:
			return true, p.errorf(ErrExpectedObjectMember)
		}
	}
	return true, p.errorf(ErrUnrecognizedToken)
}

// --- string matcher ---

func (p *Parser) pushString(isKey bool) error {
	p.pushLeaf(tag(groupString, strNormal))
	p.strBuf = p.strBuf[:0]
	p.strIsKey = isKey
	p.strU16 = unicode.NewUTF16To8()
	p.strU32 = unicode.NewUTF32To8()
	p.hex = 0
	return nil
}

func (p *Parser) appendBytes(bs []byte) error {
	if len(bs) == 0 {
		return nil
	}
	if len(p.strBuf)+len(bs) > p.cfg.MaxLength {
		return p.errorf(ErrStringTooLong)
	}
	p.strBuf = append(p.strBuf, bs...)
	return nil
}

func (p *Parser) appendCodePoint(cp rune) error {
	var buf [4]byte
	n := 0
	p.strU32.Consume(cp, func(b byte) {
		if n < len(buf) {
			buf[n] = b
			n++
		}
	})
	return p.appendBytes(buf[:n])
}

func (p *Parser) appendUTF16Unit(u uint16) error {
	var buf [4]byte
	n := 0
	p.strU16.Consume(u, func(b byte) {
		if n < len(buf) {
			buf[n] = b
			n++
		}
	})
	return p.appendBytes(buf[:n])
}

func hexDigitValue(cp rune) (uint16, bool) {
	switch {
	case cp >= '0' && cp <= '9':
		return uint16(cp - '0'), true
	case cp >= 'a' && cp <= 'f':
		return uint16(cp-'a') + 10, true
	case cp >= 'A' && cp <= 'F':
		return uint16(cp-'A') + 10, true
	}
	return 0, false
}

func (p *Parser) stepString(sub uint8, cp rune) (bool, error) {
	if cp == eofRune && sub != strEscape {
		return true, p.errorf(ErrExpectedCloseQuote)
	}
	switch sub {
	case strNormal:
		switch {
		case cp == '"':
			if p.strU16.Partial() {
				return true, p.errorf(ErrBadUnicodeCodePoint)
			}
			isKey := p.strIsKey
			s := string(p.strBuf)
			p.pop()
			var err error
			if isKey {
				err = p.backend.Key(s)
			} else {
				err = p.backend.StringValue(s)
			}
			if err != nil {
				return true, err
			}
			if err := p.afterValue(isKey); err != nil {
				return true, err
			}
			return true, nil
		case cp == '\\':
			// A pending high surrogate is only resolved by deciding whether
			// this escape is "\u"; that check lives in the strEscape case
			// below, once cp names the actual escape character.
			p.setTop(tag(groupString, strEscape))
			return true, nil
		case cp <= 0x1F:
			return true, p.errorf(ErrBadUnicodeCodePoint)
		default:
			if p.strU16.Partial() {
				return true, p.errorf(ErrBadUnicodeCodePoint)
			}
			if err := p.appendCodePoint(cp); err != nil {
				return true, err
			}
			return true, nil
		}
	case strEscape:
		if cp == eofRune {
			return true, p.errorf(ErrExpectedCloseQuote)
		}
		if p.strU16.Partial() && cp != 'u' {
			return true, p.errorf(ErrBadUnicodeCodePoint)
		}
		var literal byte
		switch cp {
		case '"':
			literal = '"'
		case '\\':
			literal = '\\'
		case '/':
			literal = '/'
		case 'b':
			literal = '\b'
		case 'f':
			literal = '\f'
		case 'n':
			literal = '\n'
		case 'r':
			literal = '\r'
		case 't':
			literal = '\t'
		case 'u':
			p.hex = 0
			p.setTop(tag(groupString, strHex1))
			return true, nil
		default:
			return true, p.errorf(ErrInvalidEscapeChar)
		}
		if err := p.appendBytes([]byte{literal}); err != nil {
			return true, err
		}
		p.setTop(tag(groupString, strNormal))
		return true, nil
	case strHex1, strHex2, strHex3, strHex4:
		d, ok := hexDigitValue(cp)
		if !ok {
			return true, p.errorf(ErrInvalidHexChar)
		}
		p.hex = p.hex<<4 | d
		switch sub {
		case strHex1:
			p.setTop(tag(groupString, strHex2))
		case strHex2:
			p.setTop(tag(groupString, strHex3))
		case strHex3:
			p.setTop(tag(groupString, strHex4))
		case strHex4:
			if err := p.appendUTF16Unit(p.hex); err != nil {
				return true, err
			}
			p.setTop(tag(groupString, strNormal))
		}
		return true, nil
	}
	return true, p.errorf(ErrUnrecognizedToken)
}

// --- number matcher ---

func (p *Parser) pushNumber() error {
	p.pushLeaf(tag(groupNumber, numStart))
	p.numNeg = false
	p.numIsFloat = false
	p.numInt = 0
	p.numFloatVal = 0
	p.numFracPart = 0
	p.numFracDigits = 0
	p.numExponent = 0
	p.numExpNeg = false
	return nil
}

func (p *Parser) promoteToFloat() {
	p.numIsFloat = true
	p.numFloatVal = float64(p.numInt)
}

func addDigit(acc, d uint64) (uint64, bool) {
	if acc > (math.MaxUint64-d)/10 {
		return 0, false
	}
	return acc*10 + d, true
}

// machineEpsilonFloat64 is the spacing between 1.0 and the next larger
// float64, used for the "is this float secretly an integer" test.
const machineEpsilonFloat64 = 2.220446049250313e-16

func (p *Parser) finalizeNumber() error {
	if !p.numIsFloat {
		const absIntMin = uint64(math.MaxInt64) + 1
		if p.numNeg {
			if p.numInt > absIntMin {
				return p.errorf(ErrNumberOutOfRange)
			}
			if p.numInt == absIntMin {
				return p.backend.IntegerValue(math.MinInt64)
			}
			return p.backend.IntegerValue(-int64(p.numInt))
		}
		if p.numInt > uint64(math.MaxInt64) {
			return p.errorf(ErrNumberOutOfRange)
		}
		return p.backend.IntegerValue(int64(p.numInt))
	}

	value := p.numFloatVal
	if p.numFracDigits > 0 {
		value += p.numFracPart / math.Pow(10, float64(p.numFracDigits))
	}
	exp := float64(p.numExponent)
	if p.numExpNeg {
		exp = -exp
	}
	scale := math.Pow(10, exp)
	if math.IsInf(scale, 0) {
		return p.errorf(ErrNumberOutOfRange)
	}
	value *= scale
	if p.numNeg {
		value = -value
	}
	if math.IsInf(value, 0) {
		return p.errorf(ErrNumberOutOfRange)
	}

	trunc := math.Trunc(value)
	if math.Abs(value-trunc) < 128*machineEpsilonFloat64 &&
		trunc >= math.MinInt64 && trunc <= math.MaxInt64 {
		return p.backend.IntegerValue(int64(trunc))
	}
	return p.backend.FloatValue(value)
}

func (p *Parser) stepNumber(sub uint8, cp rune) (bool, error) {
	switch sub {
	case numStart:
		switch {
		case cp == '-':
			p.numNeg = true
			p.setTop(tag(groupNumber, numIntInitial))
			return true, nil
		case cp == '0':
			p.setTop(tag(groupNumber, numZero))
			return true, nil
		case cp >= '1' && cp <= '9':
			p.numInt = uint64(cp - '0')
			p.setTop(tag(groupNumber, numIntDigit))
			return true, nil
		}
		return true, p.errorf(ErrExpectedDigits)
	case numIntInitial:
		switch {
		case cp == '0':
			p.setTop(tag(groupNumber, numZero))
			return true, nil
		case cp >= '1' && cp <= '9':
			p.numInt = uint64(cp - '0')
			p.setTop(tag(groupNumber, numIntDigit))
			return true, nil
		}
		return true, p.errorf(ErrExpectedDigits)
	case numZero, numIntDigit:
		switch {
		case sub == numIntDigit && cp >= '0' && cp <= '9':
			v, ok := addDigit(p.numInt, uint64(cp-'0'))
			if !ok {
				return true, p.errorf(ErrNumberOutOfRange)
			}
			p.numInt = v
			return true, nil
		case cp == '.':
			if p.cfg.DisableFloat {
				return true, p.errorf(ErrNumberOutOfRange)
			}
			p.promoteToFloat()
			p.setTop(tag(groupNumber, numFracInitial))
			return true, nil
		case cp == 'e' || cp == 'E':
			if p.cfg.DisableFloat {
				return true, p.errorf(ErrNumberOutOfRange)
			}
			p.promoteToFloat()
			p.setTop(tag(groupNumber, numExpSign))
			return true, nil
		default:
			if err := p.finalizeNumber(); err != nil {
				return true, err
			}
			p.pop()
			if err := p.afterValue(false); err != nil {
				return true, err
			}
			return false, nil
		}
	case numFracInitial:
		if cp >= '0' && cp <= '9' {
			p.numFracDigits++
			p.numFracPart = p.numFracPart*10 + float64(cp-'0')
			p.setTop(tag(groupNumber, numFracDigit))
			return true, nil
		}
		return true, p.errorf(ErrExpectedDigits)
	case numFracDigit:
		switch {
		case cp >= '0' && cp <= '9':
			p.numFracDigits++
			p.numFracPart = p.numFracPart*10 + float64(cp-'0')
			return true, nil
		case cp == 'e' || cp == 'E':
			p.setTop(tag(groupNumber, numExpSign))
			return true, nil
		default:
			if err := p.finalizeNumber(); err != nil {
				return true, err
			}
			p.pop()
			if err := p.afterValue(false); err != nil {
				return true, err
			}
			return false, nil
		}
	case numExpSign:
		switch {
		case cp == '+':
			p.setTop(tag(groupNumber, numExpInitial))
			return true, nil
		case cp == '-':
			p.numExpNeg = true
			p.setTop(tag(groupNumber, numExpInitial))
			return true, nil
		case cp >= '0' && cp <= '9':
			p.numExponent = uint64(cp - '0')
			p.setTop(tag(groupNumber, numExpDigit))
			return true, nil
		}
		return true, p.errorf(ErrExpectedDigits)
	case numExpInitial:
		if cp >= '0' && cp <= '9' {
			p.numExponent = uint64(cp - '0')
			p.setTop(tag(groupNumber, numExpDigit))
			return true, nil
		}
		return true, p.errorf(ErrExpectedDigits)
	case numExpDigit:
		if cp >= '0' && cp <= '9' {
			v, ok := addDigit(p.numExponent, uint64(cp-'0'))
			if !ok {
				return true, p.errorf(ErrNumberOutOfRange)
			}
			p.numExponent = v
			return true, nil
		}
		if err := p.finalizeNumber(); err != nil {
			return true, err
		}
		p.pop()
		if err := p.afterValue(false); err != nil {
			return true, err
		}
		return false, nil
	}
	return true, p.errorf(ErrUnrecognizedToken)
}
