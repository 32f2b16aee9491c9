package json

// Config is the parser's policy record: every resource bound and optional
// behavior is a field here rather than a compile-time constant, so a single
// binary can run several parsers with different limits.
type Config struct {
	// MaxLength bounds the decoded length, in bytes, of any one string or
	// object key. Exceeding it is ErrStringTooLong.
	MaxLength int
	// MaxStackDepth bounds the matcher stack when an array or object is
	// opened. The stack's two base frames count toward it, so at most
	// MaxStackDepth-2 arrays and objects may nest; string, number and token
	// frames are not checked. Exceeding it is ErrNestingTooDeep. Must be >= 2.
	MaxStackDepth int
	// PosTracking enables 1-based line/column coordinates on ParseError.
	// When false, Line and Column are always zero.
	PosTracking bool
	// DisableFloat rejects any number requiring fractional or exponent
	// parsing (float_type "none" in the policy record); only bare integers
	// are accepted. ErrNumberOutOfRange is reported for the rest.
	DisableFloat bool
}

// DefaultConfig returns the parser's default resource bounds: an 8-deep
// matcher stack, 64-byte strings, position tracking on, and float parsing
// enabled.
func DefaultConfig() Config {
	return Config{
		MaxLength:     64,
		MaxStackDepth: 8,
		PosTracking:   true,
		DisableFloat:  false,
	}
}

func (c Config) normalized() Config {
	if c.MaxStackDepth < 2 {
		c.MaxStackDepth = 2
	}
	if c.MaxLength <= 0 {
		c.MaxLength = 64
	}
	return c
}
