package json

import (
	"errors"
	"io"
	"strings"
)

// Parse reads a single JSON document from r using DefaultConfig and
// returns it as a Value tree, matching the teacher package's original
// public entry point.
func Parse(r io.Reader) (*Value, error) {
	return ParseWithConfig(r, DefaultConfig())
}

// ParseWithConfig is Parse with an explicit resource policy.
func ParseWithConfig(r io.Reader, cfg Config) (*Value, error) {
	tb := NewTreeBackend()
	p := NewParser(cfg, tb)
	buf := make([]byte, 4096)
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			if werr := p.Write(buf[:n]); werr != nil {
				_, _ = p.Eof()
				return &Value{}, werr
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			return &Value{}, rerr
		}
	}
	result, err := p.Eof()
	if err != nil {
		return &Value{}, err
	}
	v, _ := result.(*Value)
	return v, nil
}

// ParseString parses a JSON document held entirely in memory.
func ParseString(s string) (*Value, error) {
	return Parse(strings.NewReader(s))
}

// ParseBytes parses a JSON document held entirely in memory.
func ParseBytes(b []byte) (*Value, error) {
	return ParseString(string(b))
}

// ParseWith drives cfg and backend over r, returning whatever the
// backend's Result produces. Use this to parse directly into a
// DiscardBackend (validate only) or a custom Backend.
func ParseWith(r io.Reader, cfg Config, backend Backend) (any, error) {
	p := NewParser(cfg, backend)
	buf := make([]byte, 4096)
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			if werr := p.Write(buf[:n]); werr != nil {
				return p.Eof()
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			return nil, rerr
		}
	}
	return p.Eof()
}
