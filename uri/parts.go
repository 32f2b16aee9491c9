// Package uri implements the RFC 3986 URI reference grammar: decomposition
// into scheme/authority/path/query/fragment, dot-segment removal,
// reference resolution, composition, and validity checking, with
// percent-encoding and Punycode/IDNA support in the uri/pct and
// uri/punycode subpackages.
package uri

import "slices"

// Path is the decomposed path component of a URI: spec.md section 3.
type Path struct {
	// Absolute is true when the composed path begins with "/".
	Absolute bool
	// Segments are the raw, possibly percent-encoded, path segments
	// between "/" separators. A trailing empty segment indicates a
	// trailing "/".
	Segments []string
}

func (p Path) equal(o Path) bool {
	return slices.Equal(p.Segments, o.Segments)
}

// Authority is the decomposed authority component of a URI.
type Authority struct {
	UserInfo *string
	Host     string
	Port     *string
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (a Authority) equal(o Authority) bool {
	return strPtrEqual(a.UserInfo, o.UserInfo) && a.Host == o.Host && strPtrEqual(a.Port, o.Port)
}

// Parts is a fully decomposed URI reference, per spec.md section 3. The
// string fields are slices of the input the Parts value was split from;
// they remain valid as long as that input string is retained.
type Parts struct {
	Scheme    *string
	Authority *Authority
	Path      Path
	Query     *string
	Fragment  *string
}

// Equal reports whether p and o represent the same URI reference. Per
// spec.md section 9's preserved Open Question, the Path.Absolute flag is
// ignored when both sides have an authority: path-abempty is implicitly
// absolute inside an authority, so the flag carries no information there.
func (p Parts) Equal(o Parts) bool {
	if !strPtrEqual(p.Scheme, o.Scheme) || !strPtrEqual(p.Query, o.Query) || !strPtrEqual(p.Fragment, o.Fragment) {
		return false
	}
	switch {
	case p.Authority == nil && o.Authority == nil:
		// fallthrough to path comparison below
	case p.Authority != nil && o.Authority != nil:
		if !p.Authority.equal(*o.Authority) {
			return false
		}
		return p.Path.equal(o.Path)
	default:
		return false
	}
	return p.Path.Absolute == o.Path.Absolute && p.Path.equal(o.Path)
}

// EnsureAuthority returns p's authority, creating an empty one first if
// p.Authority is nil.
func (p *Parts) EnsureAuthority() *Authority {
	if p.Authority == nil {
		p.Authority = &Authority{}
	}
	return p.Authority
}
