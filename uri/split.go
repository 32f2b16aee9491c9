package uri

import (
	"regexp"
	"strings"
)

// The RFC 3986 Appendix B decomposition regular expression, one variant
// requiring a scheme (for Split, the "URI" production) and one making it
// optional (for SplitReference, the "URI-reference" production). Grounded
// on the same regex-based decomposition _examples/other_examples's
// contomap-iri and pascaldekloe-did packages use for their own RFC
// 3986/3987 parsers, adapted to the scheme/authority/path/query/fragment
// shape spec.md section 4.4 asks for.
// Capture groups, common to both patterns: 1=scheme 2="//"+authority
// 3=authority 4=path 5="?"+query 6=query 7="#"+fragment 8=fragment. Groups
// 2, 5 and 7 exist purely so presence can be distinguished from an empty
// capture (an empty authority/query/fragment still matches group 2/5/7).
var (
	uriRE          = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9+.\-]*):(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?$`)
	uriReferenceRE = regexp.MustCompile(`^(?:([a-zA-Z][a-zA-Z0-9+.\-]*):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?$`)
)

// Split decomposes s as an absolute "URI" (scheme required). It reports
// false, with no distinguished error, if s does not match the grammar —
// per spec.md section 7, "the grammar matched or it did not".
func Split(s string) (Parts, bool) {
	return split(uriRE, s, true)
}

// SplitReference decomposes s as a "URI-reference" (scheme optional).
func SplitReference(s string) (Parts, bool) {
	return split(uriReferenceRE, s, false)
}

func split(re *regexp.Regexp, s string, requireScheme bool) (Parts, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return Parts{}, false
	}
	scheme, hasAuthority, authority, path := m[1], m[2], m[3], m[4]
	hasQuery, query, hasFragment, fragment := m[5], m[6], m[7], m[8]
	if requireScheme && scheme == "" {
		return Parts{}, false
	}
	var p Parts
	if scheme != "" {
		p.Scheme = &scheme
	}
	if hasAuthority != "" {
		a := splitAuthority(authority)
		p.Authority = &a
	}
	p.Path = splitPath(path)
	if hasQuery != "" {
		q := query
		p.Query = &q
	}
	if hasFragment != "" {
		f := fragment
		p.Fragment = &f
	}
	return p, true
}

// splitAuthority decomposes an authority string into userinfo/host/port,
// respecting IPv6 literals ("[::1]") whose own colons are not port
// separators.
func splitAuthority(s string) Authority {
	var a Authority
	rest := s
	if at := strings.LastIndexByte(rest, '@'); at >= 0 {
		ui := rest[:at]
		a.UserInfo = &ui
		rest = rest[at+1:]
	}
	if strings.HasPrefix(rest, "[") {
		if end := strings.IndexByte(rest, ']'); end >= 0 {
			a.Host = rest[:end+1]
			remainder := rest[end+1:]
			if port, ok := strings.CutPrefix(remainder, ":"); ok {
				a.Port = &port
			}
			return a
		}
	}
	if idx := strings.LastIndexByte(rest, ':'); idx >= 0 {
		a.Host = rest[:idx]
		port := rest[idx+1:]
		a.Port = &port
	} else {
		a.Host = rest
	}
	return a
}

// splitPath decomposes a raw path string into its absolute flag and
// segments, per spec.md section 4.2's "Path decomposition".
func splitPath(p string) Path {
	absolute := strings.HasPrefix(p, "/")
	content := p
	if absolute {
		content = p[1:]
	}
	if content == "" && !absolute {
		return Path{}
	}
	return Path{Absolute: absolute, Segments: strings.Split(content, "/")}
}
