package uri

import "strings"

// Compose serializes p back into its string form, the inverse of Split
// and SplitReference. No percent-encoding or decoding is performed here:
// callers that need encoded output should run segments/query/fragment
// through uri/pct.Encode with the appropriate EncodeSet before placing
// them into the corresponding Parts fields.
func Compose(p Parts) string {
	var b strings.Builder
	if p.Scheme != nil {
		b.WriteString(*p.Scheme)
		b.WriteByte(':')
	}
	if p.Authority != nil {
		b.WriteString("//")
		composeAuthority(&b, *p.Authority)
	}
	composePath(&b, p.Path, p.Authority != nil)
	if p.Query != nil {
		b.WriteByte('?')
		b.WriteString(*p.Query)
	}
	if p.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*p.Fragment)
	}
	return b.String()
}

func composeAuthority(b *strings.Builder, a Authority) {
	if a.UserInfo != nil {
		b.WriteString(*a.UserInfo)
		b.WriteByte('@')
	}
	b.WriteString(a.Host)
	if a.Port != nil {
		b.WriteByte(':')
		b.WriteString(*a.Port)
	}
}

// composePath writes p's segments joined by "/", prefixing a leading "/"
// when p.Absolute is set or an authority is present (path-abempty is
// implicitly absolute after an authority, per Parts.Equal's Open Question
// resolution).
func composePath(b *strings.Builder, p Path, hasAuthority bool) {
	if len(p.Segments) == 0 {
		if p.Absolute && !hasAuthority {
			b.WriteByte('/')
		}
		return
	}
	if p.Absolute || hasAuthority {
		b.WriteByte('/')
	}
	for i, seg := range p.Segments {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(seg)
	}
}
