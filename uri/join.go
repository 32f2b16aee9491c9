package uri

// Join resolves reference against base per RFC 3986 section 5.2.2,
// grounded on the case analysis in
// _examples/original_source/lib/uri/uri.cpp's resolve function. base must
// itself be an absolute URI (it must carry a Scheme); ref may be any URI
// reference.
func Join(base, ref Parts) Parts {
	var out Parts
	out.Scheme = base.Scheme

	switch {
	case ref.Scheme != nil:
		out.Scheme = ref.Scheme
		out.Authority = ref.Authority
		out.Path = RemoveDotSegments(ref.Path)
		out.Query = ref.Query
	case ref.Authority != nil:
		out.Authority = ref.Authority
		out.Path = RemoveDotSegments(ref.Path)
		out.Query = ref.Query
	case len(ref.Path.Segments) == 0:
		out.Authority = base.Authority
		out.Path = base.Path
		if ref.Query != nil {
			out.Query = ref.Query
		} else {
			out.Query = base.Query
		}
	case ref.Path.Absolute:
		out.Authority = base.Authority
		out.Path = RemoveDotSegments(ref.Path)
		out.Query = ref.Query
	default:
		out.Authority = base.Authority
		out.Path = RemoveDotSegments(mergePaths(base, ref.Path))
		out.Query = ref.Query
	}
	out.Fragment = ref.Fragment
	return out
}

// mergePaths implements RFC 3986 section 5.3's "merge" routine: if base
// has an authority and an empty path, the reference path is prefixed with
// a single "/"; otherwise the reference path replaces everything in
// base's path after its last "/".
func mergePaths(base Parts, ref Path) Path {
	if base.Authority != nil && len(base.Path.Segments) == 0 {
		return Path{Absolute: true, Segments: ref.Segments}
	}
	if len(base.Path.Segments) == 0 {
		return ref
	}
	merged := make([]string, 0, len(base.Path.Segments)-1+len(ref.Segments))
	merged = append(merged, base.Path.Segments[:len(base.Path.Segments)-1]...)
	merged = append(merged, ref.Segments...)
	return Path{Absolute: base.Path.Absolute, Segments: merged}
}
