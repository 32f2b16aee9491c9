package uri

// RemoveDotSegments implements RFC 3986 section 5.2.4 over the already
// split segment list, per spec.md section 4.2: "." segments and ".."
// segments (which pop the last output segment, if any) are consumed;
// empty segments are kept; a trailing directory (the path ended in "."
// or ".." or an empty segment) gets one empty segment appended unless it
// already ends in one.
func RemoveDotSegments(p Path) Path {
	var out []string
	dir := false
	for _, seg := range p.Segments {
		switch seg {
		case ".":
			dir = true
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			dir = true
		case "":
			out = append(out, "")
			dir = true
		default:
			out = append(out, seg)
			dir = false
		}
	}
	if dir && (len(out) == 0 || out[len(out)-1] != "") {
		out = append(out, "")
	}
	return Path{Absolute: p.Absolute, Segments: out}
}
