package uri

import "github.com/mcvoid/peej/uri/punycode"

// EncodeHost converts a Unicode host name to its ASCII-compatible (IDNA
// Punycode) form, label by label. Hosts that are already all-ASCII are
// returned unchanged.
func EncodeHost(host string) (string, error) {
	return punycode.EncodeHost(host)
}

// DecodeHost reverses EncodeHost, expanding any "xn--" labels back to
// Unicode.
func DecodeHost(host string) (string, error) {
	return punycode.DecodeHost(host)
}
