package punycode

import "strings"

const acePrefix = "xn--"

// EncodeLabel Punycode-encodes a single IDNA label. If the label is
// entirely ASCII it is returned unchanged; otherwise it is encoded and
// prefixed with "xn--".
func EncodeLabel(label string) (string, error) {
	runes := []rune(label)
	allBasic := true
	for _, r := range runes {
		if !isBasic(r) {
			allBasic = false
			break
		}
	}
	if allBasic {
		return label, nil
	}
	encoded, err := Encode(runes, false)
	if err != nil {
		return "", err
	}
	return acePrefix + encoded, nil
}

// DecodeLabel reverses EncodeLabel: a label beginning with "xn--"
// (case-insensitively) is stripped of that prefix and Punycode-decoded;
// any other label passes through unchanged. The case of the prefix match
// doesn't affect the decoded basic-code-point portion that follows it.
func DecodeLabel(label string) (string, error) {
	if len(label) < len(acePrefix) || !strings.EqualFold(label[:len(acePrefix)], acePrefix) {
		return label, nil
	}
	rest := label[len(acePrefix):]
	runes, err := Decode(rest)
	if err != nil {
		return "", err
	}
	return string(runes), nil
}

// EncodeHost splits a host on '.' and Punycode-encodes each label
// independently, per spec.md section 4.4's "IDNA host wrapping".
func EncodeHost(host string) (string, error) {
	labels := strings.Split(host, ".")
	for i, label := range labels {
		encoded, err := EncodeLabel(label)
		if err != nil {
			return "", err
		}
		labels[i] = encoded
	}
	return strings.Join(labels, "."), nil
}

// DecodeHost reverses EncodeHost label by label.
func DecodeHost(host string) (string, error) {
	labels := strings.Split(host, ".")
	for i, label := range labels {
		decoded, err := DecodeLabel(label)
		if err != nil {
			return "", err
		}
		labels[i] = decoded
	}
	return strings.Join(labels, "."), nil
}
