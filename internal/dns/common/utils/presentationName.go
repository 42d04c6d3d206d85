package utils

import (
	"strings"

	"golang.org/x/net/idna"
)

// PresentationDNSName prepares a name taken from presentation input for wire
// encoding: surrounding whitespace is trimmed, Unicode labels are converted
// to their IDNA ASCII (xn--) form, and the result is lowercased without a
// trailing dot. Names that fail IDNA mapping are returned canonicalized but
// otherwise untouched; the wire layer rejects them if they carry non-ASCII
// octets.
func PresentationDNSName(name string) string {
	name = CanonicalDNSName(name)
	if isASCII(name) {
		return name
	}
	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return name
	}
	return CanonicalDNSName(ascii)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// UnicodeDNSName renders an ASCII (possibly xn--) name for display, mapping
// punycode labels back to Unicode. Used only on the presentation path.
func UnicodeDNSName(name string) string {
	uni, err := idna.Lookup.ToUnicode(name)
	if err != nil {
		return name
	}
	return strings.ToLower(uni)
}
