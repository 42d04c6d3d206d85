package dnssec

import (
	"crypto"
	"crypto/subtle"
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/common/rrdata"
	"github.com/haukened/rr-wire/internal/dns/common/wire"
)

// DS digest type numbers (RFC 3658, RFC 4509, RFC 5933, RFC 6605).
const (
	DigestSHA1   uint8 = 1
	DigestSHA256 uint8 = 2
	DigestGOST94 uint8 = 3
	DigestSHA384 uint8 = 4
)

// DigestToString maps digest type numbers to their mnemonics.
var DigestToString = map[uint8]string{
	DigestSHA1:   "SHA1",
	DigestSHA256: "SHA256",
	DigestGOST94: "GOST94",
	DigestSHA384: "SHA384",
}

// digestInput builds the RFC 4034 section 5.1.4 hash input: the canonical
// owner name concatenated with the canonical DNSKEY rdata.
func digestInput(owner string, key *rrdata.DNSKEY) ([]byte, error) {
	buf, err := wire.AppendCanonicalName(nil, owner)
	if err != nil {
		return nil, err
	}
	keywire, err := rrdata.PackBytes(key)
	if err != nil {
		return nil, err
	}
	return append(buf, keywire...), nil
}

// ComputeDigest hashes owner|DNSKEY-rdata with the hash named by
// digestType. Unknown digest types are ErrUnsupportedDigest.
func ComputeDigest(owner string, key *rrdata.DNSKEY, digestType uint8) ([]byte, error) {
	input, err := digestInput(owner, key)
	if err != nil {
		return nil, err
	}
	switch digestType {
	case DigestSHA1, DigestSHA256, DigestSHA384:
		var h crypto.Hash
		switch digestType {
		case DigestSHA1:
			h = crypto.SHA1
		case DigestSHA256:
			h = crypto.SHA256
		case DigestSHA384:
			h = crypto.SHA384
		}
		s := h.New()
		s.Write(input)
		return s.Sum(nil), nil
	case DigestGOST94:
		return gost94Digest(input)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDigest, digestType)
	}
}

// NewDS derives a DS payload binding key at owner, with the digest type
// selecting the hash.
func NewDS(owner string, key *rrdata.DNSKEY, digestType uint8) (*rrdata.DS, error) {
	tag, err := KeyTag(key)
	if err != nil {
		return nil, err
	}
	digest, err := ComputeDigest(owner, key, digestType)
	if err != nil {
		return nil, err
	}
	return &rrdata.DS{
		KeyTag:     tag,
		Algorithm:  key.Algorithm,
		DigestType: digestType,
		Digest:     digest,
	}, nil
}

// Covers reports whether ds is a valid binding of key at owner: matching
// algorithm, matching key tag, and a recomputed digest that equals the
// published one under constant-time comparison. Digest types without an
// implementation return ErrUnsupportedDigest rather than a silent match.
func Covers(ds *rrdata.DS, owner string, key *rrdata.DNSKEY) (bool, error) {
	if ds.Algorithm != key.Algorithm {
		return false, nil
	}
	tag, err := KeyTag(key)
	if err != nil {
		return false, err
	}
	if tag != ds.KeyTag {
		return false, nil
	}
	digest, err := ComputeDigest(owner, key, ds.DigestType)
	if err != nil {
		return false, err
	}
	if len(digest) != len(ds.Digest) {
		return false, nil
	}
	return subtle.ConstantTimeCompare(digest, ds.Digest) == 1, nil
}
