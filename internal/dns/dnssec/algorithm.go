// Package dnssec implements the cryptographic half of the record core:
// key tags, DS digests, signing, verification, and key generation for the
// registered DNSSEC algorithms. It operates on the typed DNSKEY and DS
// payloads from the rrdata package and is deterministic apart from the
// injected random source used by signing and key generation.
package dnssec

import (
	"crypto"
	_ "crypto/sha1" // hash registrations for crypto.Hash.New
	_ "crypto/sha256"
	_ "crypto/sha512"
	"errors"
	"fmt"
)

// DNSSEC signing algorithm numbers (RFC 4034 appendix A.1 and successors).
const (
	AlgRSAMD5           uint8 = 1 // deprecated, key tag quirk only
	AlgDH               uint8 = 2
	AlgDSA              uint8 = 3
	AlgRSASHA1          uint8 = 5
	AlgDSANSEC3SHA1     uint8 = 6
	AlgRSASHA1NSEC3SHA1 uint8 = 7
	AlgRSASHA256        uint8 = 8
	AlgRSASHA512        uint8 = 10
	AlgECCGOST          uint8 = 12 // RFC 5933, verify only
	AlgECDSAP256SHA256  uint8 = 13
	AlgECDSAP384SHA384  uint8 = 14
	AlgED25519          uint8 = 15
	AlgED448            uint8 = 16
)

// AlgorithmToString maps algorithm numbers to their IANA mnemonics.
var AlgorithmToString = map[uint8]string{
	AlgRSAMD5:           "RSAMD5",
	AlgDH:               "DH",
	AlgDSA:              "DSA",
	AlgRSASHA1:          "RSASHA1",
	AlgDSANSEC3SHA1:     "DSA-NSEC3-SHA1",
	AlgRSASHA1NSEC3SHA1: "RSASHA1-NSEC3-SHA1",
	AlgRSASHA256:        "RSASHA256",
	AlgRSASHA512:        "RSASHA512",
	AlgECCGOST:          "ECC-GOST",
	AlgECDSAP256SHA256:  "ECDSAP256SHA256",
	AlgECDSAP384SHA384:  "ECDSAP384SHA384",
	AlgED25519:          "ED25519",
	AlgED448:            "ED448",
}

// AlgorithmFromString is the inverse of AlgorithmToString.
var AlgorithmFromString = func() map[string]uint8 {
	m := make(map[string]uint8, len(AlgorithmToString))
	for k, v := range AlgorithmToString {
		m[v] = k
	}
	return m
}()

// algorithmToHash gives the message hash for algorithms that pre-hash;
// the EdDSA algorithms sign the message directly and are absent.
var algorithmToHash = map[uint8]crypto.Hash{
	AlgRSASHA1:          crypto.SHA1,
	AlgRSASHA1NSEC3SHA1: crypto.SHA1,
	AlgRSASHA256:        crypto.SHA256,
	AlgRSASHA512:        crypto.SHA512,
	AlgECDSAP256SHA256:  crypto.SHA256,
	AlgECDSAP384SHA384:  crypto.SHA384,
}

// Sentinel errors for the crypto layer. A verification that fails
// cryptographically is ErrVerifyFailed, distinct from an algorithm or
// digest type this build has no implementation for, so callers can apply
// different policies to the two cases.
var (
	ErrUnsupportedAlgorithm = errors.New("dnssec: unsupported algorithm")
	ErrUnsupportedDigest    = errors.New("dnssec: unsupported digest type")
	ErrVerifyFailed         = errors.New("dnssec: verification failed")
)

// AlgorithmName renders an algorithm number for logs and presentation.
func AlgorithmName(alg uint8) string {
	if s, ok := AlgorithmToString[alg]; ok {
		return s
	}
	return fmt.Sprintf("ALG%d", alg)
}
