package dnssec

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/ed448"
)

// Rand returns the process-wide secure random source used when a caller
// passes no explicit one. It is crypto/rand and never changes; tests
// inject their own readers per call instead of mutating shared state.
func Rand() io.Reader { return rand.Reader }

func orDefaultRand(rng io.Reader) io.Reader {
	if rng == nil {
		return Rand()
	}
	return rng
}

// Sign produces the on-wire signature of msg under priv for the given
// algorithm: PKCS#1 v1.5 for the RSA family, raw fixed-width R|S for
// ECDSA, and RFC 8032 for the EdDSA family. rng feeds RSA blinding; nil
// selects the process default. GOST signing is not implemented (the
// algorithm is verify-only here), and the retired DSA/RSAMD5 algorithms
// are rejected outright.
func Sign(priv crypto.Signer, alg uint8, rng io.Reader, msg []byte) ([]byte, error) {
	rng = orDefaultRand(rng)
	switch alg {
	case AlgRSASHA1, AlgRSASHA1NSEC3SHA1, AlgRSASHA256, AlgRSASHA512:
		h := algorithmToHash[alg]
		s := h.New()
		s.Write(msg)
		return priv.Sign(rng, s.Sum(nil), h)

	case AlgECDSAP256SHA256, AlgECDSAP384SHA384:
		h := algorithmToHash[alg]
		s := h.New()
		s.Write(msg)
		der, err := priv.Sign(rng, s.Sum(nil), h)
		if err != nil {
			return nil, err
		}
		return ecdsaDERToRaw(der, curveSize(alg))

	case AlgED25519:
		return priv.Sign(rng, msg, crypto.Hash(0))

	case AlgED448:
		key, ok := priv.(ed448.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: ED448 requires an ed448 private key", ErrUnsupportedAlgorithm)
		}
		return ed448.Sign(key, msg, ""), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, AlgorithmName(alg))
	}
}

// MarshalPrivateKey serializes a signing key for storage: PKCS#8 DER for
// the algorithms the x509 package understands, the RFC 8032 seed for
// Ed448 (which x509 does not cover).
func MarshalPrivateKey(alg uint8, priv crypto.Signer) ([]byte, error) {
	switch alg {
	case AlgED448:
		key, ok := priv.(ed448.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: ED448 requires an ed448 private key", ErrUnsupportedAlgorithm)
		}
		return key.Seed(), nil
	default:
		return x509.MarshalPKCS8PrivateKey(priv)
	}
}

// ParsePrivateKey reverses MarshalPrivateKey and checks the key matches
// the declared algorithm family.
func ParsePrivateKey(alg uint8, blob []byte) (crypto.Signer, error) {
	if alg == AlgED448 {
		if len(blob) != ed448.SeedSize {
			return nil, fmt.Errorf("%w: ED448 seed of %d bytes", ErrUnsupportedAlgorithm, len(blob))
		}
		return ed448.NewKeyFromSeed(blob), nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(blob)
	if err != nil {
		return nil, err
	}
	switch key := parsed.(type) {
	case *rsa.PrivateKey:
		switch alg {
		case AlgRSASHA1, AlgRSASHA1NSEC3SHA1, AlgRSASHA256, AlgRSASHA512:
			return key, nil
		}
	case *ecdsa.PrivateKey:
		switch alg {
		case AlgECDSAP256SHA256, AlgECDSAP384SHA384:
			return key, nil
		}
	case ed25519.PrivateKey:
		if alg == AlgED25519 {
			return key, nil
		}
	}
	return nil, fmt.Errorf("%w: stored key does not match algorithm %s", ErrUnsupportedAlgorithm, AlgorithmName(alg))
}
