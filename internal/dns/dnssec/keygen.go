package dnssec

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"fmt"
	"io"
	"math/big"

	"github.com/cloudflare/circl/sign/ed448"

	"github.com/haukened/rr-wire/internal/dns/common/rrdata"
)

// RSA strengths for authoring: a key flagged as a secure entry point for a
// zone gets the stronger default.
const (
	rsaBitsZoneSEP = 2048
	rsaBitsOther   = 1024
)

// GenerateKey creates a signing key for alg and wraps its public half in a
// DNSKEY payload with the given flags and protocol 3. rng feeds key
// generation; nil selects the process default. The returned signer pairs
// with Sign and MarshalPrivateKey.
func GenerateKey(alg uint8, flags uint16, rng io.Reader) (*rrdata.DNSKEY, crypto.Signer, error) {
	rng = orDefaultRand(rng)

	var (
		priv crypto.Signer
		blob []byte
		err  error
	)
	switch alg {
	case AlgRSASHA1, AlgRSASHA1NSEC3SHA1, AlgRSASHA256, AlgRSASHA512:
		bits := rsaBitsOther
		if flags&rrdata.DNSKEYFlagZone != 0 && flags&rrdata.DNSKEYFlagSEP != 0 {
			bits = rsaBitsZoneSEP
		}
		var key *rsa.PrivateKey
		if key, err = rsa.GenerateKey(rng, bits); err != nil {
			return nil, nil, err
		}
		priv = key
		blob = publicBlobRSA(&key.PublicKey)

	case AlgECDSAP256SHA256, AlgECDSAP384SHA384:
		curve := elliptic.P256()
		if alg == AlgECDSAP384SHA384 {
			curve = elliptic.P384()
		}
		var key *ecdsa.PrivateKey
		if key, err = ecdsa.GenerateKey(curve, rng); err != nil {
			return nil, nil, err
		}
		priv = key
		blob = publicBlobECDSA(alg, &key.PublicKey)

	case AlgED25519:
		var pub ed25519.PublicKey
		var key ed25519.PrivateKey
		if pub, key, err = ed25519.GenerateKey(rng); err != nil {
			return nil, nil, err
		}
		priv = key
		blob = []byte(pub)

	case AlgED448:
		var pub ed448.PublicKey
		var key ed448.PrivateKey
		if pub, key, err = ed448.GenerateKey(rng); err != nil {
			return nil, nil, err
		}
		priv = key
		blob = []byte(pub)

	default:
		return nil, nil, fmt.Errorf("%w: cannot generate %s keys", ErrUnsupportedAlgorithm, AlgorithmName(alg))
	}

	return &rrdata.DNSKEY{
		Flags:     flags,
		Protocol:  3,
		Algorithm: alg,
		PublicKey: blob,
	}, priv, nil
}

// publicBlobRSA builds the RFC 3110 exponent/modulus wire layout.
func publicBlobRSA(pub *rsa.PublicKey) []byte {
	exp := big.NewInt(int64(pub.E)).Bytes()
	var blob []byte
	if len(exp) <= 255 {
		blob = append(blob, uint8(len(exp)))
	} else {
		blob = append(blob, 0, uint8(len(exp)>>8), uint8(len(exp)))
	}
	blob = append(blob, exp...)
	return append(blob, pub.N.Bytes()...)
}

// publicBlobECDSA builds the raw X|Y layout at the curve's exact width.
func publicBlobECDSA(alg uint8, pub *ecdsa.PublicKey) []byte {
	size := curveSize(alg)
	blob := make([]byte, 2*size)
	pub.X.FillBytes(blob[:size])
	pub.Y.FillBytes(blob[size:])
	return blob
}
