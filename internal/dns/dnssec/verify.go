package dnssec

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"fmt"
	"math/big"

	"github.com/cloudflare/circl/sign/ed448"

	"github.com/haukened/rr-wire/internal/dns/common/rrdata"
)

// Verify checks sig over msg with the public key carried in key. The
// signature uses the on-wire encoding of the key's algorithm (raw R|S for
// ECDSA, RFC 8032 for the EdDSA family, PKCS#1 v1.5 for RSA). A
// cryptographic mismatch is ErrVerifyFailed; algorithms without an
// implementation are ErrUnsupportedAlgorithm.
func Verify(key *rrdata.DNSKEY, msg, sig []byte) error {
	switch key.Algorithm {
	case AlgRSASHA1, AlgRSASHA1NSEC3SHA1, AlgRSASHA256, AlgRSASHA512:
		pub, err := publicKeyRSA(key.PublicKey)
		if err != nil {
			return err
		}
		h := algorithmToHash[key.Algorithm]
		s := h.New()
		s.Write(msg)
		if rsa.VerifyPKCS1v15(pub, h, s.Sum(nil), sig) != nil {
			return ErrVerifyFailed
		}
		return nil

	case AlgECDSAP256SHA256, AlgECDSAP384SHA384:
		pub, err := publicKeyECDSA(key.Algorithm, key.PublicKey)
		if err != nil {
			return err
		}
		size := curveSize(key.Algorithm)
		if len(sig) != 2*size {
			return fmt.Errorf("%w: ECDSA signature of %d bytes", ErrVerifyFailed, len(sig))
		}
		r := new(big.Int).SetBytes(sig[:size])
		s := new(big.Int).SetBytes(sig[size:])
		h := algorithmToHash[key.Algorithm]
		hw := h.New()
		hw.Write(msg)
		if !ecdsa.Verify(pub, hw.Sum(nil), r, s) {
			return ErrVerifyFailed
		}
		return nil

	case AlgED25519:
		if len(key.PublicKey) != ed25519.PublicKeySize {
			return fmt.Errorf("%w: ED25519 key of %d bytes", ErrVerifyFailed, len(key.PublicKey))
		}
		if !ed25519.Verify(ed25519.PublicKey(key.PublicKey), msg, sig) {
			return ErrVerifyFailed
		}
		return nil

	case AlgED448:
		if len(key.PublicKey) != ed448.PublicKeySize {
			return fmt.Errorf("%w: ED448 key of %d bytes", ErrVerifyFailed, len(key.PublicKey))
		}
		if !ed448.Verify(ed448.PublicKey(key.PublicKey), msg, sig, "") {
			return ErrVerifyFailed
		}
		return nil

	case AlgECCGOST:
		return gostVerify(key.PublicKey, msg, sig)

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, AlgorithmName(key.Algorithm))
	}
}

// publicKeyRSA unpacks the RFC 3110 exponent/modulus layout: a one-octet
// exponent length, or a zero octet followed by a two-octet length, then
// the exponent and modulus big-endian.
func publicKeyRSA(blob []byte) (*rsa.PublicKey, error) {
	if len(blob) < 3 {
		return nil, fmt.Errorf("%w: RSA key blob of %d bytes", ErrVerifyFailed, len(blob))
	}
	expLen := int(blob[0])
	keyOff := 1
	if expLen == 0 {
		expLen = int(blob[1])<<8 | int(blob[2])
		keyOff = 3
	}
	if expLen == 0 || expLen > 4 || keyOff+expLen >= len(blob) {
		// exponents above 32 bits exceed what crypto/rsa represents
		return nil, fmt.Errorf("%w: RSA exponent of %d bytes", ErrVerifyFailed, expLen)
	}
	var exp uint64
	for _, b := range blob[keyOff : keyOff+expLen] {
		exp = exp<<8 | uint64(b)
	}
	if exp > 1<<31-1 {
		return nil, fmt.Errorf("%w: RSA exponent out of range", ErrVerifyFailed)
	}
	modulus := blob[keyOff+expLen:]
	if len(modulus) < 64 || len(modulus) > 512 {
		return nil, fmt.Errorf("%w: RSA modulus of %d bytes", ErrVerifyFailed, len(modulus))
	}
	return &rsa.PublicKey{
		E: int(exp),
		N: new(big.Int).SetBytes(modulus),
	}, nil
}

// publicKeyECDSA unpacks the raw affine X|Y layout, each coordinate
// big-endian at the curve's exact size.
func publicKeyECDSA(alg uint8, blob []byte) (*ecdsa.PublicKey, error) {
	size := curveSize(alg)
	if len(blob) != 2*size {
		return nil, fmt.Errorf("%w: ECDSA key blob of %d bytes", ErrVerifyFailed, len(blob))
	}
	pub := &ecdsa.PublicKey{
		X: new(big.Int).SetBytes(blob[:size]),
		Y: new(big.Int).SetBytes(blob[size:]),
	}
	switch alg {
	case AlgECDSAP256SHA256:
		pub.Curve = elliptic.P256()
	case AlgECDSAP384SHA384:
		pub.Curve = elliptic.P384()
	}
	return pub, nil
}

// curveSize is the coordinate width in bytes for the ECDSA algorithms.
func curveSize(alg uint8) int {
	if alg == AlgECDSAP384SHA384 {
		return 48
	}
	return 32
}
