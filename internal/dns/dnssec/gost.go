package dnssec

import (
	"fmt"

	"go.cypherpunks.ru/gogost/v5/gost28147"
	"go.cypherpunks.ru/gogost/v5/gost3410"
	"go.cypherpunks.ru/gogost/v5/gost341194"
)

// GOST R 34.10-2001 support (RFC 5933), verify-only. The DNSKEY blob and
// the wire signature use coordinate order and endianness inverted with
// respect to the NIST-curve conventions: the key is Y then X, each 32
// octets little-endian, and the signature is S then R likewise. Every
// conversion between the DNS wire layout and the gogost little-endian
// layout lives in this file; nothing here leaks into the generic ECDSA
// path.

const gostCoordSize = 32

// gost94Digest hashes input with GOST R 34.11-94 using the CryptoPro
// parameter set mandated by RFC 5933.
func gost94Digest(input []byte) ([]byte, error) {
	h := gost341194.New(&gost28147.SboxIdGostR341194CryptoProParamSet)
	if _, err := h.Write(input); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// gostVerify checks a GOST R 34.10-2001 signature over msg.
func gostVerify(blob, msg, sig []byte) error {
	if len(blob) != 2*gostCoordSize {
		return fmt.Errorf("%w: GOST key blob of %d bytes", ErrVerifyFailed, len(blob))
	}
	if len(sig) != 2*gostCoordSize {
		return fmt.Errorf("%w: GOST signature of %d bytes", ErrVerifyFailed, len(sig))
	}

	curve := gost3410.CurveIdGostR34102001CryptoProAParamSet()

	// DNS wire key is Y|X little-endian; gogost wants X|Y little-endian.
	raw := make([]byte, 0, 2*gostCoordSize)
	raw = append(raw, blob[gostCoordSize:]...)
	raw = append(raw, blob[:gostCoordSize]...)
	pub, err := gost3410.NewPublicKey(curve, raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}

	digest, err := gost94Digest(msg)
	if err != nil {
		return err
	}

	// DNS wire signature is S|R little-endian; gogost consumes the
	// big-endian R|S pair reversed as one block.
	ok, err := pub.VerifyDigest(digest, reverseBytes(sig))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}
	if !ok {
		return ErrVerifyFailed
	}
	return nil
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
