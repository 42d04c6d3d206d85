package dnssec

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// The DNSSEC wire format carries ECDSA signatures as raw R|S, each
// coordinate zero-padded big-endian to the exact curve size, while
// crypto.Signer produces ASN.1 DER. These two helpers are the only glue
// between the encodings.

// ecdsaDERToRaw converts a DER SEQUENCE{r, s} signature to raw R|S.
func ecdsaDERToRaw(der []byte, size int) ([]byte, error) {
	var (
		inner cryptobyte.String
		r, s  = new(big.Int), new(big.Int)
	)
	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, cryptobyte_asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(r) ||
		!inner.ReadASN1Integer(s) ||
		!inner.Empty() {
		return nil, fmt.Errorf("malformed DER ECDSA signature")
	}
	if r.BitLen() > size*8 || s.BitLen() > size*8 || r.Sign() < 0 || s.Sign() < 0 {
		return nil, fmt.Errorf("ECDSA integer exceeds %d bytes", size)
	}
	out := make([]byte, 2*size)
	r.FillBytes(out[:size])
	s.FillBytes(out[size:])
	return out, nil
}

// ecdsaRawToDER converts a raw R|S signature to DER SEQUENCE{r, s}.
func ecdsaRawToDER(raw []byte) ([]byte, error) {
	if len(raw) == 0 || len(raw)%2 != 0 {
		return nil, fmt.Errorf("raw ECDSA signature of %d bytes", len(raw))
	}
	half := len(raw) / 2
	r := new(big.Int).SetBytes(raw[:half])
	s := new(big.Int).SetBytes(raw[half:])
	var b cryptobyte.Builder
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(r)
		b.AddASN1BigInt(s)
	})
	return b.Bytes()
}
