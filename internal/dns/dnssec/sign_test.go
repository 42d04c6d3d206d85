package dnssec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-wire/internal/dns/common/rrdata"
)

var signRoundTripAlgs = []uint8{
	AlgRSASHA1,
	AlgRSASHA256,
	AlgRSASHA512,
	AlgECDSAP256SHA256,
	AlgECDSAP384SHA384,
	AlgED25519,
	AlgED448,
}

func TestSignVerifyRoundTrip(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	for _, alg := range signRoundTripAlgs {
		t.Run(AlgorithmName(alg), func(t *testing.T) {
			key, priv, err := GenerateKey(alg, 256, nil)
			require.NoError(t, err)

			sig, err := Sign(priv, alg, nil, msg)
			require.NoError(t, err)
			require.NoError(t, Verify(key, msg, sig), "fresh signature must verify")

			// any message change must fail
			other := append([]byte{}, msg...)
			other[0] ^= 0x01
			assert.ErrorIs(t, Verify(key, other, sig), ErrVerifyFailed)

			// any signature bit flip must fail
			broken := append([]byte{}, sig...)
			broken[len(broken)/2] ^= 0x01
			assert.Error(t, Verify(key, msg, broken))
		})
	}
}

func TestECDSASignatureIsRawFixedWidth(t *testing.T) {
	msg := []byte("raw coordinates, not DER")
	key, priv, err := GenerateKey(AlgECDSAP256SHA256, 256, nil)
	require.NoError(t, err)
	sig, err := Sign(priv, AlgECDSAP256SHA256, nil, msg)
	require.NoError(t, err)
	assert.Len(t, sig, 64, "P-256 signatures are exactly R|S of 32 bytes each")
	require.NoError(t, Verify(key, msg, sig))

	key384, priv384, err := GenerateKey(AlgECDSAP384SHA384, 256, nil)
	require.NoError(t, err)
	sig384, err := Sign(priv384, AlgECDSAP384SHA384, nil, msg)
	require.NoError(t, err)
	assert.Len(t, sig384, 96)
	require.NoError(t, Verify(key384, msg, sig384))
}

func TestECDSADERGlueRoundTrip(t *testing.T) {
	raw := make([]byte, 64)
	for i := range raw {
		raw[i] = byte(i + 1)
	}
	der, err := ecdsaRawToDER(raw)
	require.NoError(t, err)
	back, err := ecdsaDERToRaw(der, 32)
	require.NoError(t, err)
	assert.Equal(t, raw, back)

	// leading zeros must survive the trip through big integers
	padded := make([]byte, 64)
	padded[31] = 0x05
	padded[63] = 0x07
	der, err = ecdsaRawToDER(padded)
	require.NoError(t, err)
	back, err = ecdsaDERToRaw(der, 32)
	require.NoError(t, err)
	assert.Equal(t, padded, back)
}

func TestEd448SignatureShape(t *testing.T) {
	key, priv, err := GenerateKey(AlgED448, 257, nil)
	require.NoError(t, err)
	sig, err := Sign(priv, AlgED448, nil, []byte("x"))
	require.NoError(t, err)
	assert.Len(t, sig, 114)
	assert.Len(t, key.PublicKey, 57)
}

func TestGenerateKeyRSADefaults(t *testing.T) {
	// ZONE+SEP gets 2048-bit keys, everything else 1024
	ksep, _, err := GenerateKey(AlgRSASHA256, 257, nil)
	require.NoError(t, err)
	kzsk, _, err := GenerateKey(AlgRSASHA256, 256, nil)
	require.NoError(t, err)
	// modulus length: exponent prefix is 1+3 bytes for 65537
	assert.Equal(t, 4+256, len(ksep.PublicKey))
	assert.Equal(t, 4+128, len(kzsk.PublicKey))
	assert.True(t, ksep.IsSecureEntryPoint())
	assert.False(t, kzsk.IsSecureEntryPoint())
}

func TestPrivateKeyMarshalRoundTrip(t *testing.T) {
	msg := []byte("stored and restored")
	for _, alg := range []uint8{AlgRSASHA256, AlgECDSAP256SHA256, AlgED25519, AlgED448} {
		t.Run(AlgorithmName(alg), func(t *testing.T) {
			key, priv, err := GenerateKey(alg, 256, nil)
			require.NoError(t, err)
			blob, err := MarshalPrivateKey(alg, priv)
			require.NoError(t, err)
			restored, err := ParsePrivateKey(alg, blob)
			require.NoError(t, err)
			sig, err := Sign(restored, alg, nil, msg)
			require.NoError(t, err)
			assert.NoError(t, Verify(key, msg, sig))
		})
	}
}

func TestUnsupportedAlgorithms(t *testing.T) {
	key := &rrdata.DNSKEY{Flags: 256, Protocol: 3, Algorithm: AlgDSA, PublicKey: []byte{1, 2, 3}}
	err := Verify(key, []byte("m"), []byte("s"))
	assert.True(t, errors.Is(err, ErrUnsupportedAlgorithm))

	_, _, err = GenerateKey(AlgECCGOST, 256, nil)
	assert.True(t, errors.Is(err, ErrUnsupportedAlgorithm), "GOST is verify-only")
}

func TestGOSTVerifyInputValidation(t *testing.T) {
	key := &rrdata.DNSKEY{Flags: 256, Protocol: 3, Algorithm: AlgECCGOST, PublicKey: make([]byte, 63)}
	assert.ErrorIs(t, Verify(key, []byte("m"), make([]byte, 64)), ErrVerifyFailed)

	key.PublicKey = make([]byte, 64)
	assert.ErrorIs(t, Verify(key, []byte("m"), make([]byte, 10)), ErrVerifyFailed)
}
