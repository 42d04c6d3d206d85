package keystore

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-wire/internal/dns/common/clock"
	"github.com/haukened/rr-wire/internal/dns/dnssec"
)

func openTestStore(t *testing.T) Store {
	t.Helper()
	clk := &clock.MockClock{}
	clk.Advance(24 * time.Hour)
	s, err := New(filepath.Join(t.TempDir(), "keys.db"), clk)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	key, priv, err := dnssec.GenerateKey(dnssec.AlgED25519, 257, nil)
	require.NoError(t, err)
	blob, err := dnssec.MarshalPrivateKey(dnssec.AlgED25519, priv)
	require.NoError(t, err)

	tag, err := s.Put("example.com", key, blob)
	require.NoError(t, err)

	entry, err := s.Get("Example.COM.", tag)
	require.NoError(t, err, "lookups are case-insensitive")
	assert.Equal(t, "example.com", entry.Owner)
	assert.Equal(t, tag, entry.KeyTag)
	assert.Equal(t, key.PublicKey, entry.Key.PublicKey)
	assert.Equal(t, blob, entry.Private)
	assert.False(t, entry.CreatedAt.IsZero())

	// the restored private key still signs for the stored public key
	restored, err := dnssec.ParsePrivateKey(dnssec.AlgED25519, entry.Private)
	require.NoError(t, err)
	sig, err := dnssec.Sign(restored, dnssec.AlgED25519, nil, []byte("msg"))
	require.NoError(t, err)
	assert.NoError(t, dnssec.Verify(entry.Key, []byte("msg"), sig))
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get("example.com", 12345)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListPerOwner(t *testing.T) {
	s := openTestStore(t)
	for range 2 {
		key, priv, err := dnssec.GenerateKey(dnssec.AlgED25519, 256, nil)
		require.NoError(t, err)
		blob, err := dnssec.MarshalPrivateKey(dnssec.AlgED25519, priv)
		require.NoError(t, err)
		_, err = s.Put("example.com", key, blob)
		require.NoError(t, err)
	}
	other, priv, err := dnssec.GenerateKey(dnssec.AlgED25519, 256, nil)
	require.NoError(t, err)
	blob, err := dnssec.MarshalPrivateKey(dnssec.AlgED25519, priv)
	require.NoError(t, err)
	_, err = s.Put("example.net", other, blob)
	require.NoError(t, err)

	entries, err := s.List("example.com")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "example.com", e.Owner)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	key, priv, err := dnssec.GenerateKey(dnssec.AlgED25519, 256, nil)
	require.NoError(t, err)
	blob, err := dnssec.MarshalPrivateKey(dnssec.AlgED25519, priv)
	require.NoError(t, err)
	tag, err := s.Put("example.com", key, blob)
	require.NoError(t, err)

	require.NoError(t, s.Delete("example.com", tag))
	_, err = s.Get("example.com", tag)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(s.Delete("example.com", tag), ErrNotFound))
}
