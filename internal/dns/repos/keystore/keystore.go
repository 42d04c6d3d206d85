// Package keystore persists DNSSEC signing keys: the public DNSKEY rdata
// together with the private key blob produced by dnssec.MarshalPrivateKey.
// Entries are addressed by owner name and key tag.
package keystore

import (
	"errors"
	"time"

	"github.com/haukened/rr-wire/internal/dns/common/rrdata"
)

// ErrNotFound indicates no stored key matches the owner and key tag.
var ErrNotFound = errors.New("keystore: key not found")

// Entry is one stored signing key.
type Entry struct {
	Owner     string
	KeyTag    uint16
	Key       *rrdata.DNSKEY
	Private   []byte
	CreatedAt time.Time
}

// Store is the persistence interface for signing keys.
type Store interface {
	// Put stores a key under its owner and computed key tag, replacing
	// any previous entry with the same address.
	Put(owner string, key *rrdata.DNSKEY, private []byte) (uint16, error)

	// Get returns the entry for owner and key tag, or ErrNotFound.
	Get(owner string, keyTag uint16) (Entry, error)

	// List returns all entries for owner, ordered by key tag.
	List(owner string) ([]Entry, error)

	// Delete removes the entry for owner and key tag, or ErrNotFound.
	Delete(owner string, keyTag uint16) error

	// Close releases the underlying database.
	Close() error
}
