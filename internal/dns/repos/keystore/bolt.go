package keystore

import (
	"encoding/binary"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/haukened/rr-wire/internal/dns/common/clock"
	"github.com/haukened/rr-wire/internal/dns/common/rrdata"
	"github.com/haukened/rr-wire/internal/dns/common/utils"
	"github.com/haukened/rr-wire/internal/dns/dnssec"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

var bucketKeys = []byte("keys")

// boltStore implements Store using bbolt.
type boltStore struct {
	db  *bbolt.DB
	clk clock.Clock
}

// New opens (or creates) a Bolt database at path and ensures the key
// bucket exists. The clock stamps entries at Put time.
func New(path string, clk clock.Clock) (Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketKeys)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &boltStore{db: db, clk: clk}, nil
}

func (s *boltStore) Close() error { return s.db.Close() }

// entryKey addresses an entry inside the bucket: canonical owner, a zero
// byte, and the big-endian key tag. The zero byte keeps owners with
// common prefixes apart and makes per-owner scans a simple prefix walk.
func entryKey(owner string, keyTag uint16) []byte {
	owner = utils.CanonicalDNSName(owner)
	k := make([]byte, 0, len(owner)+3)
	k = append(k, owner...)
	k = append(k, 0)
	return binary.BigEndian.AppendUint16(k, keyTag)
}

// entry values are: created-at unix seconds u64, DNSKEY rdata length u16,
// the rdata, then the private key blob.
func encodeEntry(created time.Time, keyWire, private []byte) []byte {
	v := make([]byte, 0, 10+len(keyWire)+len(private))
	v = binary.BigEndian.AppendUint64(v, uint64(created.Unix()))
	v = binary.BigEndian.AppendUint16(v, uint16(len(keyWire)))
	v = append(v, keyWire...)
	return append(v, private...)
}

func decodeEntry(owner string, keyTag uint16, v []byte) (Entry, error) {
	if len(v) < 10 {
		return Entry{}, fmt.Errorf("keystore: corrupt entry of %d bytes", len(v))
	}
	created := time.Unix(int64(binary.BigEndian.Uint64(v)), 0).UTC()
	keyLen := int(binary.BigEndian.Uint16(v[8:]))
	if 10+keyLen > len(v) {
		return Entry{}, fmt.Errorf("keystore: corrupt entry, key length %d", keyLen)
	}
	key, err := rrdata.DecodeBytes(domain.RRTypeDNSKEY, v[10:10+keyLen])
	if err != nil {
		return Entry{}, fmt.Errorf("keystore: corrupt DNSKEY rdata: %w", err)
	}
	private := make([]byte, len(v)-10-keyLen)
	copy(private, v[10+keyLen:])
	return Entry{
		Owner:     owner,
		KeyTag:    keyTag,
		Key:       key.(*rrdata.DNSKEY),
		Private:   private,
		CreatedAt: created,
	}, nil
}

func (s *boltStore) Put(owner string, key *rrdata.DNSKEY, private []byte) (uint16, error) {
	keyTag, err := dnssec.KeyTag(key)
	if err != nil {
		return 0, err
	}
	keyWire, err := rrdata.PackBytes(key)
	if err != nil {
		return 0, err
	}
	value := encodeEntry(s.clk.Now(), keyWire, private)
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketKeys).Put(entryKey(owner, keyTag), value)
	})
	return keyTag, err
}

func (s *boltStore) Get(owner string, keyTag uint16) (Entry, error) {
	var entry Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketKeys).Get(entryKey(owner, keyTag))
		if v == nil {
			return ErrNotFound
		}
		var err error
		entry, err = decodeEntry(utils.CanonicalDNSName(owner), keyTag, v)
		return err
	})
	return entry, err
}

func (s *boltStore) List(owner string) ([]Entry, error) {
	prefix := append([]byte(utils.CanonicalDNSName(owner)), 0)
	var entries []Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketKeys).Cursor()
		for k, v := c.Seek(prefix); k != nil && hasPrefix(k, prefix); k, v = c.Next() {
			keyTag := binary.BigEndian.Uint16(k[len(prefix):])
			entry, err := decodeEntry(utils.CanonicalDNSName(owner), keyTag, v)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	return entries, err
}

func (s *boltStore) Delete(owner string, keyTag uint16) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketKeys)
		k := entryKey(owner, keyTag)
		if b.Get(k) == nil {
			return ErrNotFound
		}
		return b.Delete(k)
	})
}

func hasPrefix(b, prefix []byte) bool {
	return len(b) >= len(prefix) && string(b[:len(prefix)]) == string(prefix)
}
