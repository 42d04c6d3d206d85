// Package anchors holds a trust anchor set: DS records keyed by owner
// name, with a bloom filter in front of the map for cheap negative
// probes and an LRU memoizing coverage verdicts. Large anchor sets are
// probed far more often than they match, so the filter carries most of
// the load.
package anchors

import (
	"encoding/binary"
	"fmt"
	"sync"
	"sync/atomic"

	bitsbloom "github.com/bits-and-blooms/bloom/v3"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haukened/rr-wire/internal/dns/common/rrdata"
	"github.com/haukened/rr-wire/internal/dns/common/utils"
	"github.com/haukened/rr-wire/internal/dns/dnssec"
)

const bloomFalsePositiveRate = 0.01

// Set is an in-memory trust anchor collection. Add and the read methods
// are safe for concurrent use.
type Set struct {
	mu      sync.RWMutex
	byOwner map[string][]*rrdata.DS
	filter  *bitsbloom.BloomFilter

	verdicts *lru.Cache[string, bool]
	hits     uint64
	misses   uint64
}

// New sizes the set for an expected number of anchors and a verdict
// cache capacity. cacheSize <= 0 disables memoization.
func New(expected uint, cacheSize int) (*Set, error) {
	s := &Set{
		byOwner: make(map[string][]*rrdata.DS),
		filter:  bitsbloom.NewWithEstimates(max(expected, 1), bloomFalsePositiveRate),
	}
	if cacheSize > 0 {
		cache, err := lru.New[string, bool](cacheSize)
		if err != nil {
			return nil, err
		}
		s.verdicts = cache
	}
	return s, nil
}

// probeKey is the bloom filter key: canonical owner, a zero byte, and the
// big-endian key tag.
func probeKey(owner string, keyTag uint16) []byte {
	owner = utils.CanonicalDNSName(owner)
	k := make([]byte, 0, len(owner)+3)
	k = append(k, owner...)
	k = append(k, 0)
	return binary.BigEndian.AppendUint16(k, keyTag)
}

// Add registers a DS anchor for owner.
func (s *Set) Add(owner string, ds *rrdata.DS) {
	owner = utils.CanonicalDNSName(owner)
	s.mu.Lock()
	s.byOwner[owner] = append(s.byOwner[owner], ds)
	s.filter.Add(probeKey(owner, ds.KeyTag))
	s.mu.Unlock()
	if s.verdicts != nil {
		s.verdicts.Purge()
	}
}

// Len returns the number of anchors in the set.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, list := range s.byOwner {
		n += len(list)
	}
	return n
}

// Lookup returns the anchors for owner whose key tag matches. The bloom
// filter answers definite misses without touching the map.
func (s *Set) Lookup(owner string, keyTag uint16) []*rrdata.DS {
	owner = utils.CanonicalDNSName(owner)
	if !s.filter.Test(probeKey(owner, keyTag)) {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*rrdata.DS
	for _, ds := range s.byOwner[owner] {
		if ds.KeyTag == keyTag {
			out = append(out, ds)
		}
	}
	return out
}

// Covers reports whether any anchor for owner validly binds key. Verdicts
// are memoized per (owner, key tag, key rdata).
func (s *Set) Covers(owner string, key *rrdata.DNSKEY) (bool, error) {
	tag, err := dnssec.KeyTag(key)
	if err != nil {
		return false, err
	}
	ck, err := verdictKey(owner, tag, key)
	if err != nil {
		return false, err
	}
	if s.verdicts != nil {
		if v, ok := s.verdicts.Get(ck); ok {
			atomic.AddUint64(&s.hits, 1)
			return v, nil
		}
		atomic.AddUint64(&s.misses, 1)
	}

	covered := false
	for _, ds := range s.Lookup(owner, tag) {
		ok, err := dnssec.Covers(ds, owner, key)
		if err != nil {
			// an anchor with an unimplemented digest cannot confirm,
			// but it must not mask another anchor that can
			continue
		}
		if ok {
			covered = true
			break
		}
	}
	if s.verdicts != nil {
		s.verdicts.Add(ck, covered)
	}
	return covered, nil
}

// Stats returns the verdict cache hit and miss counters.
func (s *Set) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&s.hits), atomic.LoadUint64(&s.misses)
}

func verdictKey(owner string, tag uint16, key *rrdata.DNSKEY) (string, error) {
	wireForm, err := rrdata.PackBytes(key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s|%d|%x", utils.CanonicalDNSName(owner), tag, wireForm), nil
}
