package key

import (
	"encoding/binary"
	"runtime"
	"sync"
	"unsafe"
	"weak"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

const (
	shardCount = 32
	minSweep   = 64
)

// table maps object addresses to generated keys. Entries hold weak
// pointers only. A cleanup drops an entry once its object is reclaimed,
// and lookup sweeps dead entries whenever a shard doubles in size, since
// cleanups are not guaranteed to run for tiny allocations.
type table struct {
	shards [shardCount]shard
	newKey func() string
}

type shard struct {
	mu      sync.Mutex
	keys    map[weak.Pointer[byte]]string
	sweepAt int // len(keys) that triggers the next sweep
}

func newTable() *table {
	t := &table{newKey: uuid.NewString}
	for i := range t.shards {
		t.shards[i].keys = make(map[weak.Pointer[byte]]string)
		t.shards[i].sweepAt = minSweep
	}
	return t
}

// lookup returns the key for the object p points into, generating and
// storing one on first use. p must be non-nil.
func (t *table) lookup(p unsafe.Pointer) string {
	ptr := (*byte)(p)
	wp := weak.Make(ptr)
	s := t.shardFor(p)

	s.mu.Lock()
	defer s.mu.Unlock()

	if k, ok := s.keys[wp]; ok {
		return k
	}

	k := t.newKey()
	s.keys[wp] = k
	runtime.AddCleanup(ptr, s.forget, wp)
	if len(s.keys) >= s.sweepAt {
		s.sweep()
	}
	return k
}

func (t *table) shardFor(p unsafe.Pointer) *shard {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(uintptr(p)))
	return &t.shards[xxhash.Sum64(buf[:])%shardCount]
}

func (t *table) len() int {
	n := 0
	for i := range t.shards {
		s := &t.shards[i]
		s.mu.Lock()
		n += len(s.keys)
		s.mu.Unlock()
	}
	return n
}

// sweep drops entries whose objects are gone. s.mu must be held.
func (s *shard) sweep() {
	for wp := range s.keys {
		if wp.Value() == nil {
			delete(s.keys, wp)
		}
	}
	s.sweepAt = max(2*len(s.keys), minSweep)
}

func (s *shard) forget(wp weak.Pointer[byte]) {
	s.mu.Lock()
	delete(s.keys, wp)
	s.mu.Unlock()
}
