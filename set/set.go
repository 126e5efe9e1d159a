// Package set implements a hash set of byte-string keys using open
// addressing with linear probing.
//
// Keys are placed at their home bucket, fnv1a.Sum64(key) mod capacity, or the
// first free slot after it (wrapping). Deletion uses backward shifting rather
// than tombstones, so every stored key stays reachable from its home bucket
// without crossing an empty slot. The table doubles before an insert whenever
// the load factor exceeds 0.75.
//
// Slot placement is deterministic and part of the package's observable
// behavior: Layout reports it, and iteration follows it.
package set

import (
	"bytes"
	"context"
	"iter"
	"log/slog"

	"git.home.luguber.info/inful/collections/fnv1a"
	"git.home.luguber.info/inful/collections/internal/contract"
	"git.home.luguber.info/inful/collections/internal/foundation/errors"
	"git.home.luguber.info/inful/collections/internal/logfields"
	"git.home.luguber.info/inful/collections/internal/metrics"
)

// Item is one table slot. A nil key marks the slot empty.
type Item struct {
	key []byte
}

// Key returns the stored key. The returned slice is owned by the set and
// must not be modified.
func (i Item) Key() []byte {
	return i.key
}

// IsEmpty reports whether the slot holds no key.
func (i Item) IsEmpty() bool {
	return i.key == nil
}

// Set is an open-addressing hash set. It is not safe for concurrent use.
type Set struct {
	table    []Item
	load     int
	logger   *slog.Logger
	recorder metrics.Recorder
}

// Option configures a Set.
type Option func(*Set)

// WithLogger sets the logger used for expansion events. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Set) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder. Defaults to metrics.NoopRecorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Set) {
		if r != nil {
			s.recorder = r
		}
	}
}

// New returns an empty set with capacity slots.
func New(capacity int, opts ...Option) *Set {
	contract.Positive("capacity", capacity)

	s := &Set{
		table:    make([]Item, capacity),
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of keys (the load).
func (s *Set) Len() int {
	return s.load
}

// Cap returns the number of table slots.
func (s *Set) Cap() int {
	return len(s.table)
}

// Has reports whether key is in the set. key must not be empty.
func (s *Set) Has(key []byte) bool {
	contract.NonEmpty("key", key)

	capacity := len(s.table)
	home := s.home(key)
	for i := 0; i < capacity; i++ {
		item := &s.table[(home+i)%capacity]
		if item.key == nil {
			s.recorder.ObserveProbes(metrics.OpHas, i+1)
			return false
		}
		if bytes.Equal(item.key, key) {
			s.recorder.ObserveProbes(metrics.OpHas, i+1)
			return true
		}
	}
	s.recorder.ObserveProbes(metrics.OpHas, capacity)
	return false
}

// Put adds a copy of key. Putting a key that is already present is a no-op.
// key must not be empty.
func (s *Set) Put(key []byte) {
	contract.NonEmpty("key", key)

	if 4*s.load > 3*len(s.table) {
		s.expand()
	}

	capacity := len(s.table)
	home := s.home(key)
	for i := 0; i < capacity; i++ {
		item := &s.table[(home+i)%capacity]
		if item.key == nil {
			item.key = bytes.Clone(key)
			s.load++
			s.recorder.ObserveProbes(metrics.OpPut, i+1)
			return
		}
		if bytes.Equal(item.key, key) {
			s.recorder.ObserveProbes(metrics.OpPut, i+1)
			return
		}
	}

	// Unreachable while the load factor bound holds.
	panic(errors.InternalError("set table full").
		WithContext("capacity", capacity).
		WithContext("load", s.load).
		Build())
}

// Delete removes key if present. key must not be empty.
func (s *Set) Delete(key []byte) {
	contract.NonEmpty("key", key)

	capacity := len(s.table)
	home := s.home(key)
	gap := -1
	for i := 0; i < capacity; i++ {
		idx := (home + i) % capacity
		item := &s.table[idx]
		if item.key == nil {
			s.recorder.ObserveProbes(metrics.OpDelete, i+1)
			return
		}
		if bytes.Equal(item.key, key) {
			s.recorder.ObserveProbes(metrics.OpDelete, i+1)
			gap = idx
			break
		}
	}
	if gap < 0 {
		s.recorder.ObserveProbes(metrics.OpDelete, capacity)
		return
	}

	s.table[gap] = Item{}
	s.load--
	s.recorder.ObserveRelocations(s.backwardShift(gap))
}

// backwardShift closes the hole at gap. Walking forward until an empty slot,
// an entry at j whose home bucket k lies cyclically in (gap, j] is already
// reachable and stays; any other entry moves into the gap, and its old slot
// becomes the new gap. It returns the number of relocated entries.
func (s *Set) backwardShift(gap int) int {
	capacity := len(s.table)
	relocated := 0

	for j := (gap + 1) % capacity; s.table[j].key != nil; j = (j + 1) % capacity {
		k := s.home(s.table[j].key)
		if cyclicBetween(gap, k, j) {
			continue
		}
		s.table[gap] = s.table[j]
		s.table[j] = Item{}
		gap = j
		relocated++
	}
	return relocated
}

// cyclicBetween reports whether k lies in the half-open cyclic interval
// (lo, hi].
func cyclicBetween(lo, k, hi int) bool {
	if lo <= hi {
		return lo < k && k <= hi
	}
	return lo < k || k <= hi
}

// expand doubles the table and re-probes every key in old slot order.
func (s *Set) expand() {
	old := s.table
	s.table = make([]Item, 2*len(old))
	s.load = 0

	capacity := len(s.table)
	for _, item := range old {
		if item.key == nil {
			continue
		}
		home := s.home(item.key)
		for i := 0; i < capacity; i++ {
			slot := &s.table[(home+i)%capacity]
			if slot.key == nil {
				slot.key = item.key
				s.load++
				s.recorder.ObserveProbes(metrics.OpRehash, i+1)
				break
			}
		}
	}

	s.recorder.IncExpansion(len(old), capacity)
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "Set expanded",
		logfields.Component("set"),
		logfields.OldCapacity(len(old)),
		logfields.Capacity(capacity),
		logfields.Rehashed(s.load))
}

func (s *Set) home(key []byte) int {
	return int(fnv1a.Sum64(key) % uint64(len(s.table)))
}

// Union returns a new set holding every key of a and b. Its capacity is
// a.Cap()+b.Cap(), and it inherits a's logger and recorder.
func Union(a, b *Set) *Set {
	out := a.derive(a.Cap() + b.Cap())
	for _, item := range a.table {
		if item.key != nil {
			out.Put(item.key)
		}
	}
	for _, item := range b.table {
		if item.key != nil {
			out.Put(item.key)
		}
	}
	return out
}

// Intersection returns a new set holding the keys of a that are also in b.
// Its capacity is a.Cap()+b.Cap(), and it inherits a's logger and recorder.
func Intersection(a, b *Set) *Set {
	out := a.derive(a.Cap() + b.Cap())
	for _, item := range a.table {
		if item.key != nil && b.Has(item.key) {
			out.Put(item.key)
		}
	}
	return out
}

func (s *Set) derive(capacity int) *Set {
	return New(capacity, WithLogger(s.logger), WithRecorder(s.recorder))
}

// Layout returns the key held by each slot in table order, nil for empty
// slots. The inner slices are owned by the set and must not be modified.
func (s *Set) Layout() [][]byte {
	out := make([][]byte, len(s.table))
	for i, item := range s.table {
		out[i] = item.key
	}
	return out
}

// Keys returns copies of all keys in table order.
func (s *Set) Keys() [][]byte {
	out := make([][]byte, 0, s.load)
	for _, item := range s.table {
		if item.key != nil {
			out = append(out, bytes.Clone(item.key))
		}
	}
	return out
}

// All returns a sequence over the stored keys in table order. The set must
// not be mutated while the sequence is being ranged over.
func (s *Set) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, item := range s.table {
			if item.key != nil && !yield(item.key) {
				return
			}
		}
	}
}

// Iterator returns an iterator positioned before slot 0.
func (s *Set) Iterator() *Iterator {
	return &Iterator{set: s}
}

// Iterator walks occupied slots in table order. It is not restartable and is
// invalidated by any mutation of the set.
type Iterator struct {
	set *Set
	idx int
}

// Next returns the next occupied slot, or an empty Item and false once
// exhausted.
func (it *Iterator) Next() (Item, bool) {
	for it.idx < len(it.set.table) {
		item := it.set.table[it.idx]
		it.idx++
		if item.key != nil {
			return item, true
		}
	}
	return Item{}, false
}
