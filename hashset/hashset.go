// Package hashset provides an unordered set with user-supplied hashing,
// implemented as a bucket table of singly linked chains.
package hashset

import (
	"fmt"
	"io"

	"github.com/zeebo/xxh3"

	"github.com/structkit/collections/forwardlist"
)

// bucketCounts holds the bucket table growth schedule. Each entry is prime so
// that hash values distribute evenly across buckets even for clustered keys.
var bucketCounts = [...]int{
	53, 97, 193, 389, 769, 1543, 3079, 6151, 12289, 24593,
	49157, 98317, 196613, 393241, 786433, 1572869, 3145739, 6291469,
	12582917, 25165843, 50331653, 100663319, 201326611, 402653189,
	805306457, 1610612741, 3221225473, 4294967291,
}

// nextBucketCount returns the smallest entry of the growth schedule that is
// >= n, or the largest entry when n exceeds the schedule.
func nextBucketCount(n int) int {
	for _, count := range bucketCounts {
		if count >= n {
			return count
		}
	}
	return bucketCounts[len(bucketCounts)-1]
}

// Set is an unordered collection of distinct values. Lookups, insertions and
// removals run in O(1) on average; iteration order is unspecified.
//
// Distinctness is decided by the equal function, which must be consistent
// with the hash function: equal values must hash identically.
// NOTE: Not thread-safe.
type Set[T any] struct {
	hash    func(value T) uint64
	equal   func(a, b T) bool
	buckets []*forwardlist.List[T]
	size    int
}

// New creates a new set using the given hash and equality functions.
func New[T any](hash func(value T) uint64, equal func(a, b T) bool) *Set[T] {
	return &Set[T]{
		hash:    hash,
		equal:   equal,
		buckets: make([]*forwardlist.List[T], bucketCounts[0]),
	}
}

// NewString creates a new set of strings hashed with xxh3.
func NewString() *Set[string] {
	return New(xxh3.HashString, func(a, b string) bool { return a == b })
}

// OfString creates a new set holding the given strings.
func OfString(values ...string) *Set[string] {
	s := NewString()
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// Size returns the number of stored values.
func (s *Set[T]) Size() int {
	return s.size
}

// Empty returns true if the set holds no values.
func (s *Set[T]) Empty() bool {
	return s.size == 0
}

// BucketCount returns the current number of buckets.
func (s *Set[T]) BucketCount() int {
	return len(s.buckets)
}

// LoadFactor returns the average number of values per bucket.
func (s *Set[T]) LoadFactor() float64 {
	return float64(s.size) / float64(len(s.buckets))
}

func (s *Set[T]) bucket(value T) *forwardlist.List[T] {
	i := s.hash(value) % uint64(len(s.buckets))
	if s.buckets[i] == nil {
		s.buckets[i] = forwardlist.New[T]()
	}
	return s.buckets[i]
}

// Insert adds the value to the set. It returns true if the value was added
// and false if an equal value was already present.
func (s *Set[T]) Insert(value T) bool {
	if s.Contains(value) {
		return false
	}
	if s.size+1 > len(s.buckets) {
		s.rehash(nextBucketCount(len(s.buckets) + 1))
	}
	s.bucket(value).PushFront(value)
	s.size++
	return true
}

// Contains returns true if an equal value is present in the set.
func (s *Set[T]) Contains(value T) bool {
	b := s.buckets[s.hash(value)%uint64(len(s.buckets))]
	return b != nil && b.Find(value, s.equal) != nil
}

// Remove deletes the value from the set. It returns true if an equal value
// was present and false otherwise.
func (s *Set[T]) Remove(value T) bool {
	b := s.buckets[s.hash(value)%uint64(len(s.buckets))]
	if b == nil {
		return false
	}
	if b.Remove(value, s.equal) == 0 {
		return false
	}
	s.size--
	return true
}

// Clear removes all values, shrinking the bucket table back to its initial
// size.
func (s *Set[T]) Clear() {
	s.buckets = make([]*forwardlist.List[T], bucketCounts[0])
	s.size = 0
}

// Rehash grows the bucket table so that it can hold at least count values
// without exceeding a load factor of one. Shrinking is not supported; a count
// below the current bucket count is ignored.
func (s *Set[T]) Rehash(count int) {
	if want := nextBucketCount(count); want > len(s.buckets) {
		s.rehash(want)
	}
}

func (s *Set[T]) rehash(count int) {
	old := s.buckets
	s.buckets = make([]*forwardlist.List[T], count)
	for _, b := range old {
		if b == nil {
			continue
		}
		b.Iterate(func(v T) bool {
			s.bucket(v).PushFront(v)
			return false
		})
	}
}

// Values returns the stored values in unspecified order.
func (s *Set[T]) Values() []T {
	values := make([]T, 0, s.size)
	s.Iterate(func(v T) bool {
		values = append(values, v)
		return false
	})
	return values
}

// Iterate calls f for every stored value in unspecified order, until f
// returns true to stop the iteration.
func (s *Set[T]) Iterate(f func(value T) bool) {
	for _, b := range s.buckets {
		if b == nil {
			continue
		}
		stopped := false
		b.Iterate(func(v T) bool {
			stopped = f(v)
			return stopped
		})
		if stopped {
			return
		}
	}
}

// Print writes the stored values to w, separated by delim, in unspecified
// order.
func (s *Set[T]) Print(w io.Writer, delim string) error {
	var outer error
	first := true
	s.Iterate(func(v T) bool {
		if !first {
			if _, err := io.WriteString(w, delim); err != nil {
				outer = err
				return true
			}
		}
		first = false
		if _, err := fmt.Fprintf(w, "%v", v); err != nil {
			outer = err
			return true
		}
		return false
	})
	return outer
}
