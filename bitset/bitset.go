package bitset

import (
	"fmt"
	"math/bits"
)

const wordBits = 64

// Bitset is a fixed-width bit vector packed into uint64 words.
type Bitset struct {
	n     int
	words []uint64
}

// New allocates a zeroed Bitset able to hold n bits, n >= 0.
func New(n int) *Bitset {
	if n < 0 {
		panic(fmt.Sprintf("bitset: negative length %d", n))
	}

	return &Bitset{n: n, words: make([]uint64, wordCount(n))}
}

// wordCount returns the number of uint64 words needed to hold n bits.
func wordCount(n int) int {
	return (n + wordBits - 1) / wordBits
}

// Len reports the fixed bit-length of b.
func (b *Bitset) Len() int { return b.n }

// mustSameLen panics if a and b were not constructed with equal length.
// Engines never combine bitsets of differing size within one solve, so a
// mismatch here is an internal invariant violation, not user input.
func mustSameLen(a, b *Bitset) {
	if a.n != b.n {
		panic(fmt.Sprintf("bitset: length mismatch (%d vs %d)", a.n, b.n))
	}
}

// Set sets bit i (0 <= i < n).
func (b *Bitset) Set(i int) {
	b.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Clear clears bit i.
func (b *Bitset) Clear(i int) {
	b.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Test reports whether bit i is set.
func (b *Bitset) Test(i int) bool {
	return b.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// Clone returns an independent copy of b.
func (b *Bitset) Clone() *Bitset {
	cp := &Bitset{n: b.n, words: make([]uint64, len(b.words))}
	copy(cp.words, b.words)

	return cp
}

// CopyFrom overwrites b's contents with src's (src must have equal length).
func (b *Bitset) CopyFrom(src *Bitset) {
	mustSameLen(b, src)
	copy(b.words, src.words)
}

// Equal reports whether a and b contain the same set bits.
func Equal(a, b *Bitset) bool {
	mustSameLen(a, b)
	for i := range a.words {
		if a.words[i] != b.words[i] {
			return false
		}
	}

	return true
}

// Union returns a new Bitset holding a | b.
func Union(a, b *Bitset) *Bitset {
	mustSameLen(a, b)
	out := New(a.n)
	for i := range a.words {
		out.words[i] = a.words[i] | b.words[i]
	}

	return out
}

// Intersect returns a new Bitset holding a & b.
func Intersect(a, b *Bitset) *Bitset {
	mustSameLen(a, b)
	out := New(a.n)
	for i := range a.words {
		out.words[i] = a.words[i] & b.words[i]
	}

	return out
}

// Difference returns a new Bitset holding a &^ b (bits in a but not b).
func Difference(a, b *Bitset) *Bitset {
	mustSameLen(a, b)
	out := New(a.n)
	for i := range a.words {
		out.words[i] = a.words[i] &^ b.words[i]
	}

	return out
}

// Complement returns the bitwise complement of b within its own universe
// (bits 0..n-1 not set in b).
func (b *Bitset) Complement() *Bitset {
	out := New(b.n)
	for i := range b.words {
		out.words[i] = ^b.words[i]
	}
	out.clearTail()

	return out
}

// clearTail zeroes any bits in the last word beyond index n-1, keeping
// Complement/PopCount/NextSet well-defined when n is not a multiple of 64.
func (b *Bitset) clearTail() {
	if b.n == 0 {
		return
	}
	rem := b.n % wordBits
	if rem == 0 {
		return
	}
	mask := (uint64(1) << uint(rem)) - 1
	b.words[len(b.words)-1] &= mask
}

// IntersectInPlace sets b to b & other (other must have equal length).
func (b *Bitset) IntersectInPlace(other *Bitset) {
	mustSameLen(b, other)
	for i := range b.words {
		b.words[i] &= other.words[i]
	}
}

// UnionInPlace sets b to b | other.
func (b *Bitset) UnionInPlace(other *Bitset) {
	mustSameLen(b, other)
	for i := range b.words {
		b.words[i] |= other.words[i]
	}
}

// DifferenceInPlace sets b to b &^ other.
func (b *Bitset) DifferenceInPlace(other *Bitset) {
	mustSameLen(b, other)
	for i := range b.words {
		b.words[i] &^= other.words[i]
	}
}

// PopCount returns the number of set bits, using the hardware popcount
// instruction through math/bits when the target supports it.
func (b *Bitset) PopCount() int {
	count := 0
	for _, w := range b.words {
		count += bits.OnesCount64(w)
	}

	return count
}

// IsZero reports whether no bits are set.
func (b *Bitset) IsZero() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// NextSet returns the index of the first set bit at or after from, and
// true, or (0, false) if no such bit exists. Uses TrailingZeros64 (TZCNT)
// per word to skip directly to the next set bit.
func (b *Bitset) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	wi := from / wordBits
	if wi >= len(b.words) {
		return 0, false
	}
	// Mask off bits below `from` in the first word examined.
	w := b.words[wi] &^ ((uint64(1) << uint(from%wordBits)) - 1)
	for {
		if w != 0 {
			idx := wi*wordBits + bits.TrailingZeros64(w)
			if idx >= b.n {
				return 0, false
			}

			return idx, true
		}
		wi++
		if wi >= len(b.words) {
			return 0, false
		}
		w = b.words[wi]
	}
}

// ForEach calls fn(i) for every set bit i in ascending order.
func (b *Bitset) ForEach(fn func(i int)) {
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		fn(i)
	}
}

// Slice returns the set bits as an ascending []int. Convenience for
// callers outside the hot path (tests, examples); engines should prefer
// ForEach/NextSet to avoid the allocation.
func (b *Bitset) Slice() []int {
	out := make([]int, 0, b.PopCount())
	b.ForEach(func(i int) { out = append(out, i) })

	return out
}
