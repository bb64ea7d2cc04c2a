package bitset_test

import (
	"testing"

	"github.com/coloring-lab/chromacore/bitset"
)

func TestSetClearTest(t *testing.T) {
	b := bitset.New(70) // spans two words
	if b.Test(5) {
		t.Fatalf("expected bit 5 clear initially")
	}
	b.Set(5)
	b.Set(69)
	if !b.Test(5) || !b.Test(69) {
		t.Fatalf("expected bits 5 and 69 set")
	}
	b.Clear(5)
	if b.Test(5) {
		t.Fatalf("expected bit 5 clear after Clear")
	}
	if b.PopCount() != 1 {
		t.Fatalf("expected popcount 1, got %d", b.PopCount())
	}
}

func TestUnionIntersectDifference(t *testing.T) {
	a := bitset.New(10)
	b := bitset.New(10)
	a.Set(1)
	a.Set(2)
	a.Set(3)
	b.Set(2)
	b.Set(3)
	b.Set(4)

	u := bitset.Union(a, b)
	if got, want := u.Slice(), []int{1, 2, 3, 4}; !equalInts(got, want) {
		t.Fatalf("Union = %v, want %v", got, want)
	}

	i := bitset.Intersect(a, b)
	if got, want := i.Slice(), []int{2, 3}; !equalInts(got, want) {
		t.Fatalf("Intersect = %v, want %v", got, want)
	}

	d := bitset.Difference(a, b)
	if got, want := d.Slice(), []int{1}; !equalInts(got, want) {
		t.Fatalf("Difference = %v, want %v", got, want)
	}
}

func TestComplementRespectsUniverse(t *testing.T) {
	b := bitset.New(5)
	b.Set(0)
	b.Set(2)
	c := b.Complement()
	if got, want := c.Slice(), []int{1, 3, 4}; !equalInts(got, want) {
		t.Fatalf("Complement = %v, want %v", got, want)
	}
}

func TestNextSetIteration(t *testing.T) {
	b := bitset.New(130)
	b.Set(0)
	b.Set(64)
	b.Set(129)
	var got []int
	b.ForEach(func(i int) { got = append(got, i) })
	if want := []int{0, 64, 129}; !equalInts(got, want) {
		t.Fatalf("ForEach = %v, want %v", got, want)
	}
}

func TestInPlaceOps(t *testing.T) {
	a := bitset.New(8)
	a.Set(0)
	a.Set(1)
	a.Set(2)
	other := bitset.New(8)
	other.Set(1)
	other.Set(2)
	a.IntersectInPlace(other)
	if got, want := a.Slice(), []int{1, 2}; !equalInts(got, want) {
		t.Fatalf("IntersectInPlace = %v, want %v", got, want)
	}
}

func TestMismatchedLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on length mismatch")
		}
	}()
	a := bitset.New(4)
	b := bitset.New(5)
	bitset.Union(a, b)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
