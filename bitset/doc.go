// Package bitset provides a fixed-width, word-packed bit vector with the
// usual set algebra (union, intersection, difference, complement),
// popcount, and find-first-set iteration.
//
// # What & Why
//
// The branch-and-bound engines in sewell and furini track per-vertex
// "available colors" and "color class" sets across tens of thousands of
// node visits per millisecond. Representing each as a Bitset over
// machine words keeps every set operation O(⌈n/64⌉) instead of O(n),
// and lets popcount/find-first-set compile down to the CPU's
// POPCNT/TZCNT instructions via math/bits.
//
// # Contract
//
//   - A Bitset has a fixed length n set at construction (New(n)); all
//     binary operations (Union, Intersect, Difference, Equal) require
//     operands of identical length — mismatched lengths panic, since
//     this can only arise from a programming error inside a solve call,
//     never from user input (see furini/sewell engines, which only ever
//     combine bitsets sized to the same Graph).
//   - Bits beyond index n-1 within the last word are always kept clear;
//     callers must not rely on undefined high bits.
//
// # Complexity
//
//	Set/Clear/Test:        O(1)
//	Union/Intersect/...:    O(⌈n/64⌉)
//	PopCount:               O(⌈n/64⌉) (hardware popcount per word)
//	NextSet (iteration):    amortized O(⌈n/64⌉) per full scan
package bitset
