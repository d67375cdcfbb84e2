// SPDX-License-Identifier: MIT

// Package matrix - KeySpace: immutable key → index mapping.
//
// Purpose:
//   - Map an arbitrary comparable key type onto grid coordinates.
//   - Fix the mapping once at construction; nothing is added, removed or renumbered later.
//
// Duplicate policy (last-occurrence-wins):
//   - The index map is built by a sequential overwrite, so for [A, B, A]
//     Index(A)==2 and Index(B)==1, and Len()==2.
//   - Positions can therefore skip numbers. The grid is addressed by a dense
//     slot (the key's rank by index, 0..Len()-1) so the grid stays exactly Len() wide.

package matrix

// KeySpace maps each distinct key to its positional index and its dense slot.
// The zero value is an empty key space.
type KeySpace[K comparable] struct {
	index map[K]int // key -> last-occurrence position in the input
	slot  map[K]int // key -> dense rank 0..Len()-1 (grid coordinate)
	keys  []K       // distinct keys, ascending by index (slot order)
}

// NewKeySpace builds a KeySpace from keys; nil or empty input yields an empty space.
// Implementation:
//   - Stage 1: sequential overwrite index[k] = i (last occurrence wins).
//   - Stage 2: collect surviving occurrences in input order (ascending index)
//     and assign dense slots.
//
// Complexity:
//   - Time O(n), Space O(n) for n=len(keys).
func NewKeySpace[K comparable](keys []K) *KeySpace[K] {
	ks := &KeySpace[K]{
		index: make(map[K]int, len(keys)),
		slot:  make(map[K]int, len(keys)),
	}
	for i, k := range keys {
		ks.index[k] = i
	}

	ks.keys = make([]K, 0, len(ks.index))
	for i, k := range keys {
		if ks.index[k] == i { // keep only the surviving occurrence
			ks.keys = append(ks.keys, k)
		}
	}
	for s, k := range ks.keys {
		ks.slot[k] = s
	}

	return ks
}

// Len returns the number of distinct keys. Complexity: O(1).
func (ks *KeySpace[K]) Len() int { return len(ks.keys) }

// Index returns the positional index of k (its last occurrence in the input).
func (ks *KeySpace[K]) Index(k K) (int, bool) {
	i, ok := ks.index[k]
	return i, ok
}

// Contains reports whether k is a member of the key space.
func (ks *KeySpace[K]) Contains(k K) bool {
	_, ok := ks.index[k]
	return ok
}

// Keys returns a copy of the distinct keys in ascending index order.
func (ks *KeySpace[K]) Keys() []K {
	out := make([]K, len(ks.keys))
	copy(out, ks.keys)

	return out
}

// slotOf returns the dense grid coordinate of k.
func (ks *KeySpace[K]) slotOf(k K) (int, bool) {
	s, ok := ks.slot[k]
	return s, ok
}

// duplicates returns how many input keys were collapsed into earlier entries.
func (ks *KeySpace[K]) duplicates(n int) int { return n - len(ks.keys) }
