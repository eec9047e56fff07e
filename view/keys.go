package view

import (
	"fmt"
	"slices"
)

// KeySet is an ordered sequence of unique keys with constant-time lookup.
type KeySet[K comparable] interface {
	// Len returns the number of keys.
	Len() int
	// At returns the key at position i.
	At(i int) K
	// Index returns the position of key.
	Index(key K) (int, bool)
}

// List is a KeySet backed by an explicit key slice.
type List[K comparable] struct {
	keys  []K
	index map[K]int
}

// NewList builds a List. Keys must be unique.
func NewList[K comparable](keys []K) (*List[K], error) {
	index := make(map[K]int, len(keys))
	for i, k := range keys {
		if j, dup := index[k]; dup {
			return nil, fmt.Errorf("%w: %v at positions %d and %d", ErrDuplicateKey, k, j, i)
		}
		index[k] = i
	}
	return &List[K]{keys: slices.Clone(keys), index: index}, nil
}

func (l *List[K]) Len() int { return len(l.keys) }

func (l *List[K]) At(i int) K { return l.keys[i] }

func (l *List[K]) Index(key K) (int, bool) {
	i, ok := l.index[key]
	return i, ok
}

// Ordinals is the KeySet 0, 1, ..., n-1. It holds no per-key memory.
type Ordinals int

func (o Ordinals) Len() int { return int(o) }

func (o Ordinals) At(i int) int { return i }

func (o Ordinals) Index(key int) (int, bool) {
	if key < 0 || key >= int(o) {
		return 0, false
	}
	return key, true
}
