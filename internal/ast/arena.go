package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is an append-only store addressed by 1-based indices; 0 means "none".
type Arena[T any] struct {
	data []T
}

// NewArena creates and returns an *Arena[T] whose internal slice is allocated with a capacity of capHint.
// capHint is a hint for the initial capacity of the arena's underlying storage; zero is allowed.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	return a.Len()
}

func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 || index > a.Len() {
		return nil
	}
	return &a.data[index-1]
}

// Slice exposes the backing storage; callers must treat it as read-only.
func (a *Arena[T]) Slice() []T {
	return a.data
}

func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("arena length overflow: %w", err))
	}
	return n
}
