// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package iter holds the small set of combinators used to move tokens and
// files between pipeline stages.
package iter

import (
	"context"

	"gopkg.microglot.org/javac.go/internal/idl"
	"gopkg.microglot.org/javac.go/internal/optional"
)

// NewSlice returns an Iterator over vs. The slice is not copied.
func NewSlice[T any](vs []T) idl.Iterator[T] {
	return &sliceIter[T]{values: vs}
}

type sliceIter[T any] struct {
	values []T
	next   int
}

func (it *sliceIter[T]) Next(ctx context.Context) optional.Optional[T] {
	if it.next >= len(it.values) {
		return optional.None[T]()
	}
	v := it.values[it.next]
	it.next = it.next + 1
	return optional.Some(v)
}

func (it *sliceIter[T]) Close(ctx context.Context) error {
	it.next = len(it.values)
	return nil
}

// NewIteratorFilter drops every value that f does not keep.
func NewIteratorFilter[T any](it idl.Iterator[T], f idl.Filter[T]) idl.Iterator[T] {
	return &filterIter[T]{src: it, keep: f}
}

type filterIter[T any] struct {
	src  idl.Iterator[T]
	keep idl.Filter[T]
}

func (it *filterIter[T]) Next(ctx context.Context) optional.Optional[T] {
	v := it.src.Next(ctx)
	for v.IsPresent() && !it.keep.Keep(ctx, v.Value()) {
		v = it.src.Next(ctx)
	}
	return v
}

func (it *filterIter[T]) Close(ctx context.Context) error {
	return it.src.Close(ctx)
}

// NewLookahead buffers n values beyond the current one. Lookahead(0) is the
// value most recently returned by Next and Lookahead(n) is n values past it.
// Peeking before the first Next does not consume anything.
func NewLookahead[T any](it idl.Iterator[T], n uint8) idl.Lookahead[T] {
	return &ringLookahead[T]{
		src:  it,
		ring: make([]optional.Optional[T], int(n)+1),
	}
}

type ringLookahead[T any] struct {
	src     idl.Iterator[T]
	ring    []optional.Optional[T]
	head    int
	filled  bool
	started bool
}

func (look *ringLookahead[T]) fill(ctx context.Context) {
	if look.filled {
		return
	}
	for x := range look.ring {
		look.ring[x] = look.src.Next(ctx)
	}
	look.filled = true
}

func (look *ringLookahead[T]) Next(ctx context.Context) optional.Optional[T] {
	look.fill(ctx)
	if !look.started {
		look.started = true
		return look.ring[look.head]
	}
	look.ring[look.head] = look.src.Next(ctx)
	look.head = (look.head + 1) % len(look.ring)
	return look.ring[look.head]
}

func (look *ringLookahead[T]) Lookahead(ctx context.Context, n uint8) optional.Optional[T] {
	if int(n) >= len(look.ring) {
		return optional.None[T]()
	}
	look.fill(ctx)
	if !look.started {
		if n == 0 {
			return optional.None[T]()
		}
		n = n - 1
	}
	return look.ring[(look.head+int(n))%len(look.ring)]
}

func (look *ringLookahead[T]) Close(ctx context.Context) error {
	return look.src.Close(ctx)
}

// FilterFunc lets a plain function satisfy idl.Filter. Signatures should
// name idl.Filter rather than this type.
type FilterFunc[T any] func(ctx context.Context, val T) bool

func (f FilterFunc[T]) Keep(ctx context.Context, val T) bool {
	return f(ctx, val)
}

// Collect drains the iterator into a slice and closes it. A cancelled
// context stops the drain and is returned with the values read so far.
func Collect[T any](ctx context.Context, it idl.Iterator[T]) ([]T, error) {
	var out []T
	for v := it.Next(ctx); v.IsPresent(); v = it.Next(ctx) {
		out = append(out, v.Value())
	}
	if err := ctx.Err(); err != nil {
		_ = it.Close(ctx)
		return out, err
	}
	return out, it.Close(ctx)
}
