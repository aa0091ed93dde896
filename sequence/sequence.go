package sequence

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrInvalidArgument is returned when a sequence is repeated a negative
// number of times.
var ErrInvalidArgument = errors.New("invalid argument")

// A Sequence represents an ordered, resizable collection of elements of
// type T. The zero value is an empty sequence ready to use.
type Sequence[T any] []T

// Concat returns a new sequence holding the elements of a followed by the
// elements of b. Neither a nor b is modified and the result never shares
// memory with them.
func Concat[T any](a, b Sequence[T]) Sequence[T] {
	s := make(Sequence[T], len(a)+len(b))
	n := copy(s, a)
	copy(s[n:], b)
	return s
}

// Append appends the elements of addition to target and returns target.
// Existing elements of target are preserved. Appending a sequence to
// itself is allowed. Like the built-in append, Append reuses the spare
// capacity of target when it is large enough.
func Append[T any](target *Sequence[T], addition Sequence[T]) *Sequence[T] {
	*target = append(*target, addition...)
	return target
}

// Repeat returns a new sequence holding n copies of the elements of s. The
// result is empty if n is 0. An error wrapping ErrInvalidArgument is
// returned if n is negative or if the resulting length cannot be
// represented.
func Repeat[T any, N constraints.Integer](s Sequence[T], n N) (Sequence[T], error) {
	total, err := repeatedLength(len(s), n)
	if err != nil {
		return nil, err
	}
	x := make(Sequence[T], total)
	fill(x, copy(x, s))
	return x, nil
}

// RepeatInPlace resizes target to hold n copies of its original elements
// and returns target. On error, target is left unchanged. As with the
// built-in append, the result is written into the spare capacity of target
// when it is large enough, overwriting the elements of any other slice that
// shares that backing array. Clone target first when it may be aliased.
func RepeatInPlace[T any, N constraints.Integer](target *Sequence[T], n N) (*Sequence[T], error) {
	s := *target
	size := len(s)
	total, err := repeatedLength(size, n)
	if err != nil {
		return target, err
	}
	switch {
	case total <= size:
		// Only n == 0 shrinks the sequence, release the dropped elements.
		clear(s[total:])
		s = s[:total]
	case total <= cap(s):
		s = s[:total]
	default:
		x := make(Sequence[T], total)
		copy(x, s)
		s = x
	}
	fill(s, size)
	*target = s
	return target, nil
}

// Equal reports whether a and b have the same length and hold equal
// elements at each index.
func Equal[T comparable](a, b Sequence[T]) bool {
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

// EqualFunc is like Equal but compares elements using eq.
func EqualFunc[T, U any](a Sequence[T], b Sequence[U], eq func(T, U) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Concat is the method form of the Concat function.
func (s Sequence[T]) Concat(x Sequence[T]) Sequence[T] {
	return Concat(s, x)
}

// Append is the method form of the Append function.
func (s *Sequence[T]) Append(x Sequence[T]) *Sequence[T] {
	return Append(s, x)
}

// Repeat is the method form of the Repeat function.
func (s Sequence[T]) Repeat(n int) (Sequence[T], error) {
	return Repeat(s, n)
}

// Len returns the number of elements in the sequence.
func (s Sequence[T]) Len() int {
	return len(s)
}

// clone returns a copy of s. The copy of a nil sequence is nil.
func (s Sequence[T]) clone() Sequence[T] {
	if s == nil {
		return nil
	}
	x := make(Sequence[T], len(s))
	copy(x, s)
	return x
}

// fill repeats the first n elements of s until s is full. Each pass only
// reads from the already written prefix.
func fill[T any](s Sequence[T], n int) {
	if n == 0 {
		return
	}
	for n < len(s) {
		n += copy(s[n:], s[:n])
	}
}

// repeatedLength returns size*n, returning an error if n is negative or if
// the product overflows an int.
func repeatedLength[N constraints.Integer](size int, n N) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative repetition count %d", ErrInvalidArgument, n)
	}
	count := int(n)
	if N(count) != n || count < 0 || (size != 0 && count > math.MaxInt/size) {
		return 0, fmt.Errorf("%w: repetition count %d overflows", ErrInvalidArgument, n)
	}
	return size * count, nil
}
