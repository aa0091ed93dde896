/*
Package sequence implements generic operations over dynamic arrays. It defines
the type Sequence, a named slice type, with functions for formatting,
concatenating, repeating and comparing sequences, and the type Store, with
methods for interacting with a collection of named sequences.

Operations either read their inputs or return newly allocated sequences, except
Append and RepeatInPlace which grow the target sequence in place and return it
to allow chaining:

	s := sequence.Sequence[int]{1, 2}
	sequence.Append(&s, sequence.Sequence[int]{3})
	fmt.Println(s) // Sequence<int>{ 1, 2, 3 }

Repeating a sequence a negative number of times returns an error wrapping
ErrInvalidArgument. No other operation can fail.

Functions and methods on Sequence are not safe for concurrent use on the same
sequence. A Store is essentially a wrapper around a map of sequences that
provides convenience methods safe to use from multiple goroutines.
*/
package sequence
