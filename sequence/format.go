package sequence

import (
	"fmt"
	"io"
	"reflect"
)

const (
	formatPrefix    = "Sequence<"
	formatOpen      = ">{ "
	formatSeparator = ", "
	formatSuffix    = " }"
)

// Format returns a human readable representation of s, such as
// "Sequence<int>{ 1, 2, 3 }", using the name of T as label. Elements are
// formatted with the %v verb. The output is not meant to be parsed.
func Format[T any](s Sequence[T]) string {
	return string(appendFormat(nil, typeLabel[T](), s))
}

// FormatLabel is like Format but uses label instead of the name of T.
func FormatLabel[T any](label string, s Sequence[T]) string {
	return string(appendFormat(nil, label, s))
}

// Fprint writes the representation of s returned by Format to w. It returns
// the number of bytes written and any write error encountered.
func Fprint[T any](w io.Writer, s Sequence[T]) (int, error) {
	return w.Write(appendFormat(nil, typeLabel[T](), s))
}

// String implements fmt.Stringer using Format.
func (s Sequence[T]) String() string {
	return Format(s)
}

// appendFormat appends the representation of s to buf using label as
// element type label and returns the extended buffer.
func appendFormat[T any](buf []byte, label string, s Sequence[T]) []byte {
	if buf == nil {
		buf = make([]byte, 0, len(formatPrefix)+len(label)+len(formatOpen)+len(formatSuffix)+len(s)*4)
	}
	buf = append(buf, formatPrefix...)
	buf = append(buf, label...)
	buf = append(buf, formatOpen...)
	for i := range s {
		if i > 0 {
			buf = append(buf, formatSeparator...)
		}
		buf = fmt.Append(buf, s[i])
	}
	return append(buf, formatSuffix...)
}

// typeLabel returns the name of T as printed by the %T verb, e.g. "int" or
// "time.Duration".
func typeLabel[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
