package sequence

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y int
}

func TestFormat(t *testing.T) {
	tests := []struct {
		id   int
		got  string
		want string
	}{
		{1, Format(Sequence[int]{1, 2, 3}), "Sequence<int>{ 1, 2, 3 }"},
		{2, Format(Sequence[int]{}), "Sequence<int>{  }"},
		{3, Format(Sequence[int](nil)), "Sequence<int>{  }"},
		{4, Format(Sequence[string]{"a", "b"}), "Sequence<string>{ a, b }"},
		{5, Format(Sequence[float64]{0.5}), "Sequence<float64>{ 0.5 }"},
		{6, Format(Sequence[time.Duration]{time.Second}), "Sequence<time.Duration>{ 1s }"},
		{7, Format(Sequence[point]{{1, 2}}), "Sequence<sequence.point>{ {1 2} }"},
		{8, FormatLabel("pt", Sequence[point]{{1, 2}, {3, 4}}), "Sequence<pt>{ {1 2}, {3 4} }"},
		{9, FormatLabel("nested", Sequence[Sequence[int]]{{1}, {}}), "Sequence<nested>{ Sequence<int>{ 1 }, Sequence<int>{  } }"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("test %d:\ngot  %s\nwant %s", tt.id, tt.got, tt.want)
		}
	}
}

func TestFormatDoesNotModify(t *testing.T) {
	s := Sequence[int]{3, 2, 1}
	_ = Format(s)
	assert.Equal(t, Sequence[int]{3, 2, 1}, s)
}

func TestSequenceString(t *testing.T) {
	s := Sequence[int]{1, 2}
	assert.Equal(t, "Sequence<int>{ 1, 2 }", s.String())
	assert.Equal(t, "Sequence<int>{ 1, 2 }", fmt.Sprint(s))
	assert.Equal(t, "[Sequence<int>{ 1, 2 }]", fmt.Sprintf("[%v]", s))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	n, err := Fprint(&buf, Sequence[int]{1, 2, 3})
	if err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	want := "Sequence<int>{ 1, 2, 3 }"
	if got := buf.String(); got != want {
		t.Fatalf("\ngot  %s\nwant %s", got, want)
	}
	if n != len(want) {
		t.Fatalf("got %d, want %d", n, len(want))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestFprintError(t *testing.T) {
	_, err := Fprint(failingWriter{}, Sequence[int]{1})
	assert.EqualError(t, err, "write failed")
}

func TestAppendFormat(t *testing.T) {
	buf := []byte("x=")
	got := appendFormat(buf, "int", Sequence[int]{1})
	assert.Equal(t, "x=Sequence<int>{ 1 }", string(got))
}
