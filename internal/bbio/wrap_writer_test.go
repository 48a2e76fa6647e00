package bbio_test

import (
	"strings"
	"testing"

	"lesiw.io/shr3/internal/bbio"
)

func TestWrapWriter(t *testing.T) {
	tests := []struct {
		name   string
		c      int
		writes []string
		want   string
	}{{
		name:   "no wrap",
		c:      0,
		writes: []string{"abcdef", "ghij"},
		want:   "abcdefghij",
	}, {
		name:   "single write",
		c:      4,
		writes: []string{"abcdefghij"},
		want:   "abcd\nefgh\nij",
	}, {
		name:   "exact fit",
		c:      5,
		writes: []string{"abcde"},
		want:   "abcde",
	}, {
		name:   "split writes",
		c:      3,
		writes: []string{"ab", "cd", "e", "fghi"},
		want:   "abc\ndef\nghi",
	}, {
		name:   "byte at a time",
		c:      2,
		writes: []string{"a", "b", "c", "d", "e"},
		want:   "ab\ncd\ne",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := new(strings.Builder)
			w := bbio.NewWrapWriter(out, tt.c)
			for _, s := range tt.writes {
				n, err := w.Write([]byte(s))
				if err != nil {
					t.Fatal(err)
				}
				if n != len(s) {
					t.Errorf("Write(%q) = %d, want %d", s, n, len(s))
				}
			}
			if got := out.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
