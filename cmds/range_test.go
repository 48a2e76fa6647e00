package cmds_test

import (
	"reflect"
	"strconv"
	"strings"
	"testing"
)

func TestRange(t *testing.T) {
	tests := []struct {
		argv []string
		want []string
	}{{
		argv: []string{"range", "-n", "5", "6"},
		want: []string{"6", "1", "3", "1", "4"},
	}, {
		argv: []string{"range", "-n", "5", "1", "6"},
		want: []string{"2", "4", "2", "5", "4"},
	}, {
		argv: []string{"range", "-n", "3", "-s", "12345", "100", "199"},
		want: []string{"136", "105", "181"},
	}, {
		argv: []string{"range", "7", "7"},
		want: []string{"7"},
	}, {
		argv: []string{"range", "0"},
		want: []string{"0"},
	}}
	for _, tt := range tests {
		t.Run(strings.Join(tt.argv, " "), func(t *testing.T) {
			if got := runN(t, tt.argv...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRangeBounds(t *testing.T) {
	for _, line := range runN(t, "range", "-n", "500", "-S", "bounds", "60", "170") {
		v, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			t.Fatal(err)
		}
		if v < 60 || v > 170 {
			t.Errorf("%d outside [60, 170]", v)
		}
	}
}

func TestRangeInvalidInput(t *testing.T) {
	tests := []struct {
		argv []string
		msg  string
	}{{
		argv: []string{"range"},
		msg:  "bad argc: want 1 or 2",
	}, {
		argv: []string{"range", "1", "2", "3"},
		msg:  "bad argc: want 1 or 2",
	}, {
		argv: []string{"range", "9", "3"},
		msg:  "bad range: 9 > 3",
	}, {
		argv: []string{"range", "lots"},
		msg:  "bad max",
	}, {
		argv: []string{"range", "few", "9"},
		msg:  "bad min",
	}, {
		argv: []string{"range", "-n", "-3", "9"},
		msg:  "bad count: must not be negative",
	}}
	for _, tt := range tests {
		t.Run(strings.Join(tt.argv, " "), func(t *testing.T) {
			if got := failN(t, tt.argv...); !strings.HasPrefix(got[0], tt.msg) {
				t.Errorf("got %q, want prefix %q", got[0], tt.msg)
			}
		})
	}
}
