package core

import "testing"

func TestParseHours(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"1", 1, true},
		{"2.5", 2.5, true},
		{"2,5", 2.5, true},
		{" 0.25 ", 0.25, true},
		{"8", 8, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"NaN", 0, false},
		{"+Inf", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseHours(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestFormatHours(t *testing.T) {
	cases := map[float64]string{
		3:    "3",
		2.5:  "2.5",
		0.25: "0.25",
		10:   "10",
	}
	for in, want := range cases {
		if got := FormatHours(in); got != want {
			t.Fatalf("FormatHours(%v) = %q, want %q", in, got, want)
		}
	}
}
