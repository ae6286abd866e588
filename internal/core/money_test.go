package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1000", 1000, true},
		{" 250 ", 250, true},
		{"0", 0, false},
		{"", 0, false},
		{"-10", 0, false},
		{"12.5", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ParseAmount(%q) = %d, %v; want %d", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseAmount(%q) expected error", tc.in)
		}
	}
}

func TestParseRate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"0.215", "0.215", true},
		{"0,22", "0.22", true},
		{"1", "1", true},
		{"0", "", false},
		{"-0.2", "", false},
		{"", "", false},
		{"rate", "", false},
	}
	for _, tc := range cases {
		got, err := ParseRate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseRate(%q): %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Fatalf("ParseRate(%q) = %s, want %s", tc.in, got, tc.want)
			}
			continue
		}
		if err == nil {
			t.Fatalf("ParseRate(%q) expected error", tc.in)
		}
	}
}
