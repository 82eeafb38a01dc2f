package aic

import "testing"

func TestClean(t *testing.T) {
	cases := []struct {
		in   string
		drop string
		want string
	}{
		{"0 0 9 CVD", " ", "009CVD"},
		{"009CVD", " ", "009CVD"},
		{"0-09.CVD", "-.", "009CVD"},
		{" 009CVD ", "", " 009CVD "},
		{"", " ", ""},
	}
	for _, c := range cases {
		if got := clean(c.in, c.drop); got != c.want {
			t.Errorf("clean(%q, %q) = %q, want %q", c.in, c.drop, got, c.want)
		}
	}
}
