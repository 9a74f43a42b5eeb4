package scoring

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"5.6", "5.6"},
		{"5,6", "5.6"},
		{"(5, 6)", "5.6"},
		{" ( 5 , 6 ) ", "5.6"},
		{"50%", "50"},
		{"50", "50"},
		{"  Forty Two ", "fortytwo"},
		{"1 000,5", "1000.5"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeVariantsCompareEqual(t *testing.T) {
	variants := []string{"(5, 6)", "5,6", "5.6", " 5.6 ", "(5.6)"}
	for _, v := range variants {
		if Normalize(v) != "5.6" {
			t.Fatalf("variant %q normalized to %q", v, Normalize(v))
		}
	}
	if Normalize("50%") != Normalize("50") {
		t.Fatalf("percent variant not equal: %q vs %q", Normalize("50%"), Normalize("50"))
	}
}
