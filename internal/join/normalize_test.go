package join

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"ACME Inc", "acme"},
		{"acme", "acme"},
		{"  Acme  ", "acme"},
		{"ACME Co., Ltd.", "acme"},
		{"Acme Corporation", "acme"},
		{"Acme Corp.", "acme"},
		{"Acme, Inc.", "acme"},
		{"Globex (formerly Initech)", "globex"},
		{"Globex (EMEA) Ltd", "globex"},
		{"Wayne   Enterprises  LLC", "wayne enterprises"},
		{"Stark Industries GmbH", "stark industries"},
		// Stacked suffixes strip one at a time until none match.
		{"Acme Holdings Co., Ltd.", "acme holdings"},
		{"", ""},
		{"   ", ""},
		// A bare suffix normalizes to nothing.
		{"Inc.", ""},
		// Suffix token inside a word is not a suffix.
		{"Incline Village", "incline village"},
		{"Tangocode", "tangocode"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"ACME Co., Ltd.",
		"Globex (EMEA) Ltd",
		"Wayne   Enterprises  LLC",
		"plain name",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func TestMatchKey(t *testing.T) {
	if got := MatchKey("Jane Doe", "ACME Inc"); got != "jane doe|acme" {
		t.Errorf("MatchKey = %q", got)
	}
	// Both sides normalize, so display variants converge.
	a := MatchKey("Jane  Doe", "ACME Co., Ltd.")
	b := MatchKey("jane doe", "Acme")
	if a != b {
		t.Errorf("keys diverge: %q vs %q", a, b)
	}
}
