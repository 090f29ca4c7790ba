package model

import "testing"

func TestDivisionsFixedOrder(t *testing.T) {
	want := []Division{"Engineering", "Tech Programs", "Radio Support", "Hub Support"}
	got := Divisions()
	if len(got) != len(want) {
		t.Fatalf("expected %d divisions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("division %d: got %q want %q", i, got[i], want[i])
		}
	}

	got[0] = "Marketing"
	if Divisions()[0] != DivisionEngineering {
		t.Fatalf("Divisions must return a copy")
	}
}

func TestParseDivision(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"Engineering", true},
		{"Hub Support", true},
		{"engineering", false},
		{"Hub  Support", false},
		{"Marketing", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, ok := ParseDivision(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseDivision(%q) ok=%v, want %v", tt.in, ok, tt.ok)
			}
			if ok && string(d) != tt.in {
				t.Fatalf("ParseDivision(%q) = %q", tt.in, d)
			}
		})
	}
}
