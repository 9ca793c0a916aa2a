package domain

import "testing"

func TestParseCrimeType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want CrimeType
	}{
		{"canonical theft", "theft", CrimeTypeTheft},
		{"alias vol", "vol", CrimeTypeTheft},
		{"alias assassinat", "assassinat", CrimeTypeMurder},
		{"alias escroquerie", "escroquerie", CrimeTypeFraud},
		{"unknown passes through", "arson", CrimeType("arson")},
		{"empty", "", CrimeType("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCrimeType(tt.in)
			if got != tt.want {
				t.Errorf("ParseCrimeType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidCrimeType(t *testing.T) {
	for _, c := range CrimeTypes {
		if !ValidCrimeType(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if ValidCrimeType("vol") {
		t.Error("aliases are not canonical crime types")
	}
}

func TestEvidenceKindInfo(t *testing.T) {
	for _, k := range EvidenceKinds {
		if k.Label() == string(k) {
			t.Errorf("expected a label for %q", k)
		}
		if k.Predicate() == "" {
			t.Errorf("expected a predicate for %q", k)
		}
	}

	unknown := EvidenceKind("dna")
	if unknown.Label() != "dna" || unknown.Predicate() != "dna" {
		t.Error("unknown kinds should fall back to their own name")
	}
}

func TestVerdictClone(t *testing.T) {
	v := &Verdict{Suspect: "john", Evidence: []EvidenceKind{EvidenceMotive}}
	c := v.Clone()
	c.Evidence[0] = EvidenceEyewitness

	if v.Evidence[0] != EvidenceMotive {
		t.Fatal("clone shares evidence slice with original")
	}
}
