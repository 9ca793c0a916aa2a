package knowledge

import (
	"testing"

	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBase_HasFact(t *testing.T) {
	kb := Default()

	tests := []struct {
		name    string
		kind    domain.EvidenceKind
		suspect domain.Suspect
		crime   domain.CrimeType
		want    bool
	}{
		{"john motive theft", domain.EvidenceMotive, "john", domain.CrimeTypeTheft, true},
		{"mary eyewitness murder", domain.EvidenceEyewitness, "mary", domain.CrimeTypeMurder, true},
		{"sophie fake identity fraud", domain.EvidenceFakeIdentity, "sophie", domain.CrimeTypeFraud, true},
		{"sophie has no motive", domain.EvidenceMotive, "sophie", domain.CrimeTypeFraud, false},
		{"john has no murder facts", domain.EvidenceMotive, "john", domain.CrimeTypeMurder, false},
		{"unknown suspect", domain.EvidenceMotive, "zoe", domain.CrimeTypeTheft, false},
		{"unknown crime", domain.EvidenceMotive, "john", "arson", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kb.HasFact(tt.kind, tt.suspect, tt.crime))
		})
	}
}

func TestBase_FactsForOrder(t *testing.T) {
	// Declared out of enumeration order on purpose.
	kb := New(
		[]domain.Suspect{"x"},
		[]domain.CrimeType{domain.CrimeTypeMurder},
		[]domain.Fact{
			{Kind: domain.EvidenceEyewitness, Suspect: "x", Crime: domain.CrimeTypeMurder},
			{Kind: domain.EvidenceMotive, Suspect: "x", Crime: domain.CrimeTypeMurder},
			{Kind: domain.EvidenceNearScene, Suspect: "x", Crime: domain.CrimeTypeMurder},
		},
	)

	assert.Equal(t,
		[]domain.EvidenceKind{domain.EvidenceMotive, domain.EvidenceNearScene, domain.EvidenceEyewitness},
		kb.FactsFor("x", domain.CrimeTypeMurder))
}

func TestBase_FactsForEmpty(t *testing.T) {
	kb := Default()

	got := kb.FactsFor("nobody", domain.CrimeTypeTheft)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBase_Duplicates(t *testing.T) {
	f := domain.Fact{Kind: domain.EvidenceMotive, Suspect: "x", Crime: domain.CrimeTypeFraud}
	kb := New([]domain.Suspect{"x"}, domain.CrimeTypes, []domain.Fact{f, f})

	assert.Len(t, kb.Facts(), 1)
}

func TestBase_ReturnsCopies(t *testing.T) {
	kb := Default()

	suspects := kb.Suspects()
	suspects[0] = "mallory"
	assert.Equal(t, domain.Suspect("john"), kb.Suspects()[0])

	crimes := kb.CrimeTypes()
	crimes[0] = "arson"
	assert.True(t, kb.IsCrimeType(domain.CrimeTypeTheft))
}

func TestDefault_Membership(t *testing.T) {
	kb := Default()

	assert.Equal(t, []domain.Suspect{"john", "mary", "alice", "bruno", "sophie"}, kb.Suspects())
	assert.True(t, kb.IsSuspect("bruno"))
	assert.False(t, kb.IsSuspect("Bruno"))
	assert.False(t, kb.IsCrimeType("vol"))
	assert.Len(t, kb.Facts(), 11)
}
