package engine

import (
	"context"
	"testing"

	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
	"github.com/adrienfranto/ia-enquete-policie/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_IsGuilty(t *testing.T) {
	e := Default()

	tests := []struct {
		suspect domain.Suspect
		crime   domain.CrimeType
		want    bool
	}{
		{"john", domain.CrimeTypeTheft, true},
		{"mary", domain.CrimeTypeMurder, true},
		{"alice", domain.CrimeTypeFraud, true},
		{"bruno", domain.CrimeTypeFraud, false},
		{"sophie", domain.CrimeTypeFraud, false},
		{"john", domain.CrimeTypeMurder, false},
		{"mary", domain.CrimeTypeTheft, false},
		{"alice", domain.CrimeTypeTheft, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.suspect)+"/"+string(tt.crime), func(t *testing.T) {
			assert.Equal(t, tt.want, e.IsGuilty(tt.suspect, tt.crime))
		})
	}
}

func TestEngine_UnknownInputsAreNeverGuilty(t *testing.T) {
	e := Default()

	for _, s := range []domain.Suspect{"zoe", "", "John"} {
		for _, c := range domain.CrimeTypes {
			assert.False(t, e.IsGuilty(s, c), "%s/%s", s, c)
		}
	}
	for _, s := range e.KnowledgeBase().Suspects() {
		for _, c := range []domain.CrimeType{"arson", "vol", ""} {
			assert.False(t, e.IsGuilty(s, c), "%s/%s", s, c)
			assert.Empty(t, e.EvidenceAgainst(s, c))
		}
	}
	assert.Empty(t, e.AllGuilty("arson"))
}

func TestEngine_EvidenceAgainst(t *testing.T) {
	e := Default()

	assert.Equal(t,
		[]domain.EvidenceKind{domain.EvidenceMotive, domain.EvidenceNearScene, domain.EvidenceFingerprints},
		e.EvidenceAgainst("john", domain.CrimeTypeTheft))

	mary := e.EvidenceAgainst("mary", domain.CrimeTypeMurder)
	assert.Contains(t, mary, domain.EvidenceFingerprints)
	assert.Contains(t, mary, domain.EvidenceEyewitness)

	assert.Equal(t,
		[]domain.EvidenceKind{domain.EvidenceMotive, domain.EvidenceBankTransaction},
		e.EvidenceAgainst("alice", domain.CrimeTypeFraud))

	// Evidence is reported even when it is not enough to convict.
	assert.Equal(t, []domain.EvidenceKind{domain.EvidenceFakeIdentity}, e.EvidenceAgainst("sophie", domain.CrimeTypeFraud))
	assert.Equal(t, []domain.EvidenceKind{domain.EvidenceBankTransaction}, e.EvidenceAgainst("bruno", domain.CrimeTypeFraud))
}

func TestEngine_SophieFraudRequiresMotive(t *testing.T) {
	e := Default()

	require.False(t, e.KnowledgeBase().HasFact(domain.EvidenceMotive, "sophie", domain.CrimeTypeFraud))
	assert.False(t, e.IsGuilty("sophie", domain.CrimeTypeFraud))
	assert.True(t, e.IsInnocent("sophie", domain.CrimeTypeFraud))
}

func TestEngine_AllGuilty(t *testing.T) {
	e := Default()

	assert.Equal(t, []domain.Suspect{"john"}, e.AllGuilty(domain.CrimeTypeTheft))
	assert.Equal(t, []domain.Suspect{"mary"}, e.AllGuilty(domain.CrimeTypeMurder))
	assert.Equal(t, []domain.Suspect{"alice"}, e.AllGuilty(domain.CrimeTypeFraud))
}

func TestEngine_AllGuiltyFollowsSuspectOrder(t *testing.T) {
	facts := []domain.Fact{}
	for _, s := range []domain.Suspect{"zed", "amy"} {
		facts = append(facts,
			domain.Fact{Kind: domain.EvidenceMotive, Suspect: s, Crime: domain.CrimeTypeFraud},
			domain.Fact{Kind: domain.EvidenceFakeIdentity, Suspect: s, Crime: domain.CrimeTypeFraud},
		)
	}
	e := New(knowledge.New([]domain.Suspect{"zed", "amy"}, domain.CrimeTypes, facts), DefaultRules())

	assert.Equal(t, []domain.Suspect{"zed", "amy"}, e.AllGuilty(domain.CrimeTypeFraud))
}

func TestEngine_MurderByEyewitnessAlone(t *testing.T) {
	kb := knowledge.New([]domain.Suspect{"x"}, domain.CrimeTypes, []domain.Fact{
		{Kind: domain.EvidenceMotive, Suspect: "x", Crime: domain.CrimeTypeMurder},
		{Kind: domain.EvidenceNearScene, Suspect: "x", Crime: domain.CrimeTypeMurder},
		{Kind: domain.EvidenceEyewitness, Suspect: "x", Crime: domain.CrimeTypeMurder},
	})
	e := New(kb, DefaultRules())

	assert.True(t, e.IsGuilty("x", domain.CrimeTypeMurder))
}

func TestEngine_IsInnocent(t *testing.T) {
	e := Default()

	assert.False(t, e.IsInnocent("john", domain.CrimeTypeTheft))
	assert.True(t, e.IsInnocent("john", domain.CrimeTypeFraud))
	assert.True(t, e.IsInnocent("bruno", domain.CrimeTypeFraud))
	assert.False(t, e.IsInnocent("zoe", domain.CrimeTypeFraud))
	assert.False(t, e.IsInnocent("john", "arson"))
}

func TestEngine_Idempotent(t *testing.T) {
	e := Default()

	for i := 0; i < 3; i++ {
		assert.True(t, e.IsGuilty("mary", domain.CrimeTypeMurder))
		assert.Equal(t, []domain.Suspect{"alice"}, e.AllGuilty(domain.CrimeTypeFraud))
		assert.Len(t, e.EvidenceAgainst("mary", domain.CrimeTypeMurder), 4)
	}
}

func TestEngine_Verdict(t *testing.T) {
	e := Default()
	ctx := context.Background()

	v, err := e.Verdict(ctx, "mary", domain.CrimeTypeMurder)
	require.NoError(t, err)
	assert.True(t, v.Guilty)
	assert.False(t, v.Innocent)
	assert.Equal(t, Name, v.Engine)
	assert.Len(t, v.Evidence, 4)

	suspects, err := e.GuiltySuspects(ctx, domain.CrimeTypeTheft)
	require.NoError(t, err)
	assert.Equal(t, []domain.Suspect{"john"}, suspects)
}
