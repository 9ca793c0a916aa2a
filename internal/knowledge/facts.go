package knowledge

import "github.com/adrienfranto/ia-enquete-policie/internal/domain"

// Suspect enumeration order is significant: AllGuilty reports in this order.
var defaultSuspects = []domain.Suspect{"john", "mary", "alice", "bruno", "sophie"}

var defaultFacts = []domain.Fact{
	// theft
	{Kind: domain.EvidenceMotive, Suspect: "john", Crime: domain.CrimeTypeTheft},
	{Kind: domain.EvidenceNearScene, Suspect: "john", Crime: domain.CrimeTypeTheft},
	{Kind: domain.EvidenceFingerprints, Suspect: "john", Crime: domain.CrimeTypeTheft},

	// murder
	{Kind: domain.EvidenceMotive, Suspect: "mary", Crime: domain.CrimeTypeMurder},
	{Kind: domain.EvidenceNearScene, Suspect: "mary", Crime: domain.CrimeTypeMurder},
	{Kind: domain.EvidenceFingerprints, Suspect: "mary", Crime: domain.CrimeTypeMurder},
	{Kind: domain.EvidenceEyewitness, Suspect: "mary", Crime: domain.CrimeTypeMurder},

	// fraud
	{Kind: domain.EvidenceMotive, Suspect: "alice", Crime: domain.CrimeTypeFraud},
	{Kind: domain.EvidenceBankTransaction, Suspect: "alice", Crime: domain.CrimeTypeFraud},
	{Kind: domain.EvidenceBankTransaction, Suspect: "bruno", Crime: domain.CrimeTypeFraud},
	// No motive is on file for sophie.
	{Kind: domain.EvidenceFakeIdentity, Suspect: "sophie", Crime: domain.CrimeTypeFraud},
}

// Default returns the compiled-in case file.
func Default() *Base {
	return New(defaultSuspects, domain.CrimeTypes, defaultFacts)
}
