package domain

type Suspect string

type CrimeType string

const (
	CrimeTypeTheft  CrimeType = "theft"
	CrimeTypeMurder CrimeType = "murder"
	CrimeTypeFraud  CrimeType = "fraud"
)

// CrimeTypes lists every crime type in its fixed order.
var CrimeTypes = []CrimeType{CrimeTypeTheft, CrimeTypeMurder, CrimeTypeFraud}

// crimeTypeAliases maps the French crime names used by the case file.
var crimeTypeAliases = map[string]CrimeType{
	"vol":         CrimeTypeTheft,
	"assassinat":  CrimeTypeMurder,
	"escroquerie": CrimeTypeFraud,
}

// ParseCrimeType resolves aliases to their canonical crime type.
// Unrecognized names are returned unchanged; they simply match no rule.
// The input is expected to be lower case already.
func ParseCrimeType(s string) CrimeType {
	if c, ok := crimeTypeAliases[s]; ok {
		return c
	}
	return CrimeType(s)
}

func ValidCrimeType(c CrimeType) bool {
	switch c {
	case CrimeTypeTheft, CrimeTypeMurder, CrimeTypeFraud:
		return true
	}
	return false
}

type EvidenceKind string

const (
	EvidenceMotive          EvidenceKind = "motive"
	EvidenceNearScene       EvidenceKind = "near_scene"
	EvidenceFingerprints    EvidenceKind = "fingerprints"
	EvidenceBankTransaction EvidenceKind = "bank_transaction"
	EvidenceFakeIdentity    EvidenceKind = "fake_identity"
	EvidenceEyewitness      EvidenceKind = "eyewitness"
)

// EvidenceKinds is the enumeration order used for every evidence listing.
var EvidenceKinds = []EvidenceKind{
	EvidenceMotive,
	EvidenceNearScene,
	EvidenceFingerprints,
	EvidenceBankTransaction,
	EvidenceFakeIdentity,
	EvidenceEyewitness,
}

// EvidenceInfo describes how an evidence kind is shown and named in Prolog.
type EvidenceInfo struct {
	Label     string
	Predicate string
}

var evidenceInfo = map[EvidenceKind]EvidenceInfo{
	EvidenceMotive:          {Label: "Motif", Predicate: "has_motive"},
	EvidenceNearScene:       {Label: "Présent sur les lieux", Predicate: "was_near_crime_scene"},
	EvidenceFingerprints:    {Label: "Empreintes sur l'arme", Predicate: "has_fingerprint_on_weapon"},
	EvidenceBankTransaction: {Label: "Transactions bancaires suspectes", Predicate: "has_bank_transaction"},
	EvidenceFakeIdentity:    {Label: "Fausse identité", Predicate: "owns_fake_identity"},
	EvidenceEyewitness:      {Label: "Témoin oculaire", Predicate: "eyewitness_identification"},
}

// Label returns the display label, or the kind itself when none is registered.
func (k EvidenceKind) Label() string {
	if info, ok := evidenceInfo[k]; ok {
		return info.Label
	}
	return string(k)
}

// Predicate returns the Prolog predicate asserting this kind of evidence.
func (k EvidenceKind) Predicate() string {
	if info, ok := evidenceInfo[k]; ok {
		return info.Predicate
	}
	return string(k)
}

// Fact asserts that one kind of evidence holds for a suspect and crime.
type Fact struct {
	Kind    EvidenceKind `json:"kind"`
	Suspect Suspect      `json:"suspect"`
	Crime   CrimeType    `json:"crime_type"`
}
