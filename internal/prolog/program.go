package prolog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
	"github.com/adrienfranto/ia-enquete-policie/internal/engine"
	"github.com/adrienfranto/ia-enquete-policie/internal/knowledge"
)

// Program renders a knowledge base and rule table as SWI-Prolog source
// defining is_guilty/2, guilty_suspects/2, evidence_against/3 and
// is_innocent/2.
func Program(kb *knowledge.Base, rules engine.Rules) string {
	var b strings.Builder

	b.WriteString("% Police investigation case file\n")
	b.WriteString(":- dynamic crime_type/1, suspect/1, is_guilty/2")
	for _, k := range domain.EvidenceKinds {
		fmt.Fprintf(&b, ", %s/2", k.Predicate())
	}
	b.WriteString(".\n\n")

	for _, c := range kb.CrimeTypes() {
		fmt.Fprintf(&b, "crime_type(%s).\n", quoteAtom(string(c)))
	}
	b.WriteString("\n")
	for _, s := range kb.Suspects() {
		fmt.Fprintf(&b, "suspect(%s).\n", quoteAtom(string(s)))
	}
	b.WriteString("\n")
	for _, f := range kb.Facts() {
		fmt.Fprintf(&b, "%s(%s, %s).\n", f.Kind.Predicate(), quoteAtom(string(f.Suspect)), quoteAtom(string(f.Crime)))
	}
	b.WriteString("\n")

	for _, c := range ruleOrder(kb, rules) {
		crime := quoteAtom(string(c))
		fmt.Fprintf(&b, "is_guilty(Suspect, %s) :-\n    %s.\n\n", crime, renderGoal(rules[c], crime, false))
	}

	b.WriteString("guilty_suspects(CrimeType, Suspects) :-\n")
	b.WriteString("    findall(Suspect, (suspect(Suspect), once(is_guilty(Suspect, CrimeType))), Suspects).\n\n")

	b.WriteString("evidence_against(Suspect, CrimeType, Evidence) :-\n")
	b.WriteString("    findall(Proof, (\n")
	for i, k := range domain.EvidenceKinds {
		sep := ";"
		if i == 0 {
			sep = " "
		}
		fmt.Fprintf(&b, "        %s %s(Suspect, CrimeType), Proof = %s\n", sep, k.Predicate(), quoteAtom(string(k)))
	}
	b.WriteString("    ), Evidence).\n\n")

	b.WriteString("is_innocent(Suspect, CrimeType) :-\n")
	b.WriteString("    suspect(Suspect),\n")
	b.WriteString("    crime_type(CrimeType),\n")
	b.WriteString("    \\+ is_guilty(Suspect, CrimeType).\n")

	return b.String()
}

// ruleOrder lists crime types with a rule: knowledge base order first,
// then any remaining rules sorted by name.
func ruleOrder(kb *knowledge.Base, rules engine.Rules) []domain.CrimeType {
	var order []domain.CrimeType
	seen := make(map[domain.CrimeType]bool)
	for _, c := range kb.CrimeTypes() {
		if _, ok := rules[c]; ok && !seen[c] {
			seen[c] = true
			order = append(order, c)
		}
	}
	var rest []domain.CrimeType
	for c := range rules {
		if !seen[c] {
			rest = append(rest, c)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(order, rest...)
}

func renderGoal(e engine.Expr, crime string, nested bool) string {
	switch x := e.(type) {
	case engine.Has:
		return fmt.Sprintf("%s(Suspect, %s)", domain.EvidenceKind(x).Predicate(), crime)
	case engine.All:
		if len(x) == 0 {
			return "true"
		}
		parts := make([]string, len(x))
		for i, sub := range x {
			parts[i] = renderGoal(sub, crime, true)
		}
		if nested {
			return "(" + strings.Join(parts, ", ") + ")"
		}
		return strings.Join(parts, ",\n    ")
	case engine.Any:
		if len(x) == 0 {
			return "fail"
		}
		parts := make([]string, len(x))
		for i, sub := range x {
			parts[i] = renderGoal(sub, crime, true)
		}
		return "( " + strings.Join(parts, " ; ") + " )"
	default:
		return "fail"
	}
}

// quoteAtom renders s as a quoted atom so caller input can never be read
// as a variable or goal. Control characters are written as escapes to keep
// every directive on one line.
func quoteAtom(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%X\`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func verdictGoal(suspect domain.Suspect, crime domain.CrimeType) string {
	s, c := quoteAtom(string(suspect)), quoteAtom(string(crime))
	return fmt.Sprintf(":- ( is_guilty(%[1]s, %[2]s) -> write(true) ; write(false) ), nl,"+
		" ( is_innocent(%[1]s, %[2]s) -> write(true) ; write(false) ), nl,"+
		" evidence_against(%[1]s, %[2]s, E), atomic_list_concat(E, ',', A), write(A), nl.\n", s, c)
}

func guiltySuspectsGoal(crime domain.CrimeType) string {
	return fmt.Sprintf(":- guilty_suspects(%s, S), atomic_list_concat(S, ',', A), write(A), nl.\n",
		quoteAtom(string(crime)))
}
