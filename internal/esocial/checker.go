// =============================================================================
// Payroll File Encoder - eSocial Structural Checker
// =============================================================================
//
// Post-hoc sanity check over a generated event document. It confirms the
// presence of a few mandatory substrings and nothing more: this is NOT
// schema (XSD) validation, and a document that passes can still be rejected
// by the receiving system. Complaints are collected and returned, never
// thrown; the checker is advisory.
//
// =============================================================================

package esocial

import (
	"fmt"
	"strings"
)

// eventKinds are the event elements the checker recognizes.
var eventKinds = []string{"evtRemun", "evtPgtos", "evtFechaEvPer"}

// Check inspects a generated event document and returns a human-readable
// complaint for each structural expectation it fails to meet. An empty
// slice means the document looks structurally plausible.
func Check(doc string) []string {
	var problems []string

	if !strings.HasPrefix(doc, Declaration) {
		problems = append(problems, "missing XML declaration")
	}
	if !strings.Contains(doc, namespaceBase) {
		problems = append(problems, fmt.Sprintf("missing eSocial namespace (%s...)", namespaceBase))
	}
	if !strings.Contains(doc, "<eSocial") {
		problems = append(problems, "missing eSocial root element")
	}
	if !strings.Contains(doc, "</eSocial>") {
		problems = append(problems, "eSocial root element is not closed")
	}
	if !strings.Contains(doc, `Id="ID`) {
		problems = append(problems, `missing event identifier attribute (Id="ID...")`)
	}

	found := false
	for _, kind := range eventKinds {
		if strings.Contains(doc, "<"+kind+" ") {
			found = true
			break
		}
	}
	if !found {
		problems = append(problems, fmt.Sprintf("no known event element (one of %s)", strings.Join(eventKinds, ", ")))
	}

	return problems
}
