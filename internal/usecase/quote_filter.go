package usecase

import (
	"strings"

	"cotizaciones_zafir/internal/domain/entities"
)

// ProcedureFilterAll is the sentinel meaning "do not filter by procedure".
const ProcedureFilterAll = "todos"

// FilterQuotes narrows a list of quotes for display.
//
//   - searchTerm matches case-insensitively as a substring of patient id,
//     procedure name or surgeon name; absent optional fields never match.
//   - procedureFilter requires exact (case-sensitive) procedure equality
//     unless it is empty or the ProcedureFilterAll sentinel.
//
// Both predicates compose with AND. The relative order of the input is
// preserved and nothing is deduplicated or sorted, so the function is
// idempotent; with no-op arguments the input slice is returned unchanged.
func FilterQuotes(quotes []entities.Quote, searchTerm, procedureFilter string) []entities.Quote {
	bySearch := searchTerm != ""
	byProcedure := procedureFilter != "" && procedureFilter != ProcedureFilterAll
	if !bySearch && !byProcedure {
		return quotes
	}

	term := strings.ToLower(searchTerm)
	out := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if bySearch && !matchesSearchTerm(q, term) {
			continue
		}
		if byProcedure && q.ProcedureName != procedureFilter {
			continue
		}
		out = append(out, q)
	}
	return out
}

func matchesSearchTerm(q entities.Quote, lowerTerm string) bool {
	if q.PatientID != "" && strings.Contains(strings.ToLower(q.PatientID), lowerTerm) {
		return true
	}
	if strings.Contains(strings.ToLower(q.ProcedureName), lowerTerm) {
		return true
	}
	if q.SurgeonName != "" && strings.Contains(strings.ToLower(q.SurgeonName), lowerTerm) {
		return true
	}
	return false
}
