package services

import "strings"

// NormalizeTerms converts a comma-separated free-text field into a clean
// term list: terms are trimmed, lowercased, and empty entries dropped. An
// empty or blank input yields no terms.
func NormalizeTerms(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	parts := strings.Split(text, ",")
	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		term := strings.ToLower(strings.TrimSpace(part))
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}

// NormalizeText flattens a comma-separated field into a single
// space-separated lowercase string for the term-frequency scorer.
func NormalizeText(text string) string {
	return strings.Join(NormalizeTerms(text), " ")
}
