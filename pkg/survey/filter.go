package survey

import "strings"

// SearchableFields are the fields the search box matches against.
var SearchableFields = []string{
	FieldSheet,
	FieldRegion,
	FieldInsula,
	FieldEntrance,
	FieldDescription,
	FieldSpaceNumber,
}

// MatchesFilter checks if text contains the filter string (case-insensitive)
func MatchesFilter(text, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(filter))
}

// Filter returns the records whose searchable fields contain query.
// A blank query returns records unchanged. Relative order is kept.
func Filter(records []Record, query string) []Record {
	if strings.TrimSpace(query) == "" {
		return records
	}
	needle := strings.ToLower(query)

	filtered := make([]Record, 0)
	for _, rec := range records {
		if matchesRecord(rec, needle) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func matchesRecord(rec Record, needle string) bool {
	for _, name := range SearchableFields {
		value, ok := rec.Field(name)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}
