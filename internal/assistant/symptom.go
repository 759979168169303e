package assistant

import "strings"

// Extract returns one Symptom per keyword contained in text, in table order.
// Matching is case-insensitive substring containment.
func Extract(text string) []Symptom {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return []Symptom{}
	}

	extracted := make([]Symptom, 0)
	for _, s := range symptomKeywords {
		if strings.Contains(lower, s.Name) {
			extracted = append(extracted, s)
		}
	}
	return extracted
}

// KnownSymptom returns the extractor table entry for name. Lookup ignores
// case and surrounding whitespace.
func KnownSymptom(name string) (Symptom, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range symptomKeywords {
		if s.Name == name {
			return s, true
		}
	}
	return Symptom{}, false
}

// MergeSymptoms appends the symptoms of next that are not already in prior,
// de-duplicating by name and preserving first-seen order. Inputs are not modified.
func MergeSymptoms(prior, next []Symptom) []Symptom {
	seen := make(map[string]bool, len(prior)+len(next))
	merged := make([]Symptom, 0, len(prior)+len(next))

	for _, group := range [][]Symptom{prior, next} {
		for _, s := range group {
			if seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			merged = append(merged, s)
		}
	}
	return merged
}

// symptomSet is a name lookup over an accumulated symptom list.
type symptomSet map[string]bool

func newSymptomSet(symptoms []Symptom) symptomSet {
	set := make(symptomSet, len(symptoms))
	for _, s := range symptoms {
		set[s.Name] = true
	}
	return set
}

func (s symptomSet) has(names ...string) bool {
	for _, n := range names {
		if !s[n] {
			return false
		}
	}
	return true
}

func (s symptomSet) hasAny(names ...string) bool {
	for _, n := range names {
		if s[n] {
			return true
		}
	}
	return false
}

func symptomNames(symptoms []Symptom) []string {
	names := make([]string, len(symptoms))
	for i, s := range symptoms {
		names[i] = s.Name
	}
	return names
}
