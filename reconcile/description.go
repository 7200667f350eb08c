package reconcile

import (
	"strings"
	"unicode/utf8"

	"comparador_server/structs/tables"
)

// DescriptionPolicy configures which store's description text is displayed.
// Stores earlier in Priority are preferred because their pages carry richer
// copy; descriptions at or below MinLength runes are treated as noise.
type DescriptionPolicy struct {
	Priority        []string
	MinLength       int
	LastResortStore string
}

// SelectDescription walks an ordered chain of fallbacks and returns the
// first usable description: prioritized stores, then the representative
// offer's own text, then the configured last-resort store. It never fails;
// when no candidate has content the result is simply "".
func SelectDescription(latest []tables.PriceObservation, representative tables.PriceObservation, policy DescriptionPolicy) string {
	byStore := make(map[string]tables.PriceObservation, len(latest))
	for _, o := range latest {
		byStore[o.Store] = o
	}

	if text, ok := fromPriority(byStore, policy); ok {
		return text
	}
	// The representative's own text needs no minimum length: any content
	// beats the remaining fallbacks.
	if text := strings.TrimSpace(representative.Description); text != "" {
		return text
	}
	if text, ok := fromLastResort(byStore, policy); ok {
		return text
	}

	return ""
}

func fromPriority(byStore map[string]tables.PriceObservation, policy DescriptionPolicy) (string, bool) {
	for _, store := range policy.Priority {
		o, present := byStore[store]
		if !present {
			continue
		}
		if text, ok := usable(o.Description, policy.MinLength); ok {
			return text, true
		}
	}
	return "", false
}

func fromLastResort(byStore map[string]tables.PriceObservation, policy DescriptionPolicy) (string, bool) {
	o, present := byStore[policy.LastResortStore]
	if !present {
		return "", false
	}
	text := strings.TrimSpace(o.Description)
	return text, text != ""
}

// usable trims the text and requires strictly more than minLength runes.
func usable(text string, minLength int) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) <= minLength {
		return "", false
	}
	return text, true
}
