package variantcss

import "fmt"

// ValidateCombination enforces the cross-variant rules on a resolved
// combination. It is pure: it reads only the variants and returns nil or an
// *InvalidCombinationError with a human-readable reason. The first failing
// rule wins.
//
// Rules, checked in order:
//   - mutual exclusion: print and screen cannot co-occur
//   - cardinality: at most one responsive breakpoint variant
//   - combinability: a non-combinable variant must appear alone
//   - dependencies: every declared required variant must be present
func ValidateCombination(variants []ParsedVariant) error {
	var hasPrint, hasScreen bool
	responsive := 0
	for _, v := range variants {
		switch v.Kind {
		case KindPrint:
			hasPrint = true
		case KindScreen:
			hasScreen = true
		case KindResponsive:
			responsive++
		}
	}

	if hasPrint && hasScreen {
		return &InvalidCombinationError{Reason: "print and screen variants are mutually exclusive"}
	}
	if responsive > 1 {
		return &InvalidCombinationError{
			Reason: fmt.Sprintf("at most one responsive breakpoint variant is allowed, got %d", responsive),
		}
	}

	if len(variants) > 1 {
		for _, v := range variants {
			if !v.def.Combinable {
				return &InvalidCombinationError{
					Reason: fmt.Sprintf("variant %q cannot be combined with other variants", v.Name),
				}
			}
		}
	}

	present := make(map[string]bool, len(variants))
	for _, v := range variants {
		present[v.Name] = true
	}
	for _, v := range variants {
		for _, required := range v.def.Requires {
			if !present[required] {
				return &InvalidCombinationError{
					Reason: fmt.Sprintf("variant %q requires co-occurring variant %q", v.Name, required),
				}
			}
		}
	}

	return nil
}
