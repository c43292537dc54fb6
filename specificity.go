package variantcss

// CombinationSpecificity sums the priority weights of all matched variants.
// The score is an internal ranking used for canonical ordering and for
// downstream emission heuristics; it is not CSS cascade specificity.
// Adding one more combinable, non-duplicate variant increases the score by
// exactly that variant's weight.
func CombinationSpecificity(variants []ParsedVariant) int {
	total := 0
	for _, v := range variants {
		if !v.Matched {
			continue
		}
		total += v.def.weight()
	}
	return total
}
