package variantcss

// AnalyzeInteractions classifies how the variants of a combination interact
// for CSS emission. The tags are advisory metadata for the rule-emission
// collaborator and never change validity:
//
//   - a dark-mode variant forces a separate ancestor-scoped rule
//   - a responsive breakpoint plus a state variant enhances the breakpoint
//     rule instead of replacing it
//   - any variant carrying a media query forces media-query wrapping
//
// Tags are returned in declaration order so output is deterministic.
func AnalyzeInteractions(variants []ParsedVariant) []Interaction {
	var hasDark, hasResponsive, hasState, hasMedia bool
	for _, v := range variants {
		switch v.Kind {
		case KindDarkMode:
			hasDark = true
		case KindResponsive:
			hasResponsive = true
		case KindState:
			hasState = true
		}
		if v.def.MediaQuery != "" {
			hasMedia = true
		}
	}

	var tags []Interaction
	if hasResponsive && hasState {
		tags = append(tags, InteractionEnhances)
	}
	if hasDark {
		tags = append(tags, InteractionRequiresSeparateRules)
	}
	if hasMedia {
		tags = append(tags, InteractionUsesMediaQueries)
	}
	return tags
}
