package variantcss

// ParamBreakpoint is the parameter key tagging which breakpoint a
// Responsive variant resolved to.
const ParamBreakpoint = "breakpoint"

// ParsedVariant is one variant instance resolved from a token.
type ParsedVariant struct {
	Name    string
	Kind    VariantKind
	Matched bool              // unmatched variants are excluded from specificity
	Params  map[string]string // breakpoint identity only; not a general bag

	// def is the resolved definition driving selector rendering, priority,
	// and validation. Populated by the registry at resolution time.
	def VariantDefinition
}

// VariantCombination is the ordered set of parsed variants for one token.
// Variants keep the token's left-to-right order; canonical rendering order
// is computed by the composer, not stored here.
type VariantCombination struct {
	Variants     []ParsedVariant
	Specificity  int
	Valid        bool
	ErrorMessage string // non-empty exactly when Valid is false
}

// Interaction classifies how the variants of a combination affect CSS
// emission. Advisory only; never alters validity.
type Interaction int

// Interaction tags, reported in this order.
const (
	// InteractionEnhances marks a responsive breakpoint combined with a
	// state variant: the state rule nests inside the breakpoint's media
	// query rather than replacing it.
	InteractionEnhances Interaction = iota
	// InteractionRequiresSeparateRules marks combinations that need a rule
	// outside the base rule, e.g. the .dark ancestor scope.
	InteractionRequiresSeparateRules
	// InteractionUsesMediaQueries marks combinations where at least one
	// variant must be wrapped in a media query.
	InteractionUsesMediaQueries
)

// String returns the display name of the interaction tag.
func (i Interaction) String() string {
	switch i {
	case InteractionEnhances:
		return "Enhances"
	case InteractionRequiresSeparateRules:
		return "RequiresSeparateRules"
	case InteractionUsesMediaQueries:
		return "UsesMediaQueries"
	}
	return "Unknown"
}

// ParseResult is the final output for one token. Errors are carried as data:
// Success is false and Err holds the taxonomy error, but Resolve never
// panics and never fails more than the one token.
type ParseResult struct {
	Token       string
	BaseClass   string
	Combination VariantCombination
	Selector    string
	MediaQuery  string // empty when no variant supplies one

	// ShadowedMediaQueries lists media queries that were present on lower
	// ranked variants but not surfaced, since only the first query in
	// canonical order is returned. Callers emitting CSS may want to warn.
	ShadowedMediaQueries []string

	Interactions []Interaction
	Success      bool
	Err          error
}

// clone returns a copy safe to hand to a caller while the original stays in
// the resolver cache.
func (r ParseResult) clone() ParseResult {
	out := r
	if r.Combination.Variants != nil {
		out.Combination.Variants = make([]ParsedVariant, len(r.Combination.Variants))
		copy(out.Combination.Variants, r.Combination.Variants)
		for i, v := range out.Combination.Variants {
			if v.Params != nil {
				params := make(map[string]string, len(v.Params))
				for k, val := range v.Params {
					params[k] = val
				}
				out.Combination.Variants[i].Params = params
			}
		}
	}
	if r.Interactions != nil {
		out.Interactions = append([]Interaction(nil), r.Interactions...)
	}
	if r.ShadowedMediaQueries != nil {
		out.ShadowedMediaQueries = append([]string(nil), r.ShadowedMediaQueries...)
	}
	return out
}
