package variantcss

import "sync"

// Resolver resolves compound tokens against a registry. Each Resolve call
// is a pure function of the registry snapshot and the token: no state
// persists across calls except the result cache, which is keyed by the raw
// token string and dropped in full whenever the registry's custom table
// changes generation.
type Resolver struct {
	registry *Registry

	mu       sync.Mutex
	cache    map[string]ParseResult
	cacheGen uint64
}

// NewResolver returns a resolver backed by the given registry. A nil
// registry gets a fresh one with default breakpoints.
func NewResolver(registry *Registry) *Resolver {
	if registry == nil {
		registry = NewRegistry(nil)
	}
	return &Resolver{
		registry: registry,
		cache:    make(map[string]ParseResult),
	}
}

// Registry returns the registry the resolver reads from.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve parses a compound token into a ParseResult. Failures are returned
// as data: Success is false, Err holds the taxonomy error, and the
// combination carries the reason string. Resolution never panics and an
// error is fatal only to the one token.
func (r *Resolver) Resolve(token string) ParseResult {
	generation := r.registry.Generation()

	r.mu.Lock()
	if r.cacheGen != generation {
		r.cache = make(map[string]ParseResult)
		r.cacheGen = generation
	}
	if cached, ok := r.cache[token]; ok {
		r.mu.Unlock()
		return cached.clone()
	}
	r.mu.Unlock()

	result := r.resolveUncached(token)

	// Store only if the registry did not change underneath us; otherwise
	// the result may reference a removed custom variant.
	if r.registry.Generation() == generation {
		r.mu.Lock()
		if r.cacheGen == generation {
			r.cache[token] = result.clone()
		}
		r.mu.Unlock()
	}

	return result
}

// resolveUncached runs the full pipeline: split, resolve, validate, score,
// compose, analyze.
func (r *Resolver) resolveUncached(token string) ParseResult {
	names, base, err := SplitToken(token)
	if err != nil {
		return failure(token, "", err)
	}

	variants := make([]ParsedVariant, 0, len(names))
	for _, name := range names {
		pv, err := r.registry.resolve(name)
		if err != nil {
			return failure(token, base, err)
		}
		variants = append(variants, pv)
	}

	if err := ValidateCombination(variants); err != nil {
		return failure(token, base, err)
	}

	selector, mediaQuery, shadowed := ComposeSelector(variants, base)

	return ParseResult{
		Token:     token,
		BaseClass: base,
		Combination: VariantCombination{
			Variants:    variants,
			Specificity: CombinationSpecificity(variants),
			Valid:       true,
		},
		Selector:             selector,
		MediaQuery:           mediaQuery,
		ShadowedMediaQueries: shadowed,
		Interactions:         AnalyzeInteractions(variants),
		Success:              true,
	}
}

// failure builds an error-carrying result for one token.
func failure(token, base string, err error) ParseResult {
	return ParseResult{
		Token:     token,
		BaseClass: base,
		Combination: VariantCombination{
			Valid:        false,
			ErrorMessage: err.Error(),
		},
		Err: err,
	}
}
