package variantcss

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
)

// customNamePattern is the registration name rule: lowercase alphanumerics
// and internal hyphens, no leading or trailing hyphen, non-empty.
var customNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CustomVariant is a user-registered variant. Selector is a fragment that
// may use the "&" placeholder ("&:third-child", ".theme-sepia &"); a
// fragment without "&" is treated as a suffix appended to the selector
// built so far. Specificity defaults to 1 when left zero. Combinable must
// be set explicitly; a non-combinable variant fails validation whenever it
// shares a token with any other variant.
type CustomVariant struct {
	Name        string
	Selector    string
	MediaQuery  string
	Specificity int
	Combinable  bool
	Requires    []string
}

// definition materializes the custom variant into the common definition
// shape used by the pipeline.
func (cv CustomVariant) definition() VariantDefinition {
	selector := cv.Selector
	if !containsPlaceholder(selector) {
		selector = "&" + selector
	}
	weight := cv.Specificity
	if weight <= 0 {
		weight = 1
	}
	return VariantDefinition{
		Name:       cv.Name,
		Kind:       KindCustom,
		Selector:   selector,
		MediaQuery: cv.MediaQuery,
		Priority:   weight,
		Combinable: cv.Combinable,
		Requires:   cv.Requires,
	}
}

// Registry owns the variant tables used during resolution: the immutable
// standard definitions, the caller-supplied breakpoint table, and the
// mutable custom-variant table.
//
// Standard definitions and breakpoints are read-only after construction and
// safe to share across concurrent Resolve calls without synchronization.
// The custom table is the only mutable shared state; it is guarded by an
// RWMutex, and every successful mutation bumps a generation counter so
// resolver caches can invalidate themselves in full.
type Registry struct {
	standard    map[string]VariantDefinition
	breakpoints map[string]int

	mu         sync.RWMutex
	custom     map[string]CustomVariant
	generation uint64
}

// NewRegistry builds a registry with the standard variant table and the
// given breakpoint table. Passing nil breakpoints uses DefaultBreakpoints.
func NewRegistry(breakpoints map[string]int) *Registry {
	if breakpoints == nil {
		breakpoints = DefaultBreakpoints()
	} else {
		// Copy so later caller mutation cannot race with resolution.
		bp := make(map[string]int, len(breakpoints))
		for name, width := range breakpoints {
			bp[name] = width
		}
		breakpoints = bp
	}
	return &Registry{
		standard:    standardDefinitions(),
		breakpoints: breakpoints,
		custom:      make(map[string]CustomVariant),
	}
}

// Register adds or overwrites a custom variant. The name must satisfy the
// registration name rule and must not shadow a standard variant or a
// breakpoint; the selector fragment must lex as CSS selector text.
func (r *Registry) Register(cv CustomVariant) error {
	if !customNamePattern.MatchString(cv.Name) {
		return &InvalidCustomVariantNameError{Name: cv.Name}
	}
	if _, ok := r.standard[cv.Name]; ok {
		return fmt.Errorf("variant %q shadows a standard variant", cv.Name)
	}
	if _, ok := r.breakpoints[cv.Name]; ok {
		return fmt.Errorf("variant %q shadows a breakpoint", cv.Name)
	}
	if err := validateSelectorFragment(cv.Selector); err != nil {
		return &InvalidSelectorError{Name: cv.Name, Selector: cv.Selector, Reason: err.Error()}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.custom[cv.Name] = cv
	r.generation++
	return nil
}

// Unregister removes a custom variant and reports whether it existed.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.custom[name]; !ok {
		return false
	}
	delete(r.custom, name)
	r.generation++
	return true
}

// CustomNames returns the registered custom variant names, sorted.
func (r *Registry) CustomNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.custom))
	for name := range r.custom {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Breakpoint returns the minimum width for a breakpoint name.
func (r *Registry) Breakpoint(name string) (int, bool) {
	width, ok := r.breakpoints[name]
	return width, ok
}

// Generation returns the mutation counter of the custom table. Any change
// invalidates every cached result, since any entry might reference a
// removed or redefined custom name.
func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}

// resolve maps a variant name to a parsed variant. Resolution order is
// standard table, then custom table, then breakpoint table; first match
// wins with no partial matching. An unknown name is a hard error.
func (r *Registry) resolve(name string) (ParsedVariant, error) {
	if def, ok := r.standard[name]; ok {
		return ParsedVariant{Name: name, Kind: def.Kind, Matched: true, def: def}, nil
	}

	r.mu.RLock()
	cv, ok := r.custom[name]
	r.mu.RUnlock()
	if ok {
		def := cv.definition()
		return ParsedVariant{Name: name, Kind: KindCustom, Matched: true, def: def}, nil
	}

	if width, ok := r.breakpoints[name]; ok {
		def := VariantDefinition{
			Name:       name,
			Kind:       KindResponsive,
			Selector:   "&",
			MediaQuery: fmt.Sprintf("(min-width:%dpx)", width),
			Combinable: true,
		}
		return ParsedVariant{
			Name:    name,
			Kind:    KindResponsive,
			Matched: true,
			Params:  map[string]string{ParamBreakpoint: name},
			def:     def,
		}, nil
	}

	return ParsedVariant{}, &UnknownVariantError{Name: name}
}
