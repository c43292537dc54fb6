package variantcss

import "fmt"

// VariantKind categorizes a variant. Every parsed variant belongs to exactly
// one kind; the kind decides its default priority weight and how the conflict
// analyzer treats it.
type VariantKind int

// Variant categories.
const (
	KindState VariantKind = iota
	KindResponsive
	KindDarkMode
	KindFocusWithin
	KindMotionSafe
	KindMotionReduce
	KindContrast
	KindReducedMotion
	KindOrientation
	KindPrint
	KindScreen
	KindCustom
)

// kindNames maps kinds to their display names
var kindNames = map[VariantKind]string{
	KindState:         "State",
	KindResponsive:    "Responsive",
	KindDarkMode:      "DarkMode",
	KindFocusWithin:   "FocusWithin",
	KindMotionSafe:    "MotionSafe",
	KindMotionReduce:  "MotionReduce",
	KindContrast:      "Contrast",
	KindReducedMotion: "ReducedMotion",
	KindOrientation:   "Orientation",
	KindPrint:         "Print",
	KindScreen:        "Screen",
	KindCustom:        "Custom",
}

// String returns the display name of the kind.
func (k VariantKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("VariantKind(%d)", int(k))
}

// kindPriority is the canonical ranking table. Larger means higher rank in
// the composed selector. This is an internal ordering score, not CSS cascade
// specificity. The Custom entry is only a fallback; registered custom
// variants carry their own weight (default 1).
var kindPriority = map[VariantKind]int{
	KindResponsive:    100,
	KindState:         80,
	KindDarkMode:      60,
	KindFocusWithin:   50,
	KindMotionSafe:    40,
	KindMotionReduce:  40,
	KindContrast:      30,
	KindReducedMotion: 30,
	KindOrientation:   20,
	KindPrint:         10,
	KindScreen:        10,
	KindCustom:        5,
}

// Priority returns the default weight for the kind.
func (k VariantKind) Priority() int {
	return kindPriority[k]
}

// VariantDefinition describes one variant the resolver knows about. Standard
// definitions are built once at registry construction and never mutated;
// custom and breakpoint variants are materialized into this shape at lookup
// time so the rest of the pipeline only deals with one type.
//
// Selector holds an "&"-placeholder pattern: "&" stands for the selector
// built so far, so "&:hover" appends a pseudo-class and ".dark &" prepends
// an ancestor. A pattern of plain "&" contributes no selector text (the
// variant only supplies a media query).
type VariantDefinition struct {
	Name       string
	Kind       VariantKind
	Selector   string
	MediaQuery string
	Priority   int // 0 means use the kind default
	Combinable bool
	Requires   []string
}

// weight returns the effective priority of the definition.
func (d VariantDefinition) weight() int {
	if d.Priority > 0 {
		return d.Priority
	}
	return d.Kind.Priority()
}

// stateVariants are the pseudo-class variants. Each renders as "&:<name>".
var stateVariants = []string{
	"hover",
	"focus",
	"active",
	"visited",
	"disabled",
	"checked",
	"focus-visible",
	"first-child",
	"last-child",
}

// standardDefinitions builds the immutable table of standard variants.
func standardDefinitions() map[string]VariantDefinition {
	defs := make(map[string]VariantDefinition)

	add := func(d VariantDefinition) {
		d.Combinable = true
		defs[d.Name] = d
	}

	for _, name := range stateVariants {
		add(VariantDefinition{
			Name:     name,
			Kind:     KindState,
			Selector: "&:" + name,
		})
	}

	add(VariantDefinition{Name: "dark", Kind: KindDarkMode, Selector: ".dark &"})
	add(VariantDefinition{Name: "focus-within", Kind: KindFocusWithin, Selector: "&:focus-within"})

	add(VariantDefinition{
		Name:       "motion-safe",
		Kind:       KindMotionSafe,
		Selector:   "&",
		MediaQuery: "(prefers-reduced-motion:no-preference)",
	})
	add(VariantDefinition{
		Name:       "motion-reduce",
		Kind:       KindMotionReduce,
		Selector:   "&",
		MediaQuery: "(prefers-reduced-motion:reduce)",
	})
	add(VariantDefinition{
		Name:       "contrast-more",
		Kind:       KindContrast,
		Selector:   "&",
		MediaQuery: "(prefers-contrast:more)",
	})
	add(VariantDefinition{
		Name:       "contrast-less",
		Kind:       KindContrast,
		Selector:   "&",
		MediaQuery: "(prefers-contrast:less)",
	})
	// Legacy alias kept for stylesheets written against the old media
	// feature name; same query as motion-reduce but ranked lower.
	add(VariantDefinition{
		Name:       "reduced-motion",
		Kind:       KindReducedMotion,
		Selector:   "&",
		MediaQuery: "(prefers-reduced-motion:reduce)",
	})
	add(VariantDefinition{
		Name:       "portrait",
		Kind:       KindOrientation,
		Selector:   "&",
		MediaQuery: "(orientation:portrait)",
	})
	add(VariantDefinition{
		Name:       "landscape",
		Kind:       KindOrientation,
		Selector:   "&",
		MediaQuery: "(orientation:landscape)",
	})
	add(VariantDefinition{Name: "print", Kind: KindPrint, Selector: "&", MediaQuery: "print"})
	add(VariantDefinition{Name: "screen", Kind: KindScreen, Selector: "&", MediaQuery: "screen"})

	return defs
}

// DefaultBreakpoints returns the breakpoint table used when the caller
// supplies none. Values are minimum widths in pixels.
func DefaultBreakpoints() map[string]int {
	return map[string]int{
		"sm":  640,
		"md":  768,
		"lg":  1024,
		"xl":  1280,
		"2xl": 1536,
	}
}
