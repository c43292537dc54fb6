// Package variantcss resolves compound utility-class tokens into validated
// variant combinations, CSS selectors, and media queries.
//
// A token is a base class optionally prefixed by colon-separated variant
// modifiers, e.g. "sm:dark:hover:btn". Resolution splits the token (colons
// inside brackets and parens are preserved), maps each modifier to a known
// variant, validates the combination, and composes the final selector:
//
//	registry := variantcss.NewRegistry(nil)
//	resolver := variantcss.NewResolver(registry)
//
//	result := resolver.Resolve("sm:hover:bg-blue-500")
//	// result.Selector    == ".bg-blue-500:hover"
//	// result.MediaQuery  == "(min-width:640px)"
//	// result.Combination.Specificity == 180
//
// Custom variants extend the standard table at runtime:
//
//	err := registry.Register(variantcss.CustomVariant{
//		Name:       "sidebar-open",
//		Selector:   ".sidebar--open &",
//		Combinable: true,
//	})
//
// Errors are data, not control flow: a failing token yields a ParseResult
// with Success set to false and the reason in Combination.ErrorMessage;
// other tokens are unaffected.
//
// Mapping the base class to CSS declarations, scanning sources for class
// usage, and emitting stylesheets are jobs for the consumers of
// ParseResult, not this package.
package variantcss
