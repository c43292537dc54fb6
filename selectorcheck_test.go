package variantcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSelectorFragment(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		valid    bool
	}{
		{name: "pseudo class", fragment: ":hover", valid: true},
		{name: "placeholder suffix", fragment: "&:focus-visible", valid: true},
		{name: "ancestor prefix", fragment: ".theme-dark &", valid: true},
		{name: "attribute", fragment: `&[data-state="open"]`, valid: true},
		{name: "functional pseudo", fragment: "&:not(.disabled)", valid: true},
		{name: "child combinator", fragment: "& > .icon", valid: true},
		{name: "empty", fragment: "", valid: false},
		{name: "blank", fragment: "  ", valid: false},
		{name: "open brace", fragment: ".x {", valid: false},
		{name: "close brace", fragment: "} .x", valid: false},
		{name: "declaration", fragment: "color: red;", valid: false},
		{name: "at rule", fragment: "@supports (display:grid)", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSelectorFragment(tt.fragment)
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestContainsPlaceholder(t *testing.T) {
	assert.True(t, containsPlaceholder("&:hover"))
	assert.True(t, containsPlaceholder(".dark &"))
	assert.False(t, containsPlaceholder(":hover"))
}
