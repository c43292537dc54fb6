package variantcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitToken(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		wantVariants []string
		wantBase     string
	}{
		{
			name:     "no variants",
			token:    "bg-blue-500",
			wantBase: "bg-blue-500",
		},
		{
			name:         "single variant",
			token:        "hover:bg-blue-500",
			wantVariants: []string{"hover"},
			wantBase:     "bg-blue-500",
		},
		{
			name:         "multiple variants keep order",
			token:        "sm:dark:hover:my-class",
			wantVariants: []string{"sm", "dark", "hover"},
			wantBase:     "my-class",
		},
		{
			name:         "colon inside brackets is not a separator",
			token:        "hover:bg-[10px:20px]",
			wantVariants: []string{"hover"},
			wantBase:     "bg-[10px:20px]",
		},
		{
			name:         "colon inside parens is not a separator",
			token:        "focus:w-(--spacing:large)",
			wantVariants: []string{"focus"},
			wantBase:     "w-(--spacing:large)",
		},
		{
			name:         "nested brackets",
			token:        "sm:grid-[repeat(2,minmax(0:1fr,auto))]",
			wantVariants: []string{"sm"},
			wantBase:     "grid-[repeat(2,minmax(0:1fr,auto))]",
		},
		{
			name:     "bracketed value without variants",
			token:    "bg-[url(data:image/png)]",
			wantBase: "bg-[url(data:image/png)]",
		},
		{
			name:         "stray closing bracket does not underflow depth",
			token:        "hover:bg-]x",
			wantVariants: []string{"hover"},
			wantBase:     "bg-]x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variants, base, err := SplitToken(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.wantVariants, variants)
			assert.Equal(t, tt.wantBase, base)
		})
	}
}

func TestSplitTokenEmptySegments(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "leading colon", token: ":hover", wantErr: ErrEmptySegment},
		{name: "doubled colon", token: "sm::x", wantErr: ErrEmptySegment},
		{name: "trailing colon", token: "hover:", wantErr: ErrEmptyBaseClass},
		{name: "lone colon", token: ":", wantErr: ErrEmptySegment},
		{name: "empty token", token: "", wantErr: ErrEmptyBaseClass},
		{name: "NUL byte", token: "hover:\x00x", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := SplitToken(tt.token)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
