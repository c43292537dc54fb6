package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/variantcss"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <token>...",
	Short: "Resolve tokens given on the command line",
	Long: `Resolve each token into a selector, media query, and specificity.
Exits 1 if any token fails to resolve.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runResolve(args)
	},
}

func init() {
	resolveCmd.Flags().String("format", "text", "Output format: text|json")
}

// runResolve is shared between `variantcss resolve` and bare-token root
// invocation.
func runResolve(tokens []string) error {
	registry, err := buildRegistry()
	if err != nil {
		return err
	}
	resolver := variantcss.NewResolver(registry)

	results := make([]variantcss.ParseResult, len(tokens))
	failed := 0
	for i, token := range tokens {
		results[i] = resolver.Resolve(token)
		if !results[i].Success {
			failed++
		}
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		format := getStringWithFallback("format", "resolve.format", "text")
		switch format {
		case "json":
			if err := writeResultsJSON(results); err != nil {
				return err
			}
		default:
			writeResultsText(results)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
	return nil
}

// writeResultsText prints one block per token.
func writeResultsText(results []variantcss.ParseResult) {
	for _, result := range results {
		if !result.Success {
			fmt.Printf("%s\n  error: %s\n", result.Token, result.Combination.ErrorMessage)
			continue
		}

		fmt.Printf("%s\n  selector:    %s\n", result.Token, result.Selector)
		if result.MediaQuery != "" {
			fmt.Printf("  media:       %s\n", result.MediaQuery)
		}
		fmt.Printf("  specificity: %d\n", result.Combination.Specificity)
		if len(result.Combination.Variants) > 0 {
			kinds := make([]string, len(result.Combination.Variants))
			for i, v := range result.Combination.Variants {
				kinds[i] = v.Kind.String()
			}
			fmt.Printf("  variants:    %s\n", strings.Join(kinds, ", "))
		}
		if len(result.Interactions) > 0 {
			tags := make([]string, len(result.Interactions))
			for i, tag := range result.Interactions {
				tags[i] = tag.String()
			}
			fmt.Printf("  interactions: %s\n", strings.Join(tags, ", "))
		}
		if len(result.ShadowedMediaQueries) > 0 {
			fmt.Printf("  shadowed media: %s\n", strings.Join(result.ShadowedMediaQueries, ", "))
		}
	}
}

// resolveJSONResult is the JSON export shape for one token.
type resolveJSONResult struct {
	Token       string   `json:"token"`
	BaseClass   string   `json:"base_class,omitempty"`
	Selector    string   `json:"selector,omitempty"`
	MediaQuery  string   `json:"media_query,omitempty"`
	Specificity int      `json:"specificity"`
	Variants    []string `json:"variants,omitempty"`
	Success     bool     `json:"success"`
	Error       string   `json:"error,omitempty"`
}

// writeResultsJSON prints all results as a JSON array.
func writeResultsJSON(results []variantcss.ParseResult) error {
	out := make([]resolveJSONResult, len(results))
	for i, result := range results {
		item := resolveJSONResult{
			Token:   result.Token,
			Success: result.Success,
		}
		if result.Success {
			item.BaseClass = result.BaseClass
			item.Selector = result.Selector
			item.MediaQuery = result.MediaQuery
			item.Specificity = result.Combination.Specificity
			for _, v := range result.Combination.Variants {
				item.Variants = append(item.Variants, v.Name)
			}
		} else {
			item.Error = result.Combination.ErrorMessage
		}
		out[i] = item
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
