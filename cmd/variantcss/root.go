package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "variantcss",
	Short: "Resolve compound utility-class tokens into CSS selectors",
	Long: `Resolve tokens like "sm:dark:hover:btn" into a validated variant
combination, a CSS selector, and a media query.
Custom variants and breakpoints come from .variantcss.yaml.`,
	Args: cobra.ArbitraryArgs,
	// Bare tokens on the command line resolve directly, so
	// "variantcss sm:hover:btn" works without the resolve subcommand.
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runResolve(args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".variantcss.yaml", "Config file path")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}
