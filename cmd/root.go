package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "diagnoleads-widget",
	Short: "Embeddable DiagnoLeads assessment widget",
	Long: "DiagnoLeads widget runs a lead-generation assessment in the terminal,\n" +
		"captures the visitor's details, and reports analytics to GA4.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWidget(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	// A .env next to the binary may carry the GA4 API secret; absence
	// is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().String("config", "", "Path to a YAML attribute file")
	rootCmd.Flags().String("tenant-id", "", "Tenant identifier")
	rootCmd.Flags().String("assessment-id", "", "Assessment identifier")
	rootCmd.Flags().String("api-url", "", "Backend base URL (default http://localhost:8000)")
	rootCmd.Flags().String("ga4-id", "", "GA4 measurement id (analytics disabled when empty)")
	rootCmd.Flags().String("ga4-api-secret", "", "GA4 Measurement Protocol API secret")
	rootCmd.Flags().String("theme", "", "Color theme: light or dark (default light)")
	rootCmd.Flags().String("primary-color", "", "Accent color (default #3b82f6)")
	rootCmd.Flags().Bool("preview", false, "Run against a built-in sample assessment, no network")
	rootCmd.Flags().Bool("debug", false, "Log analytics events to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
