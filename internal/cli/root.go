package cli

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "Symptom triage engine",
	Long:  `Triage classifies free-text symptom descriptions into an urgency tier and recommends a care pathway, with an AI-backed path and a deterministic rule-based fallback.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
