package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"triage/internal/config"
	"triage/internal/models"
	"triage/internal/observability"
	"triage/internal/triage"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [symptom description]",
	Short: "Run a single-shot triage from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(strings.Join(args, " "))
	},
}

func runAnalyze(symptoms string) error {
	logger := observability.NewLogger(slog.LevelWarn)

	if err := config.LoadEnv(); err != nil && !errors.Is(err, config.ErrEnvFileNotFound) {
		logger.Warn("error loading .env file", "error", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if err := triage.ValidateSymptoms(symptoms); err != nil {
		return err
	}

	eng, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}
	defer eng.Close()

	result := eng.analyzer.Analyze(context.Background(), symptoms)
	specialties := eng.recommender.Recommend(symptoms, result.UrgencyLevel)

	out := struct {
		*models.TriageResult
		RecommendedSpecialties []string `json:"recommended_specialties"`
	}{result, specialties}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
