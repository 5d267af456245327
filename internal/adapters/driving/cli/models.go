package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/acta-labs/acta-cli/internal/logger"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available generation and transcription models",
	Long: `Lists the generation models served by the local Ollama instance and
the whisper models downloaded to the model directory.`,
	Args: cobra.NoArgs,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, _ []string) error {
	if generationService == nil {
		return errors.New("generation service not configured")
	}

	models, err := generationService.ListModels(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Println("Generation models:")
	if len(models) == 0 {
		cmd.Println("  (none)")
	}
	for _, m := range models {
		cmd.Printf("  - %s\n", m)
	}

	// The transcriber is optional; without one only generation models show.
	if transcriber == nil {
		return nil
	}

	whisperModels, err := transcriber.ListModels()
	if err != nil {
		logger.Warn("Listing whisper models: %v", err)
		return nil
	}

	cmd.Println()
	cmd.Println("Whisper models:")
	if len(whisperModels) == 0 {
		cmd.Println("  (none)")
	}
	for _, m := range whisperModels {
		cmd.Printf("  - %s\n", m)
	}
	return nil
}
