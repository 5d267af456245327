package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acta-labs/acta-cli/internal/core/ports/driving"
)

var (
	ingestContext      string
	ingestIsTranscript bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Ingest a meeting recording or transcript",
	Long: `Runs the full ingestion cycle: transcribes the recording (audio or
video) with whisper.cpp, detects the transcript language, generates a
meeting summary, persists the transcript and indexes it for retrieval.

Pass --transcript when the file already contains transcript text; the
transcription step is then skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestContext, "context", "c", "", "background context for the summary")
	ingestCmd.Flags().BoolVarP(&ingestIsTranscript, "transcript", "t", false, "treat the file as transcript text, skip transcription")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	path := args[0]

	var (
		result driving.IngestResult
		err    error
	)
	if ingestIsTranscript {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading transcript file: %w", err)
		}
		result, err = ingestService.IngestTranscript(cmd.Context(), string(data), ingestContext)
	} else {
		result, err = ingestService.IngestMedia(cmd.Context(), path, ingestContext)
	}
	if err != nil {
		return fmt.Errorf("ingesting %s: %w", path, err)
	}

	cmd.Printf("Language: %s\n", result.Language)
	cmd.Printf("Transcript: %s\n", result.TranscriptPath)
	cmd.Printf("Indexed chunks: %d\n", result.ChunksAdded)
	cmd.Println()
	cmd.Println("Summary:")
	cmd.Println(result.Summary)
	return nil
}
