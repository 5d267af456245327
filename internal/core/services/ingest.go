package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/acta-labs/acta-cli/internal/core/domain"
	"github.com/acta-labs/acta-cli/internal/core/ports/driven"
	"github.com/acta-labs/acta-cli/internal/core/ports/driving"
	"github.com/acta-labs/acta-cli/internal/language"
	"github.com/acta-labs/acta-cli/internal/logger"
)

// Ensure IngestOrchestrator implements the interface.
var _ driving.IngestService = (*IngestOrchestrator)(nil)

// TranscriptFileName is the persisted transcript file, overwritten on each
// ingestion cycle (not versioned).
const TranscriptFileName = "transcript.txt"

// IngestOrchestrator runs one transcript ingestion cycle: transcription
// (for media input), length validation, language detection, summary
// generation, transcript persistence and incremental indexing.
type IngestOrchestrator struct {
	transcriber driven.Transcriber
	gen         driven.GenerationService
	indexer     driving.IndexService
	dataDir     string

	// languageOverride skips detection when set.
	languageOverride domain.Language
}

// NewIngestOrchestrator creates an ingest orchestrator. The transcriber may
// be nil when only raw transcripts are ingested.
func NewIngestOrchestrator(
	transcriber driven.Transcriber,
	gen driven.GenerationService,
	indexer driving.IndexService,
	dataDir string,
) *IngestOrchestrator {
	return &IngestOrchestrator{
		transcriber: transcriber,
		gen:         gen,
		indexer:     indexer,
		dataDir:     dataDir,
	}
}

// SetLanguage forces the prompt language instead of detecting it per
// transcript. Invalid values are ignored.
func (o *IngestOrchestrator) SetLanguage(lang domain.Language) {
	if lang.IsValid() {
		o.languageOverride = lang
	}
}

// IngestMedia transcribes the media file and ingests the result.
func (o *IngestOrchestrator) IngestMedia(
	ctx context.Context, path, meetingContext string,
) (driving.IngestResult, error) {
	if o.transcriber == nil {
		return driving.IngestResult{}, errors.New("transcriber not configured")
	}

	logger.Section("Transcription")
	transcript, err := o.transcriber.Transcribe(ctx, path)
	if err != nil {
		return driving.IngestResult{}, fmt.Errorf("transcribing %s: %w", path, err)
	}

	return o.IngestTranscript(ctx, transcript, meetingContext)
}

// IngestTranscript ingests transcript text directly. Transcripts below the
// minimum viable length are rejected before any detection, generation or
// indexing is attempted.
func (o *IngestOrchestrator) IngestTranscript(
	ctx context.Context, transcript, meetingContext string,
) (driving.IngestResult, error) {
	transcript = strings.TrimSpace(transcript)
	if n := utf8.RuneCountInString(transcript); n < domain.MinTranscriptLength {
		return driving.IngestResult{}, fmt.Errorf("%w (%d characters)",
			domain.ErrTranscriptTooShort, n)
	}

	lang := o.languageOverride
	if lang == "" {
		detected, err := language.Detect(transcript)
		if err != nil {
			return driving.IngestResult{}, err
		}
		lang = detected
	}
	logger.Info("Transcript language: %s", lang)

	summary, err := o.summarise(ctx, lang, meetingContext, transcript)
	if err != nil {
		return driving.IngestResult{}, err
	}

	transcriptPath, err := o.persistTranscript(transcript)
	if err != nil {
		return driving.IngestResult{}, err
	}
	logger.Debug("Transcript written to %s", transcriptPath)

	added, err := o.indexer.IndexDocument(ctx, domain.Document{
		SourceID: TranscriptFileName,
		Text:     transcript,
	})
	if err != nil {
		return driving.IngestResult{}, fmt.Errorf("indexing transcript: %w", err)
	}

	return driving.IngestResult{
		Summary:        summary,
		Language:       lang,
		TranscriptPath: transcriptPath,
		ChunksAdded:    added,
	}, nil
}

// summarise generates the meeting summary in the transcript's language.
func (o *IngestOrchestrator) summarise(
	ctx context.Context, lang domain.Language, meetingContext, transcript string,
) (string, error) {
	if o.gen == nil {
		return "", domain.ErrGenerationUnavailable
	}

	prompt := SummaryPrompt(lang, meetingContext, transcript)
	summary, err := o.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("summarising transcript: %w", err)
	}
	return strings.TrimSpace(summary), nil
}

// persistTranscript overwrites the single transcript file in the data dir.
func (o *IngestOrchestrator) persistTranscript(transcript string) (string, error) {
	if err := os.MkdirAll(o.dataDir, 0700); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(o.dataDir, TranscriptFileName)
	if err := os.WriteFile(path, []byte(transcript), 0600); err != nil {
		return "", fmt.Errorf("writing transcript: %w", err)
	}
	return path, nil
}
