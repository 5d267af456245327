package driving

import (
	"context"

	"github.com/acta-labs/acta-cli/internal/core/domain"
)

// IndexService maintains the similarity-searchable chunk index.
type IndexService interface {
	// IndexDocument chunks the document, assigns chunk identities and
	// upserts the chunks not already present. Returns the number of
	// newly added chunks; re-indexing an unchanged document adds zero.
	IndexDocument(ctx context.Context, doc domain.Document) (int, error)

	// Reset irreversibly clears indexed entries: everything when sourceID
	// is empty, otherwise only that source. Destructive; callers expose it
	// behind an explicit flag only.
	Reset(ctx context.Context, sourceID string) error
}

// IngestService runs the full transcript ingestion cycle: transcription
// (when given media), validation, language detection, summarisation,
// transcript persistence and indexing.
type IngestService interface {
	// IngestMedia transcribes the media file and ingests the result.
	// meetingContext is optional background the summary prompt may use.
	IngestMedia(ctx context.Context, path, meetingContext string) (IngestResult, error)

	// IngestTranscript ingests transcript text directly.
	IngestTranscript(ctx context.Context, transcript, meetingContext string) (IngestResult, error)
}

// IngestResult reports the outcome of one ingestion cycle.
type IngestResult struct {
	// Summary is the generated meeting summary.
	Summary string

	// Language is the detected (or configured) transcript language.
	Language domain.Language

	// TranscriptPath is where the transcript text was persisted.
	TranscriptPath string

	// ChunksAdded is the number of chunks newly added to the index.
	ChunksAdded int
}
