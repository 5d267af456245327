package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyDocument indicates a source document with no text.
	// Chunking an empty document yields nothing, which callers must treat
	// as an input error rather than indexing silence.
	ErrEmptyDocument = errors.New("document is empty")

	// ErrTranscriptTooShort indicates the transcript is below the minimum
	// viable length for language detection (20 characters).
	ErrTranscriptTooShort = errors.New("transcript is empty or too short for language detection")

	// ErrLanguageDetection indicates detection failed on insufficient
	// signal. Surfaced as an input error variant, never silently defaulted.
	ErrLanguageDetection = errors.New("failed to detect language due to insufficient text")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Indexing and retrieval are impossible without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrGenerationUnavailable indicates the generation service is not
	// configured.
	ErrGenerationUnavailable = errors.New("generation service unavailable")

	// ErrStoreUnavailable indicates the vector store is not configured.
	ErrStoreUnavailable = errors.New("vector store unavailable")
)

// MinTranscriptLength is the minimum transcript length, in characters,
// accepted for ingestion. Below this language detection is hopeless.
const MinTranscriptLength = 20

// IsInputError reports whether err is caused by bad caller input rather
// than an upstream service failure. Input errors are surfaced, not retried.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyDocument) ||
		errors.Is(err, ErrTranscriptTooShort) ||
		errors.Is(err, ErrLanguageDetection)
}
