package driven

import "context"

// Transcriber converts an audio or video file into transcript text.
// This is an external collaborator outside the retrieval core: the core
// consumes only the resulting plain-text transcript.
type Transcriber interface {
	// Transcribe converts the media file at path to text. Implementations
	// are expected to downmix to mono 16 kHz before recognition.
	Transcribe(ctx context.Context, path string) (string, error)

	// ListModels returns the locally available speech-to-text models.
	ListModels() ([]string, error)
}
