package domain

// Settings holds the user-configurable knobs for the Acta CLI.
// Values are loaded from the TOML config store with environment overrides
// and passed to the adapter factories; zero values mean "use the default".
type Settings struct {
	// Ollama configures the local inference server shared by the
	// embedding and generation services.
	Ollama OllamaSettings

	// Whisper configures speech-to-text transcription.
	Whisper WhisperSettings

	// Chunking configures the transcript splitter.
	Chunking ChunkingSettings

	// DataDir is where the vector store and the persisted transcript live.
	// Defaults to ~/.acta/data.
	DataDir string

	// Language forces a prompt language instead of detecting one.
	// Empty means detect per transcript.
	Language Language
}

// OllamaSettings configures the Ollama endpoint.
type OllamaSettings struct {
	// BaseURL is the server address (default http://localhost:11434).
	BaseURL string

	// GenerationModel is the model used for answers and summaries.
	GenerationModel string

	// EmbeddingModel is the model used for chunk and query embeddings.
	EmbeddingModel string
}

// WhisperSettings configures the whisper.cpp transcriber.
type WhisperSettings struct {
	// BinaryPath is the whisper.cpp executable.
	BinaryPath string

	// ModelDir holds the downloaded ggml-*.bin model files.
	ModelDir string

	// Model is the whisper model name (base, small, medium, ...).
	Model string
}

// ChunkingSettings configures the splitter.
type ChunkingSettings struct {
	// Size is the chunk length in characters.
	Size int

	// Overlap is the number of characters shared between adjacent chunks.
	Overlap int
}
