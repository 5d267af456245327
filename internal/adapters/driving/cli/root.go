// Package cli implements the acta command-line interface. Commands are
// package-level cobra vars registered on rootCmd in init functions; the
// services they drive are wired once at startup and injected through
// SetServices so tests can substitute mocks.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	fileconfig "github.com/acta-labs/acta-cli/internal/adapters/driven/config/file"
	embeddingollama "github.com/acta-labs/acta-cli/internal/adapters/driven/embedding/ollama"
	generationollama "github.com/acta-labs/acta-cli/internal/adapters/driven/generation/ollama"
	"github.com/acta-labs/acta-cli/internal/adapters/driven/storage/sqlite"
	"github.com/acta-labs/acta-cli/internal/adapters/driven/transcriber/whispercpp"
	"github.com/acta-labs/acta-cli/internal/chunker"
	"github.com/acta-labs/acta-cli/internal/core/ports/driven"
	"github.com/acta-labs/acta-cli/internal/core/ports/driving"
	"github.com/acta-labs/acta-cli/internal/core/services"
	"github.com/acta-labs/acta-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// Services driven by the commands. Wired in initServices, replaced by
// tests via SetServices.
var (
	queryService      driving.QueryService
	indexService      driving.IndexService
	ingestService     driving.IngestService
	configStore       driven.ConfigStore
	generationService driven.GenerationService
	transcriber       driven.Transcriber
	vectorStore       driven.VectorStore
)

var rootCmd = &cobra.Command{
	Use:   "acta",
	Short: "Ask questions about your meeting recordings",
	Long: `Acta turns meeting recordings into a searchable knowledge base.

Ingest a recording or transcript, then ask questions about it: the
transcript is chunked, embedded and indexed locally, and answers are
generated by a local Ollama model grounded in the retrieved passages.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services bundles everything the commands drive.
type Services struct {
	Query       driving.QueryService
	Index       driving.IndexService
	Ingest      driving.IngestService
	Config      driven.ConfigStore
	Generation  driven.GenerationService
	Transcriber driven.Transcriber
	Store       driven.VectorStore
}

// SetServices injects the services the commands operate on.
func SetServices(s Services) {
	queryService = s.Query
	indexService = s.Index
	ingestService = s.Ingest
	configStore = s.Config
	generationService = s.Generation
	transcriber = s.Transcriber
	vectorStore = s.Store
}

// Execute wires the production services and runs the root command.
// Wiring happens here rather than in cobra hooks so tests can execute
// commands against injected mocks.
func Execute() error {
	svcs, cleanup, err := initServices()
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	defer cleanup()

	SetServices(svcs)
	return rootCmd.Execute()
}

// initServices builds the production service graph from the TOML config
// store. Missing configuration falls back to adapter defaults; a missing
// whisper binary only disables media ingestion.
func initServices() (Services, func(), error) {
	// Optional .env file for local overrides; absence is not an error.
	_ = godotenv.Load()

	cfg, err := fileconfig.NewConfigStore("")
	if err != nil {
		return Services{}, nil, fmt.Errorf("opening config store: %w", err)
	}
	settings := cfg.Settings()

	if settings.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Services{}, nil, fmt.Errorf("getting home directory: %w", err)
		}
		settings.DataDir = filepath.Join(home, ".acta", "data")
	}

	store, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		return Services{}, nil, fmt.Errorf("opening vector store: %w", err)
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("Closing vector store: %v", err)
		}
	}

	embedder := embeddingollama.NewEmbeddingService(embeddingollama.Config{
		BaseURL: settings.Ollama.BaseURL,
		Model:   settings.Ollama.EmbeddingModel,
	})
	gen := generationollama.NewClient(generationollama.Config{
		BaseURL: settings.Ollama.BaseURL,
		Model:   settings.Ollama.GenerationModel,
		Timeout: 5 * time.Minute,
	})

	var chunkOpts []chunker.Option
	if settings.Chunking.Size > 0 {
		chunkOpts = append(chunkOpts, chunker.WithChunkSize(settings.Chunking.Size))
	}
	if settings.Chunking.Overlap > 0 {
		chunkOpts = append(chunkOpts, chunker.WithOverlap(settings.Chunking.Overlap))
	}
	indexer := services.NewIndexerService(store, embedder, chunker.New(chunkOpts...))

	query := services.NewQueryOrchestrator(store, embedder, gen, settings.Language)

	var stt driven.Transcriber
	if settings.Whisper.BinaryPath != "" {
		whisper, err := whispercpp.New(whispercpp.Config{
			BinaryPath: settings.Whisper.BinaryPath,
			ModelDir:   settings.Whisper.ModelDir,
			Model:      settings.Whisper.Model,
		})
		if err != nil {
			cleanup()
			return Services{}, nil, fmt.Errorf("configuring transcriber: %w", err)
		}
		stt = whisper
	}

	ingest := services.NewIngestOrchestrator(stt, gen, indexer, settings.DataDir)
	if settings.Language.IsValid() {
		ingest.SetLanguage(settings.Language)
	}

	return Services{
		Query:       query,
		Index:       indexer,
		Ingest:      ingest,
		Config:      cfg,
		Generation:  gen,
		Transcriber: stt,
		Store:       store,
	}, cleanup, nil
}
