package services

import (
	"context"
	"fmt"

	"github.com/acta-labs/acta-cli/internal/chunker"
	"github.com/acta-labs/acta-cli/internal/core/domain"
	"github.com/acta-labs/acta-cli/internal/core/ports/driven"
	"github.com/acta-labs/acta-cli/internal/core/ports/driving"
	"github.com/acta-labs/acta-cli/internal/logger"
)

// Ensure IndexerService implements the interface.
var _ driving.IndexService = (*IndexerService)(nil)

// IndexerService embeds new chunks and upserts them into the vector store,
// skipping chunks whose identity already exists. A failed add never deletes
// previously indexed entries.
type IndexerService struct {
	store    driven.VectorStore
	embedder driven.EmbeddingService
	splitter *chunker.Splitter
}

// NewIndexerService creates a new indexer service.
func NewIndexerService(
	store driven.VectorStore,
	embedder driven.EmbeddingService,
	splitter *chunker.Splitter,
) *IndexerService {
	if splitter == nil {
		splitter = chunker.New()
	}
	return &IndexerService{
		store:    store,
		embedder: embedder,
		splitter: splitter,
	}
}

// IndexDocument chunks the document, assigns identities and adds the chunks
// not already stored. Returns the number of newly added chunks.
func (s *IndexerService) IndexDocument(ctx context.Context, doc domain.Document) (int, error) {
	if doc.Text == "" {
		return 0, fmt.Errorf("source %q: %w", doc.SourceID, domain.ErrEmptyDocument)
	}

	chunks := chunker.AssignIDs(s.splitter.Split(doc))
	return s.Add(ctx, chunks)
}

// Add upserts the chunks whose IDs are not yet stored, preserving input
// order, and returns the count of newly added entries. Re-running Add on an
// already-indexed chunk set adds zero.
func (s *IndexerService) Add(ctx context.Context, chunks []domain.Chunk) (int, error) {
	if s.store == nil {
		return 0, domain.ErrStoreUnavailable
	}
	if s.embedder == nil {
		return 0, domain.ErrEmbeddingUnavailable
	}

	existing, err := s.store.ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing stored ids: %w", err)
	}
	logger.Debug("Index holds %d chunks, %d incoming", len(existing), len(chunks))

	newChunks := make([]domain.Chunk, 0, len(chunks))
	for _, c := range chunks {
		if _, ok := existing[c.ID]; !ok {
			newChunks = append(newChunks, c)
		}
	}

	if len(newChunks) == 0 {
		logger.Info("No new chunks to add")
		return 0, nil
	}

	texts := make([]string, len(newChunks))
	for i, c := range newChunks {
		texts[i] = c.Text
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embedding %d chunks: %w", len(newChunks), err)
	}

	entries := make([]driven.Entry, len(newChunks))
	for i, c := range newChunks {
		entries[i] = driven.Entry{
			ChunkID:   c.ID,
			SourceID:  c.SourceID,
			Text:      c.Text,
			Embedding: embeddings[i],
		}
	}

	if err := s.store.Upsert(ctx, entries); err != nil {
		return 0, fmt.Errorf("upserting %d chunks: %w", len(entries), err)
	}

	logger.Info("Added %d new chunks", len(entries))
	return len(entries), nil
}

// Reset irreversibly clears indexed entries, all of them when sourceID is
// empty. Destructive and non-recoverable; the CLI exposes it behind an
// explicit --reset flag only.
func (s *IndexerService) Reset(ctx context.Context, sourceID string) error {
	if s.store == nil {
		return domain.ErrStoreUnavailable
	}

	if sourceID == "" {
		logger.Warn("Clearing the entire index")
	} else {
		logger.Warn("Clearing index entries for source %q", sourceID)
	}

	if err := s.store.Reset(ctx, sourceID); err != nil {
		return fmt.Errorf("resetting index: %w", err)
	}
	return nil
}
