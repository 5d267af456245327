package driven

import (
	"context"

	"github.com/acta-labs/acta-cli/internal/core/domain"
)

// VectorStore persists embedded chunks and answers nearest-neighbour
// queries over them. The store is the sole arbiter of consistency between
// concurrent indexing and querying; implementations must tolerate
// interleaved ListIDs/Upsert/Search calls from different callers.
type VectorStore interface {
	// ListIDs returns the set of chunk IDs currently stored. An empty or
	// freshly created store returns an empty set, not an error. The O(n)
	// listing is acceptable; the indexer uses it for deduplication.
	ListIDs(ctx context.Context) (map[string]struct{}, error)

	// Upsert stores the given entries in order. Entries are never mutated
	// after insertion; re-upserting an existing ID overwrites it.
	Upsert(ctx context.Context, entries []Entry) error

	// Search returns the k nearest chunks to the query vector, ordered
	// best-first by similarity. An empty store returns an empty slice.
	// Ties break by store-native order, deterministic for a fixed state.
	Search(ctx context.Context, query []float32, k int) ([]domain.RetrievalResult, error)

	// Reset irreversibly discards indexed entries: all of them when
	// sourceID is empty, otherwise only that source's chunks. Callers must
	// guard this behind an explicit flag.
	Reset(ctx context.Context, sourceID string) error

	// Close releases resources.
	Close() error
}

// Entry is a chunk as handed to the vector store.
type Entry struct {
	// ChunkID is the stable chunk identity.
	ChunkID string

	// SourceID is stored as metadata and returned with search hits.
	SourceID string

	// Text is the chunk content.
	Text string

	// Embedding is the chunk's vector representation.
	Embedding []float32
}
