package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Document represents a transcript to be chunked and indexed.
// It is immutable once chunking has started.
type Document struct {
	// SourceID identifies where the text came from, typically the
	// transcript file path. It becomes the prefix of every chunk ID.
	SourceID string

	// Text is the full transcript text.
	Text string
}

// Chunk is a bounded contiguous span of a document's text. It is the unit
// of embedding, storage and retrieval.
type Chunk struct {
	// ID is the stable chunk identity, "<source>:<index>".
	// Empty until assigned.
	ID string

	// SourceID links back to the originating document.
	SourceID string

	// Index is the zero-based position within the source's chunk sequence.
	Index int

	// Text is the chunk content.
	Text string
}

// ChunkID derives the stable identity for a chunk of the given source at
// the given position. Re-chunking the same document with the same splitting
// parameters reproduces identical IDs, which is what makes re-indexing
// idempotent.
func ChunkID(sourceID string, index int) string {
	return sourceID + ":" + strconv.Itoa(index)
}

// SplitChunkID is the inverse of ChunkID. It returns the source ID and
// sequence index encoded in id.
func SplitChunkID(id string) (sourceID string, index int, err error) {
	i := strings.LastIndex(id, ":")
	if i < 0 {
		return "", 0, fmt.Errorf("malformed chunk id %q", id)
	}
	index, err = strconv.Atoi(id[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("malformed chunk id %q: %w", id, err)
	}
	return id[:i], index, nil
}

// RetrievalResult is a single similarity-search hit. Sequences of results
// are always ordered best-first (descending similarity).
type RetrievalResult struct {
	// ChunkID is the matched chunk's identity.
	ChunkID string

	// SourceID is the source the chunk came from.
	SourceID string

	// Text is the chunk content.
	Text string

	// Score is the similarity score, higher is better.
	Score float64
}

// QueryResponse is the outcome of one question through the orchestrator.
type QueryResponse struct {
	// QueryText is the question as asked.
	QueryText string `json:"query_text"`

	// ResponseText is the generated (or canned) answer.
	ResponseText string `json:"response_text"`

	// Sources lists the source ID of each retrieved chunk in rank order.
	// Duplicates are kept: two chunks from the same transcript yield the
	// same source twice.
	Sources []string `json:"sources"`
}
