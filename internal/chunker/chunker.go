// Package chunker provides fixed-size overlapping text chunking and stable
// chunk identity assignment.
package chunker

import (
	"github.com/acta-labs/acta-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 600

// DefaultOverlap is the default number of overlapping characters.
const DefaultOverlap = 120

// Splitter splits document text into fixed-size overlapping chunks.
// Splitting is length-based, not semantic: it does not respect sentence or
// word boundaries.
type Splitter struct {
	chunkSize int
	overlap   int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// New creates a splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Ensure overlap doesn't exceed chunk size
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// ChunkSize returns the configured chunk size.
func (s *Splitter) ChunkSize() int { return s.chunkSize }

// Overlap returns the configured overlap.
func (s *Splitter) Overlap() int { return s.overlap }

// Split splits the document into chunks without IDs. An empty document
// yields no chunks; a document shorter than the chunk size yields exactly
// one. Every character index of the input is covered by at least one chunk.
// Boundaries are measured in runes so multibyte characters are never cut.
func (s *Splitter) Split(doc domain.Document) []domain.Chunk {
	if doc.Text == "" {
		return nil
	}

	text := []rune(doc.Text)
	textLen := len(text)

	estimated := (textLen / (s.chunkSize - s.overlap)) + 1
	chunks := make([]domain.Chunk, 0, estimated)

	start := 0
	for start < textLen {
		end := start + s.chunkSize
		if end > textLen {
			end = textLen
		}

		chunks = append(chunks, domain.Chunk{
			SourceID: doc.SourceID,
			Text:     string(text[start:end]),
		})

		start += s.chunkSize - s.overlap
	}

	return chunks
}

// AssignIDs assigns each chunk its stable identity "<source>:<index>".
// The sequence index restarts at zero whenever the source ID differs from
// the immediately preceding chunk's, so mixed-source sequences get an
// independently zero-indexed sub-sequence per source. The function is pure:
// identical input always yields identical IDs.
func AssignIDs(chunks []domain.Chunk) []domain.Chunk {
	lastSource := ""
	index := 0

	out := make([]domain.Chunk, len(chunks))
	for i, c := range chunks {
		if i == 0 || c.SourceID != lastSource {
			index = 0
		} else {
			index++
		}
		lastSource = c.SourceID

		c.Index = index
		c.ID = domain.ChunkID(c.SourceID, index)
		out[i] = c
	}

	return out
}
