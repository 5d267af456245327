// Package domain defines the core business entities for Acta.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies beyond uuid and defines the fundamental
// types:
//
//   - Document: a transcript to be chunked and indexed
//   - Chunk: the unit of embedding and retrieval
//   - RetrievalResult: a similarity hit, normalised best-first
//   - Session: an in-memory, append-only conversation history
//   - QueryResponse: the answer to a question with its sources
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: standard library, github.com/google/uuid
//   - Cannot Import: any other internal/ package
package domain
