// Package services implements the application core: the incremental
// indexer, the retrieval-augmented query orchestrator, the prompt
// assembler and the transcript ingestion workflow.
//
// Services depend only on domain types and driven ports; adapters are
// injected through constructors so tests can substitute doubles for the
// vector store, the embedding service and the generation endpoint.
package services
