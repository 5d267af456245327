// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - VectorStore: chunk persistence and similarity search
//   - EmbeddingService: generates vector embeddings
//   - GenerationService: streamed LLM completion
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
//   - Transcriber: speech-to-text. Only needed when ingesting media files;
//     ingesting transcript text directly works without it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter package
package driven
