package driven

import "context"

// GenerationService produces text completions from a generative model
// endpoint. The exchange is streamed server-side; implementations aggregate
// the stream into the final answer string and must stop consuming as soon
// as the completion signal is observed.
//
// Cancellation through ctx closes the underlying connection; a cancelled
// generation never produces a partial answer for the caller to append to
// history.
type GenerationService interface {
	// Generate sends the prompt and returns the aggregated response.
	// A non-success status from the endpoint is a hard failure for the
	// query; an undecodable stream fragment is skipped, not fatal.
	Generate(ctx context.Context, prompt string) (string, error)

	// ListModels returns the model names available at the endpoint.
	ListModels(ctx context.Context) ([]string, error)

	// ModelName returns the name of the generation model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// request, without running inference.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
