package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/acta-labs/acta-cli/internal/core/domain"
	"github.com/acta-labs/acta-cli/internal/core/ports/driven"
	"github.com/acta-labs/acta-cli/internal/core/ports/driving"
	"github.com/acta-labs/acta-cli/internal/logger"
)

// Ensure QueryOrchestrator implements the interface.
var _ driving.QueryService = (*QueryOrchestrator)(nil)

// RetrievalK is the number of chunks retrieved per question.
const RetrievalK = 3

// NoInformationAnswer is returned when retrieval finds nothing relevant.
const NoInformationAnswer = "No relevant information found."

// QueryOrchestrator composes retrieval, prompt assembly and generation into
// the end-to-end answer-a-question workflow, including the short circuit
// for meta-queries about the conversation itself.
//
// A single query runs start to finish without internal parallelism and
// without retries; retries are the caller's responsibility. History is
// appended only once an answer exists, so cancellation mid-generation
// leaves the session untouched.
type QueryOrchestrator struct {
	store    driven.VectorStore
	embedder driven.EmbeddingService
	gen      driven.GenerationService
	language domain.Language
}

// NewQueryOrchestrator creates a query orchestrator. The language selects
// the prompt template; when invalid it falls back to English.
func NewQueryOrchestrator(
	store driven.VectorStore,
	embedder driven.EmbeddingService,
	gen driven.GenerationService,
	language domain.Language,
) *QueryOrchestrator {
	if !language.IsValid() {
		language = domain.LanguageEN
	}
	return &QueryOrchestrator{
		store:    store,
		embedder: embedder,
		gen:      gen,
		language: language,
	}
}

// SetLanguage switches the prompt template language, typically after a new
// transcript was ingested and its language detected.
func (o *QueryOrchestrator) SetLanguage(lang domain.Language) {
	if lang.IsValid() {
		o.language = lang
	}
}

// Query answers one question against the indexed transcript and the given
// session's history.
func (o *QueryOrchestrator) Query(
	ctx context.Context, session *domain.Session, queryText string,
) (domain.QueryResponse, error) {
	logger.Section("Query Execution")
	logger.Debug("Query: %q", queryText)

	// Meta-queries are answered from history alone, no retrieval or
	// generation involved.
	if domain.IsMetaQuery(queryText) {
		logger.Debug("Meta-query detected, answering from history")
		answer := fmt.Sprintf("Your last question was: %s", session.LastUserQuestion())
		appendExchange(session, queryText, answer)
		return domain.QueryResponse{
			QueryText:    queryText,
			ResponseText: answer,
			Sources:      []string{},
		}, nil
	}

	results, err := o.retrieve(ctx, queryText)
	if err != nil {
		return domain.QueryResponse{}, err
	}
	logger.Debug("Retrieved %d chunks", len(results))

	// An empty index or no relevant chunks is a valid terminal state, not
	// an error.
	if len(results) == 0 {
		logger.Info("No relevant chunks found")
		appendExchange(session, queryText, NoInformationAnswer)
		return domain.QueryResponse{
			QueryText:    queryText,
			ResponseText: NoInformationAnswer,
			Sources:      []string{},
		}, nil
	}

	contextTexts := make([]string, len(results))
	sources := make([]string, len(results))
	for i, r := range results {
		contextTexts[i] = r.Text
		sources[i] = r.SourceID
	}

	prompt := AnswerPrompt(o.language, session.Format(), strings.Join(contextTexts, "\n"), queryText)

	answer, err := o.generate(ctx, prompt)
	if err != nil {
		return domain.QueryResponse{}, err
	}

	// Never append a cancelled query's exchange.
	if err := ctx.Err(); err != nil {
		return domain.QueryResponse{}, err
	}

	appendExchange(session, queryText, answer)

	return domain.QueryResponse{
		QueryText:    queryText,
		ResponseText: answer,
		Sources:      sources,
	}, nil
}

// retrieve embeds the query and runs similarity search, returning results
// best-first.
func (o *QueryOrchestrator) retrieve(ctx context.Context, queryText string) ([]domain.RetrievalResult, error) {
	if o.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if o.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	vector, err := o.embedder.Embed(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	results, err := o.store.Search(ctx, vector, RetrievalK)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	return results, nil
}

// generate invokes the generation client and normalises its output.
func (o *QueryOrchestrator) generate(ctx context.Context, prompt string) (string, error) {
	if o.gen == nil {
		return "", domain.ErrGenerationUnavailable
	}

	raw, err := o.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}

	answer := strings.TrimSpace(raw)
	// Some models echo the template; keep only the text after the final
	// "Answer:" marker.
	if i := strings.LastIndex(answer, "Answer:"); i >= 0 {
		answer = strings.TrimSpace(answer[i+len("Answer:"):])
	}
	return answer, nil
}

// appendExchange records the question and the produced answer as two new
// history entries, in that order.
func appendExchange(session *domain.Session, question, answer string) {
	session.Append(domain.Entry{Role: domain.RoleUser, Content: question})
	session.Append(domain.Entry{Role: domain.RoleAssistant, Content: answer})
}
