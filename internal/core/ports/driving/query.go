package driving

import (
	"context"

	"github.com/acta-labs/acta-cli/internal/core/domain"
)

// QueryService answers questions about the indexed transcript.
type QueryService interface {
	// Query runs one question through the retrieval-augmented pipeline
	// against the given session's history. The session is mutated: the
	// question and the produced answer are appended as two entries once
	// the answer exists. Cancellation before that point leaves the
	// session untouched.
	Query(ctx context.Context, session *domain.Session, queryText string) (domain.QueryResponse, error)
}
