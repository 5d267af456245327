package services

import (
	"context"
	"strings"

	"github.com/acta-labs/acta-cli/internal/core/domain"
	"github.com/acta-labs/acta-cli/internal/core/ports/driven"
)

// fakeStore is an in-memory VectorStore double recording calls.
type fakeStore struct {
	entries []driven.Entry

	searchResults []domain.RetrievalResult

	listErr   error
	upsertErr error
	searchErr error

	upsertCalls [][]driven.Entry
	searchCalls int
	resetCalls  []string
}

var _ driven.VectorStore = (*fakeStore)(nil)

func (f *fakeStore) ListIDs(_ context.Context) (map[string]struct{}, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	ids := make(map[string]struct{}, len(f.entries))
	for _, e := range f.entries {
		ids[e.ChunkID] = struct{}{}
	}
	return ids, nil
}

func (f *fakeStore) Upsert(_ context.Context, entries []driven.Entry) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upsertCalls = append(f.upsertCalls, entries)
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakeStore) Search(_ context.Context, _ []float32, k int) ([]domain.RetrievalResult, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	results := f.searchResults
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

func (f *fakeStore) Reset(_ context.Context, sourceID string) error {
	f.resetCalls = append(f.resetCalls, sourceID)
	if sourceID == "" {
		f.entries = nil
		return nil
	}
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.SourceID != sourceID {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

func (f *fakeStore) Close() error { return nil }

// fakeEmbedder produces deterministic vectors from text length.
type fakeEmbedder struct {
	embedErr   error
	embedCalls []string
}

var _ driven.EmbeddingService = (*fakeEmbedder)(nil)

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	f.embedCalls = append(f.embedCalls, text)
	return []float32{float32(len(text)), 1, 0, 0}, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := f.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (f *fakeEmbedder) Dimensions() int              { return 4 }
func (f *fakeEmbedder) ModelName() string            { return "fake-embed" }
func (f *fakeEmbedder) Ping(_ context.Context) error { return nil }
func (f *fakeEmbedder) Close() error                 { return nil }

// fakeGen returns a fixed response and records prompts.
type fakeGen struct {
	response string
	genErr   error
	prompts  []string
}

var _ driven.GenerationService = (*fakeGen)(nil)

func (f *fakeGen) Generate(_ context.Context, prompt string) (string, error) {
	if f.genErr != nil {
		return "", f.genErr
	}
	f.prompts = append(f.prompts, prompt)
	return f.response, nil
}

func (f *fakeGen) ListModels(_ context.Context) ([]string, error) {
	return []string{"llama3.2"}, nil
}

func (f *fakeGen) ModelName() string            { return "fake-gen" }
func (f *fakeGen) Ping(_ context.Context) error { return nil }
func (f *fakeGen) Close() error                 { return nil }

// fakeTranscriber returns canned transcript text.
type fakeTranscriber struct {
	transcript string
	err        error
	calls      []string
}

var _ driven.Transcriber = (*fakeTranscriber)(nil)

func (f *fakeTranscriber) Transcribe(_ context.Context, path string) (string, error) {
	f.calls = append(f.calls, path)
	if f.err != nil {
		return "", f.err
	}
	return f.transcript, nil
}

func (f *fakeTranscriber) ListModels() ([]string, error) {
	return []string{"base"}, nil
}

// chunkTexts extracts the text of each entry for assertions.
func chunkTexts(entries []driven.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text
	}
	return out
}

// containsAll reports whether s contains every substring.
func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
