package retriever

import (
	"context"

	"terra-assistant-be/internal/pkg/logger"
	"terra-assistant-be/pkg/corpus"
	"terra-assistant-be/pkg/embedding"
	"terra-assistant-be/pkg/vectorindex"
)

// Result is one retrieved document with its squared L2 distance to the query
// (smaller = more relevant).
type Result struct {
	Document corpus.Document
	Distance float32
}

// Retriever answers queries with the top-k closest corpus documents.
// Retrieval is best-effort: any failure degrades to an empty result so the
// turn can still produce an answer from general knowledge.
type Retriever struct {
	embeddingProvider embedding.Provider
	index             *vectorindex.FlatL2
	corpus            *corpus.Corpus
	logger            logger.ILogger
}

func New(
	embeddingProvider embedding.Provider,
	index *vectorindex.FlatL2,
	c *corpus.Corpus,
	log logger.ILogger,
) *Retriever {
	return &Retriever{
		embeddingProvider: embeddingProvider,
		index:             index,
		corpus:            c,
		logger:            log,
	}
}

// BuildIndex embeds every corpus document in order and inserts it into the
// index. Unlike Retrieve, a failure here is fatal to the caller: an assistant
// with no retrievable knowledge is a deployment error, not a runtime
// condition to mask.
func BuildIndex(ctx context.Context, provider embedding.Provider, c *corpus.Corpus) (*vectorindex.FlatL2, error) {
	index := vectorindex.NewFlatL2()
	for _, doc := range c.All() {
		vec, err := provider.Generate(ctx, doc.Content)
		if err != nil {
			return nil, err
		}
		if err := index.Add(vec); err != nil {
			return nil, err
		}
	}
	return index, nil
}

// Retrieve returns up to k documents ranked ascending by distance. On any
// failure it logs and returns an empty slice rather than an error.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) []Result {
	if k < 1 {
		k = 1
	}

	queryVec, err := r.embeddingProvider.Generate(ctx, query)
	if err != nil {
		r.logger.Warn("retriever", "Query embedding failed, degrading to empty context", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	hits, err := r.index.Search(queryVec, k)
	if err != nil {
		r.logger.Warn("retriever", "Index search failed, degrading to empty context", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	results := make([]Result, 0, len(hits))
	for _, hit := range hits {
		doc, ok := r.corpus.Get(hit.Position)
		if !ok {
			continue
		}
		results = append(results, Result{Document: doc, Distance: hit.Distance})
	}
	return results
}
