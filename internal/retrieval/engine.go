// Package retrieval fetches candidate chunks from the search index and
// reranks them with structural bonuses before answer synthesis.
package retrieval

import (
	"context"

	"go.uber.org/zap"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/searchindex"
)

const (
	// DefaultMaxDocs is the number of chunks handed to synthesis.
	DefaultMaxDocs = 10
	// overfetchExtra and overfetchCap bound the candidate pool fetched for
	// reranking. Fetching a few more than requested lets the rerank promote
	// a structurally better chunk the raw index score placed just below the
	// cut.
	overfetchExtra = 2
	overfetchCap   = 15
)

// Engine retrieves and reranks chunks for a query.
type Engine struct {
	index   searchindex.Index
	weights Weights
	maxDocs int
	logger  *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used by the engine.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithWeights overrides the rerank weights.
func WithWeights(w Weights) Option {
	return func(e *Engine) { e.weights = w }
}

// WithMaxDocs overrides the number of chunks returned.
func WithMaxDocs(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxDocs = n
		}
	}
}

// NewEngine creates a retrieval engine over the given index.
func NewEngine(index searchindex.Index, opts ...Option) *Engine {
	e := &Engine{
		index:   index,
		weights: DefaultWeights(),
		maxDocs: DefaultMaxDocs,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// overfetch returns the candidate pool size for a requested result count.
func overfetch(maxDocs int) int {
	n := maxDocs + overfetchExtra
	if n > overfetchCap {
		n = overfetchCap
	}
	return n
}

// Retrieve returns the top chunks for the query, reranked. An index failure
// degrades to an empty result so a broken index yields a no-answer response
// rather than a hard error.
func (e *Engine) Retrieve(ctx context.Context, query string) []models.RetrievedChunk {
	candidates, err := e.index.Query(ctx, query, overfetch(e.maxDocs))
	if err != nil {
		e.logger.Warn("index query failed",
			zap.String("query", query),
			zap.Error(err))
		return nil
	}
	ranked := Rerank(candidates, query, e.weights)
	if len(ranked) > e.maxDocs {
		ranked = ranked[:e.maxDocs]
	}
	e.logger.Debug("retrieved chunks",
		zap.String("query", query),
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(ranked)))
	return ranked
}
