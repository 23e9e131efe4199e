// Package answer turns retrieved chunks into a grounded response via the
// chat oracle.
package answer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/llm"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/pkg/utils"
)

// Retriever is the slice of the retrieval engine the synthesizer needs.
type Retriever interface {
	Retrieve(ctx context.Context, query string) []models.RetrievedChunk
}

// Synthesizer answers questions over the indexed documents.
type Synthesizer struct {
	retriever Retriever
	oracle    llm.Oracle
	lang      string
	logger    *zap.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithLogger sets the logger used by the synthesizer.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Synthesizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLanguage sets the answer language ("id" or "en"). Indonesian is the
// default.
func WithLanguage(lang string) Option {
	return func(s *Synthesizer) {
		if lang != "" {
			s.lang = lang
		}
	}
}

// NewSynthesizer creates an answer synthesizer.
func NewSynthesizer(retriever Retriever, oracle llm.Oracle, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		retriever: retriever,
		oracle:    oracle,
		lang:      "id",
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Answer retrieves context for the query and asks the oracle for a grounded
// response. An empty retrieval short-circuits to the fixed no-info message;
// an oracle failure propagates to the caller.
func (s *Synthesizer) Answer(ctx context.Context, query string) (string, error) {
	chunks := s.retriever.Retrieve(ctx, query)
	if len(chunks) == 0 {
		s.logger.Info("no relevant chunks", zap.String("query", query))
		return NoInfoMessage, nil
	}

	system := buildSystemPrompt(s.lang, query, chunks)
	user := fmt.Sprintf("Question: %s\n\nContext:\n%s", query, buildContext(chunks))

	response, err := s.oracle.Complete(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("answer %q: %w", query, err)
	}
	s.logger.Debug("answered",
		zap.String("query", query),
		zap.Int("context_chunks", len(chunks)),
		zap.String("preview", utils.Truncate(response, 120)))
	return response, nil
}

// FormatFallback renders retrieved chunks as a plain-text answer without
// the oracle. Callers that want oracle-failure degradation invoke this
// explicitly; Answer never falls back on its own.
func FormatFallback(chunks []models.RetrievedChunk) string {
	if len(chunks) == 0 {
		return NoInfoMessage
	}
	var b strings.Builder
	b.WriteString("Informasi yang ditemukan:\n")
	for _, rc := range chunks {
		b.WriteString("\n")
		if source := rc.Chunk.Source(); source != "" {
			b.WriteString(fmt.Sprintf("Dari %s:\n", source))
		}
		b.WriteString(rc.Chunk.Content)
		b.WriteString("\n")
	}
	return b.String()
}
