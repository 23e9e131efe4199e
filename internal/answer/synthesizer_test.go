package answer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

type fakeRetriever struct {
	chunks []models.RetrievedChunk
}

func (f *fakeRetriever) Retrieve(ctx context.Context, query string) []models.RetrievedChunk {
	return f.chunks
}

type fakeOracle struct {
	response  string
	err       error
	called    bool
	gotSystem string
	gotUser   string
}

func (f *fakeOracle) Complete(ctx context.Context, system, user string) (string, error) {
	f.called = true
	f.gotSystem = system
	f.gotUser = user
	return f.response, f.err
}

func chunkWith(source, header, content string, ctype models.ContentType) models.RetrievedChunk {
	return models.RetrievedChunk{
		Chunk: models.Chunk{
			Content: content,
			Type:    ctype,
			Metadata: map[string]interface{}{
				models.MetaSource:        source,
				models.MetaSectionHeader: header,
			},
		},
	}
}

func TestAnswerEmptyRetrievalSkipsOracle(t *testing.T) {
	oracle := &fakeOracle{response: "should not appear"}
	s := NewSynthesizer(&fakeRetriever{}, oracle)

	got, err := s.Answer(context.Background(), "apa kebijakan cuti?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got != NoInfoMessage {
		t.Errorf("Answer = %q, want no-info message", got)
	}
	if oracle.called {
		t.Error("oracle must not be called for empty retrieval")
	}
}

func TestAnswerBuildsContextAndPrompt(t *testing.T) {
	oracle := &fakeOracle{response: "Cuti tahunan adalah 12 hari."}
	retriever := &fakeRetriever{chunks: []models.RetrievedChunk{
		chunkWith("hr/leave.pdf", "2. Cuti", "Cuti tahunan 12 hari.", models.ContentTypeContent),
	}}
	s := NewSynthesizer(retriever, oracle)

	got, err := s.Answer(context.Background(), "berapa hari cuti tahunan?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got != oracle.response {
		t.Errorf("Answer = %q", got)
	}
	if !strings.Contains(oracle.gotUser, "Question: berapa hari cuti tahunan?") {
		t.Errorf("user prompt missing question: %q", oracle.gotUser)
	}
	if !strings.Contains(oracle.gotUser, "[SOURCE: hr/leave.pdf | TYPE: content | SECTION: 2. Cuti]") {
		t.Errorf("user prompt missing provenance line: %q", oracle.gotUser)
	}
	if !strings.Contains(oracle.gotSystem, "INSTRUKSI:") {
		t.Errorf("system prompt should default to Indonesian: %q", oracle.gotSystem)
	}
}

func TestAnswerEnglishPrompt(t *testing.T) {
	oracle := &fakeOracle{response: "ok"}
	retriever := &fakeRetriever{chunks: []models.RetrievedChunk{
		chunkWith("doc.pdf", "", "text", models.ContentTypeContent),
	}}
	s := NewSynthesizer(retriever, oracle, WithLanguage("en"))

	if _, err := s.Answer(context.Background(), "what is the policy?"); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !strings.Contains(oracle.gotSystem, "INSTRUCTIONS:") {
		t.Errorf("system prompt should be English: %q", oracle.gotSystem)
	}
}

func TestAnswerOracleErrorPropagates(t *testing.T) {
	oracle := &fakeOracle{err: errors.New("rate limited")}
	retriever := &fakeRetriever{chunks: []models.RetrievedChunk{
		chunkWith("doc.pdf", "", "text", models.ContentTypeContent),
	}}
	s := NewSynthesizer(retriever, oracle)

	if _, err := s.Answer(context.Background(), "q"); err == nil {
		t.Fatal("oracle error should propagate")
	}
}

func TestSystemPromptConditionalInstructions(t *testing.T) {
	plain := []models.RetrievedChunk{chunkWith("a.pdf", "", "x", models.ContentTypeContent)}
	withTable := []models.RetrievedChunk{chunkWith("a.pdf", "", "x", models.ContentTypeTable)}

	tests := []struct {
		name      string
		lang      string
		query     string
		chunks    []models.RetrievedChunk
		want      string
		forbidden string
	}{
		{
			name:   "toc instruction indonesian",
			lang:   "id",
			query:  "tampilkan daftar isi",
			chunks: plain,
			want:   "Untuk daftar isi",
		},
		{
			name:   "table instruction",
			lang:   "id",
			query:  "jelaskan",
			chunks: withTable,
			want:   "Format tabel",
		},
		{
			name:      "no extras",
			lang:      "id",
			query:     "jelaskan kebijakan",
			chunks:    plain,
			forbidden: "8.",
		},
		{
			name:   "toc instruction english",
			lang:   "en",
			query:  "show the table of contents",
			chunks: plain,
			want:   "For table of contents",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := buildSystemPrompt(tt.lang, tt.query, tt.chunks)
			if tt.want != "" && !strings.Contains(prompt, tt.want) {
				t.Errorf("prompt missing %q", tt.want)
			}
			if tt.forbidden != "" && strings.Contains(prompt, tt.forbidden) {
				t.Errorf("prompt should not contain %q", tt.forbidden)
			}
		})
	}
}

func TestFormatFallback(t *testing.T) {
	if got := FormatFallback(nil); got != NoInfoMessage {
		t.Errorf("empty fallback = %q", got)
	}
	chunks := []models.RetrievedChunk{
		chunkWith("hr/leave.pdf", "", "Cuti tahunan 12 hari.", models.ContentTypeContent),
	}
	got := FormatFallback(chunks)
	if !strings.Contains(got, "Dari hr/leave.pdf:") {
		t.Errorf("fallback missing source line: %q", got)
	}
	if !strings.Contains(got, "Cuti tahunan 12 hari.") {
		t.Errorf("fallback missing content: %q", got)
	}
}
