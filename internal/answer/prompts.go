package answer

import (
	"strings"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

// NoInfoMessage is returned when retrieval finds nothing. The oracle is
// never consulted for an empty context.
const NoInfoMessage = "Maaf, tidak ada informasi yang relevan di basis dokumen internal."

const (
	basePromptID = "Anda adalah asisten ahli dokumen internal yang memberikan jawaban LENGKAP dan AKURAT. " +
		"Tugas Anda adalah menjawab pertanyaan berdasarkan konteks yang diberikan dengan detail maksimal. "
	basePromptEN = "You are an expert internal document assistant that provides COMPLETE and ACCURATE answers. " +
		"Your task is to answer questions based on the given context with maximum detail. "
)

var instructionsID = []string{
	"1. Berikan jawaban yang KOMPREHENSIF berdasarkan SEMUA informasi relevan dalam konteks",
	"2. Jika ada struktur hierarki (daftar, bab, sub-bab), tampilkan dengan format yang jelas",
	"3. Gunakan SEMUA detail yang tersedia - jangan ringkas atau potong informasi",
	"4. Jika ada tabel, tampilkan dengan format yang mudah dibaca",
	"5. JANGAN PERNAH menyuruh user membaca dokumen asli atau mereferensikan ke sumber lain",
	"6. Jika informasi tersebar di beberapa bagian, gabungkan menjadi jawaban yang koheren",
	"7. Berikan jawaban dalam bahasa Indonesia yang natural dan profesional",
}

var instructionsEN = []string{
	"1. Provide COMPREHENSIVE answers based on ALL relevant information in the context",
	"2. If there are hierarchical structures (lists, chapters, sub-chapters), display them clearly",
	"3. Use ALL available details - don't summarize or cut information",
	"4. If there are tables, display them in readable format",
	"5. NEVER direct users to read original documents or reference other sources",
	"6. If information is spread across sections, combine into coherent answer",
	"7. Provide answers in natural and professional language",
}

// buildContext renders retrieved chunks into the context block handed to
// the oracle, each prefixed with a bracketed provenance line.
func buildContext(chunks []models.RetrievedChunk) string {
	parts := make([]string, 0, len(chunks))
	for _, rc := range chunks {
		source := "unknown"
		if s := rc.Chunk.Source(); s != "" {
			source = s
		}
		contentType := string(rc.Chunk.Type)
		if contentType == "" {
			contentType = string(models.ContentTypeContent)
		}
		meta := "[SOURCE: " + source + " | TYPE: " + contentType
		if header := rc.Chunk.SectionHeader(); header != "" {
			meta += " | SECTION: " + header
		}
		meta += "]"
		parts = append(parts, meta+"\n"+rc.Chunk.Content)
	}
	return strings.Join(parts, "\n\n")
}

// buildSystemPrompt assembles the language-specific system prompt, with
// extra instructions when the query asks for a table of contents or the
// retrieved set contains table chunks.
func buildSystemPrompt(lang, query string, chunks []models.RetrievedChunk) string {
	hasTables := false
	for _, rc := range chunks {
		if strings.Contains(string(rc.Chunk.Type), "table") {
			hasTables = true
			break
		}
	}
	queryLower := strings.ToLower(query)

	if lang == "en" {
		instructions := instructionsEN
		if strings.Contains(queryLower, "table of contents") || strings.Contains(queryLower, "contents") {
			instructions = append(instructions[:len(instructions):len(instructions)],
				"8. For table of contents: display ALL items with complete and clear hierarchy")
		}
		if hasTables {
			instructions = append(instructions[:len(instructions):len(instructions)],
				"8. Format tables neatly using readable structure")
		}
		return basePromptEN + "\n\nINSTRUCTIONS:\n" + strings.Join(instructions, "\n")
	}

	instructions := instructionsID
	if strings.Contains(queryLower, "daftar isi") || strings.Contains(queryLower, "contents") {
		instructions = append(instructions[:len(instructions):len(instructions)],
			"8. Untuk daftar isi: tampilkan SEMUA item dengan hierarki yang lengkap dan jelas")
	}
	if hasTables {
		instructions = append(instructions[:len(instructions):len(instructions)],
			"8. Format tabel dengan rapi menggunakan struktur yang mudah dibaca")
	}
	return basePromptID + "\n\nINSTRUKSI:\n" + strings.Join(instructions, "\n")
}
