package structure

import (
	"regexp"
	"strings"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

// Keyword sets cover Indonesian and English document conventions.
var (
	tocKeywords = []string{"DAFTAR ISI", "TABLE OF CONTENTS", "CONTENTS", "INDEX", "INDEKS"}

	appendixKeywords = []string{"APPENDIX", "LAMPIRAN", "ANNEX", "ATTACHMENT"}

	purposeKeywords = []string{
		"PURPOSE", "TUJUAN", "VISION", "VISI", "MISSION", "MISI",
		"OBJECTIVE", "SASARAN", "GOAL", "TARGET", "INTRODUCTION",
		"PENDAHULUAN", "OVERVIEW", "RINGKASAN", "SUMMARY",
		"CONCLUSION", "KESIMPULAN", "RECOMMENDATION", "REKOMENDASI",
	}

	procedureKeywords = []string{
		"PROCEDURE", "PROSEDUR", "PROCESS", "PROSES", "WORKFLOW",
		"LANGKAH", "TAHAP", "STEPS", "CARA",
	}

	policyKeywords = []string{
		"POLICY", "KEBIJAKAN", "RULE", "ATURAN", "REGULATION",
		"REGULASI", "GUIDELINE", "PANDUAN",
	}
)

var (
	chapterRe    = regexp.MustCompile(`^(BAB|CHAPTER|SECTION|BAGIAN)\s*\d+`)
	numberedRe   = regexp.MustCompile(`^\d+\.`)
	subNumberRe  = regexp.MustCompile(`^\d+\.\d+`)
	tableCharsRe = regexp.MustCompile(`[|:─┌└]`)
)

// Classify assigns a semantic content type to a text fragment. role is an
// optional structural hint from the layout service and wins over textual
// heuristics. Pure and deterministic.
//
// Structural signals (role, TOC markers, numbered headers) are checked
// before generic keyword/length heuristics so a long introductory paragraph
// is not mistaken for a heading.
func Classify(text, role string) models.ContentType {
	upper := strings.ToUpper(text)
	trimmed := strings.TrimSpace(text)

	roleLower := strings.ToLower(role)
	if strings.Contains(roleLower, "title") {
		return models.ContentTypeTitle
	}
	if strings.Contains(roleLower, "heading") {
		return models.ContentTypeHeading
	}

	if containsAny(upper, tocKeywords) {
		return models.ContentTypeTableOfContents
	}
	if chapterRe.MatchString(upper) {
		return models.ContentTypeChapter
	}
	if numberedRe.MatchString(trimmed) {
		return models.ContentTypeSectionHeader
	}
	if subNumberRe.MatchString(trimmed) {
		return models.ContentTypeSubsectionHeader
	}
	if containsAny(upper, appendixKeywords) {
		return models.ContentTypeAppendix
	}
	if containsAny(upper, purposeKeywords) {
		return models.ContentTypePurposeStatement
	}
	if containsAny(upper, procedureKeywords) || containsAny(upper, policyKeywords) {
		return models.ContentTypeDetailedContent
	}
	if len(strings.Fields(text)) > 100 {
		return models.ContentTypeDetailedContent
	}
	if tableCharsRe.MatchString(text) ||
		(strings.Count(text, "|") > 2 && strings.Contains(text, "\n")) {
		return models.ContentTypeTableContent
	}
	if strings.Count(text, "- ") > 2 || strings.Count(text, "• ") > 2 {
		return models.ContentTypeContent
	}
	return models.ContentTypeContent
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
