package structure

import (
	"strings"
	"testing"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		role string
		want models.ContentType
	}{
		{"role title wins", "Anything at all", "sectionTitle", models.ContentTypeTitle},
		{"role heading wins", "Anything at all", "sectionHeading", models.ContentTypeHeading},
		{"toc indonesian", "DAFTAR ISI", "", models.ContentTypeTableOfContents},
		{"toc english", "Table of Contents", "", models.ContentTypeTableOfContents},
		{"chapter", "BAB 3 Metodologi", "", models.ContentTypeChapter},
		{"chapter english", "Chapter 12: Results", "", models.ContentTypeChapter},
		{"numbered header", "1. Ruang Lingkup", "", models.ContentTypeSectionHeader},
		{"appendix", "Lampiran A", "", models.ContentTypeAppendix},
		{"purpose", "Tujuan dokumen ini", "", models.ContentTypePurposeStatement},
		{"procedure", "Prosedur pengajuan cuti", "", models.ContentTypeDetailedContent},
		{"policy", "Kebijakan penggunaan aset", "", models.ContentTypeDetailedContent},
		{"table content", "A | B | C\n1 | 2 | 3", "", models.ContentTypeTableContent},
		{"plain", "Sekadar kalimat biasa tanpa sinyal apa pun", "", models.ContentTypeContent},
		{"bullets", "- satu x\n- dua y\n- tiga z", "", models.ContentTypeContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text, tt.role); got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.text, tt.role, got, tt.want)
			}
		})
	}
}

// A numbered header must outrank keyword heuristics even when the text
// contains a purpose keyword.
func TestClassify_NumberedHeaderBeatsKeyword(t *testing.T) {
	if got := Classify("1. Pendahuluan", ""); got != models.ContentTypeSectionHeader {
		t.Errorf("Classify(\"1. Pendahuluan\") = %q, want section_header", got)
	}
}

func TestClassify_LongTextIsDetailed(t *testing.T) {
	long := strings.Repeat("kata ", 120)
	if got := Classify(long, ""); got != models.ContentTypeDetailedContent {
		t.Errorf("long text = %q, want detailed_content", got)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Classify("DAFTAR ISI", ""); got != models.ContentTypeTableOfContents {
			t.Fatalf("run %d: got %q", i, got)
		}
	}
}
