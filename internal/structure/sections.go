package structure

import "github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"

// defaultSectionHeader names the implicit section that collects content
// arriving before any heading.
const defaultSectionHeader = "Document Content"

// sectionAccumulator is a two-state accumulator (no open section / open
// section) fed with classified elements in document order. A heading-type
// element closes the open section and starts a new one; any other element
// attaches to the open section, creating the implicit default section when
// none is open yet.
type sectionAccumulator struct {
	sections []models.Section
	current  models.Section
	open     bool
	nextID   int
}

func (a *sectionAccumulator) add(el models.StructuralElement) {
	if el.Type.IsHeading() {
		a.close()
		a.current = models.Section{
			Header:      el.Content,
			Type:        el.Type,
			Elements:    []models.StructuralElement{el},
			SectionID:   a.nextID,
			TotalTokens: el.TokenCount,
		}
		a.nextID++
		a.open = true
		return
	}
	if !a.open {
		a.current = models.Section{
			Header:    defaultSectionHeader,
			Type:      models.ContentTypeContent,
			SectionID: a.nextID,
		}
		a.nextID++
		a.open = true
	}
	a.current.Elements = append(a.current.Elements, el)
	a.current.TotalTokens += el.TokenCount
}

func (a *sectionAccumulator) close() {
	if a.open {
		a.sections = append(a.sections, a.current)
		a.open = false
	}
}

// finish closes any open section and returns all accumulated sections.
func (a *sectionAccumulator) finish() []models.Section {
	a.close()
	return a.sections
}
