package structure

import (
	"sort"
	"strings"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/layout"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

// cellDelimiter joins cells within one reconstructed row.
const cellDelimiter = " | "

// reconstructTable rebuilds ordered rows from (row, column, content) cells.
// Row 0 is kept separately as the header row.
func (e *Extractor) reconstructTable(cells []layout.Cell, tableID int) models.Table {
	rows := make(map[int]map[int]string)
	var headers []string
	for _, cell := range cells {
		content := CleanText(cell.Content)
		if rows[cell.RowIndex] == nil {
			rows[cell.RowIndex] = make(map[int]string)
		}
		rows[cell.RowIndex][cell.ColumnIndex] = content
		if cell.RowIndex == 0 {
			headers = append(headers, content)
		}
	}

	rowIndexes := make([]int, 0, len(rows))
	for r := range rows {
		rowIndexes = append(rowIndexes, r)
	}
	sort.Ints(rowIndexes)

	lines := make([]string, 0, len(rowIndexes))
	for _, r := range rowIndexes {
		colIndexes := make([]int, 0, len(rows[r]))
		for c := range rows[r] {
			colIndexes = append(colIndexes, c)
		}
		sort.Ints(colIndexes)
		cellsInRow := make([]string, 0, len(colIndexes))
		for _, c := range colIndexes {
			cellsInRow = append(cellsInRow, rows[r][c])
		}
		lines = append(lines, strings.Join(cellsInRow, cellDelimiter))
	}

	content := strings.Join(lines, "\n")
	return models.Table{
		Content:    content,
		Headers:    headers,
		TableID:    tableID,
		TokenCount: e.counter.Count(content),
	}
}
