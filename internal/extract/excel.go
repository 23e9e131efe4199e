package extract

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// extractExcel extracts each sheet as one table of rows. The sheet name is
// emitted as a heading paragraph so multi-sheet workbooks keep their
// structure after sectioning.
func extractExcel(content []byte) (*Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, wrapf("open Excel", err)
	}
	defer f.Close()

	res := &Result{}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, wrapf("get rows", err)
		}
		if len(rows) == 0 {
			continue
		}
		res.Paragraphs = append(res.Paragraphs, Paragraph{Text: sheet, Role: RoleHeading})
		table := make(TableRows, 0, len(rows))
		for _, row := range rows {
			if rowEmpty(row) {
				continue
			}
			table = append(table, row)
		}
		if len(table) > 0 {
			res.Tables = append(res.Tables, table)
		}
	}
	return res, nil
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
