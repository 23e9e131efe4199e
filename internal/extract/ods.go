package extract

import (
	"regexp"
)

var (
	odTableRow  = regexp.MustCompile(`(?s)<table:table-row[^>]*>.*?</table:table-row>`)
	odTableCell = regexp.MustCompile(`(?s)<table:table-cell[^>]*>(.*?)</table:table-cell>|<table:table-cell[^>]*/>`)
)

// extractODS extracts each spreadsheet row as table cells from .ods bytes
// (OpenDocument Spreadsheet). Cell structure is preserved so downstream
// table chunking can keep the header row.
func extractODS(content []byte) (*Result, error) {
	xml, err := readODContent(content, "ODS")
	if err != nil {
		return nil, err
	}
	res := &Result{}
	var table TableRows
	for _, rowXML := range odTableRow.FindAllString(xml, -1) {
		var row []string
		empty := true
		for _, m := range odTableCell.FindAllStringSubmatch(rowXML, -1) {
			text := odFlatten(m[1])
			row = append(row, text)
			if text != "" {
				empty = false
			}
		}
		if !empty {
			table = append(table, row)
		}
	}
	if len(table) > 0 {
		res.Tables = append(res.Tables, table)
	}
	return res, nil
}
