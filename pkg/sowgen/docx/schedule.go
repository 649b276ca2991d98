package docx

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmptySchedule indicates the hardware schedule workbook has no rows.
var ErrEmptySchedule = errors.New("hardware schedule has no rows")

// AppendSchedule parses a hardware-schedule spreadsheet and appends it
// as a bordered table on a new page, with the first row rendered bold
// as the header.
func AppendSchedule(doc, workbook []byte) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	if err != nil {
		return doc, fmt.Errorf("open hardware schedule: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return doc, ErrEmptySchedule
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return doc, fmt.Errorf("read hardware schedule: %w", err)
	}
	rows = trimEmptyRows(rows)
	if len(rows) == 0 {
		return doc, ErrEmptySchedule
	}

	fragment := pageBreakXML +
		`<w:p><w:pPr><w:spacing w:after="120"/></w:pPr><w:r><w:rPr><w:b/><w:sz w:val="28"/><w:szCs w:val="28"/></w:rPr><w:t>Appendix — Hardware Schedule</w:t></w:r></w:p>` +
		buildTable(rows)

	return spliceIntoBody(doc, fragment)
}

const tableBorders = `<w:tblBorders>` +
	`<w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`</w:tblBorders>`

// buildTable renders string rows as an OOXML table. Rows are padded to
// the widest row so the grid stays rectangular.
func buildTable(rows [][]string) string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	var sb strings.Builder
	sb.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/>`)
	sb.WriteString(tableBorders)
	sb.WriteString(`</w:tblPr>`)

	for r, row := range rows {
		sb.WriteString(`<w:tr>`)
		for c := 0; c < width; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			sb.WriteString(`<w:tc><w:tcPr><w:tcW w:w="0" w:type="auto"/></w:tcPr><w:p><w:r>`)
			if r == 0 {
				sb.WriteString(`<w:rPr><w:b/></w:rPr>`)
			}
			sb.WriteString(`<w:t xml:space="preserve">`)
			sb.WriteString(EscapeXML(cell))
			sb.WriteString(`</w:t></w:r></w:p></w:tc>`)
		}
		sb.WriteString(`</w:tr>`)
	}
	sb.WriteString(`</w:tbl>`)
	return sb.String()
}

func trimEmptyRows(rows [][]string) [][]string {
	var out [][]string
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				out = append(out, row)
				break
			}
		}
	}
	return out
}
