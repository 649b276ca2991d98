package bom

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/hts-tools/sowgen-go/pkg/sowgen/models"
)

// ErrNoData indicates the workbook contains no sheets or no cells.
var ErrNoData = errors.New("no data found in spreadsheet")

// ErrNoItems indicates no sheet yielded any material line items. The
// message names the expected header vocabulary so users can fix their
// sheet; callers must surface this as a blocking error.
var ErrNoItems = fmt.Errorf(
	"no material items found: expected a header row with a description column (%s) and quantity column (%s)",
	strings.Join(descriptionKeywords, "/"), strings.Join(quantityKeywords, "/"))

const (
	// anchorDataRow is the fixed fallback start row for item
	// extraction. With a detected header the start is header+1; in
	// positional-fallback mode this skips the presumed header row.
	anchorDataRow = 1

	// Positional defaults when no header row is detected.
	fallbackDescriptionCol = 0
	fallbackQuantityCol    = 1

	// Bounds of the header region scanned for project metadata.
	metaScanRows = 12
	metaScanCols = 8

	// Descriptions containing "total" shorter than this are treated as
	// subtotal rows. Known approximation: an 18-character legitimate
	// item description containing "total" would be dropped too.
	totalMarkerMaxLen = 20
)

var oppPattern = regexp.MustCompile(`(?i)\bOPP[-\s]?\d+\b`)

// Result holds everything extracted from one workbook.
type Result struct {
	// Items is the material list from the best sheet.
	Items []models.LineItem
	// Meta holds project fields found across all sheets.
	Meta models.ProjectMeta
	// Sheet is the name of the sheet the items came from.
	Sheet string
}

// ExtractWorkbook walks every worksheet, extracting project metadata
// (fill-empty-only across sheets, in sheet order) and line items. The
// longest single-sheet item list wins; partial lists are never merged
// across sheets. Returns ErrNoItems when no sheet yields any items.
func ExtractWorkbook(f *excelize.File, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, ErrNoData
	}

	res := &Result{}
	for _, sheetName := range sheetList {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			logger.Warn("skipping unreadable sheet",
				zap.String("sheet", sheetName), zap.Error(err))
			continue
		}
		if len(rows) == 0 {
			continue
		}

		res.Meta.FillFrom(extractMeta(rows))

		items := extractItems(rows, logger.With(zap.String("sheet", sheetName)))
		if len(items) > len(res.Items) {
			res.Items = items
			res.Sheet = sheetName
		}
	}

	if len(res.Items) == 0 {
		return nil, ErrNoItems
	}
	logger.Debug("extracted material list",
		zap.String("sheet", res.Sheet), zap.Int("items", len(res.Items)))
	return res, nil
}

// extractItems pulls line items from one sheet. It degrades to the
// positional description/quantity defaults when no header row is
// detected; it never fails.
func extractItems(rows [][]string, logger *zap.Logger) []models.LineItem {
	cm, ok := DetectColumns(rows)
	start := anchorDataRow
	if ok {
		if cm.HeaderRow+1 > start {
			start = cm.HeaderRow + 1
		}
	} else {
		logger.Debug("no header row detected, using positional columns")
		cm = models.ColumnMap{
			Description: fallbackDescriptionCol,
			Quantity:    fallbackQuantityCol,
			PartNumber:  models.NoColumn,
			UnitPrice:   models.NoColumn,
			TotalPrice:  models.NoColumn,
			Vendor:      models.NoColumn,
			HeaderRow:   models.NoColumn,
		}
	}

	var items []models.LineItem
	for r := start; r < len(rows); r++ {
		desc := strings.TrimSpace(cellAt(rows, r, cm.Description))
		if desc == "" || strings.EqualFold(desc, "undefined") {
			continue
		}
		if isTotalMarker(desc) {
			continue
		}

		item := models.LineItem{Description: desc}
		if qty, ok := ParseNumeric(cellAt(rows, r, cm.Quantity)); ok {
			item.Quantity = qty
		}
		if pn := strings.TrimSpace(cellAt(rows, r, cm.PartNumber)); pn != "" && !strings.EqualFold(pn, "undefined") {
			item.PartNumber = pn
		}
		if vendor := strings.TrimSpace(cellAt(rows, r, cm.Vendor)); vendor != "" && !strings.EqualFold(vendor, "undefined") {
			item.Vendor = vendor
		}
		if price, ok := ParseNumeric(cellAt(rows, r, cm.UnitPrice)); ok {
			item.UnitPrice = &price
		}
		if price, ok := ParseNumeric(cellAt(rows, r, cm.TotalPrice)); ok {
			item.TotalPrice = &price
		}
		items = append(items, item)
	}
	return items
}

// isTotalMarker reports whether a description is a subtotal/total row
// rather than a real item.
func isTotalMarker(desc string) bool {
	lower := strings.ToLower(desc)
	if lower == "subtotal" || lower == "grand total" {
		return true
	}
	return strings.Contains(lower, "total") && len(desc) < totalMarkerMaxLen
}

// extractMeta reads project fields from the sheet's header region:
// fixed label/value cells at the offsets used by the organization's
// standard quoting template, plus a free-text OPP code scan over the
// whole window for non-standard sheets.
func extractMeta(rows [][]string) models.ProjectMeta {
	var meta models.ProjectMeta

	labelFields := []struct {
		keywords []string
		dst      *string
	}{
		{[]string{"customer", "company"}, &meta.CustomerName},
		{[]string{"job name", "project name", "job"}, &meta.JobName},
		{[]string{"solution architect", "architect", "sa"}, &meta.SolutionArchitect},
		{[]string{"date"}, &meta.Date},
		{[]string{"city", "location"}, &meta.CityState},
	}

	maxRow := len(rows)
	if maxRow > metaScanRows {
		maxRow = metaScanRows
	}
	for r := 0; r < maxRow; r++ {
		for c := 0; c < metaScanCols; c++ {
			cell := cellAt(rows, r, c)
			if cell == "" {
				continue
			}
			if meta.OppNumber == "" {
				if m := oppPattern.FindString(cell); m != "" {
					meta.OppNumber = m
				}
			}
			label := strings.TrimSuffix(NormalizeHeader(cell), ":")
			for _, lf := range labelFields {
				if *lf.dst != "" {
					continue
				}
				if !matchesLabel(label, lf.keywords) {
					continue
				}
				if val := strings.TrimSpace(cellAt(rows, r, c+1)); val != "" {
					*lf.dst = val
				}
			}
		}
	}
	return meta
}

// matchesLabel reports whether a normalized, colon-stripped label cell
// names one of the keywords. Short keywords ("sa", "job", "date") must
// match exactly to avoid tripping on unrelated headers; longer ones
// match as prefixes so "Customer Name" still hits "customer".
func matchesLabel(label string, keywords []string) bool {
	for _, kw := range keywords {
		if label == kw {
			return true
		}
		if len(kw) >= 4 && strings.HasPrefix(label, kw) {
			return true
		}
	}
	return false
}

// cellAt returns the cell at (row, col) or "" when out of range or the
// column is NoColumn. GetRows returns ragged rows, so short rows are
// common.
func cellAt(rows [][]string, row, col int) string {
	if col == models.NoColumn || row < 0 || row >= len(rows) {
		return ""
	}
	if col < 0 || col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}

// BuildScopeText renders items as the bullet list used to seed the
// SCOPE variable: "• {qty}x {description} ({part})" per line.
func BuildScopeText(items []models.LineItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		line := fmt.Sprintf("• %gx %s", item.Quantity, item.Description)
		if item.PartNumber != "" {
			line += fmt.Sprintf(" (%s)", item.PartNumber)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
