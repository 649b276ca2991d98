package bom

import (
	"strings"

	"github.com/hts-tools/sowgen-go/pkg/sowgen/models"
)

// headerScanLimit bounds how far down a sheet the header row search
// goes. Real BOM templates keep the material-list header well inside
// the first screenful.
const headerScanLimit = 25

// Synonym substrings per logical field, matched against normalized
// header cells. Order within a set does not matter; matching is
// substring containment.
var (
	descriptionKeywords = []string{"description", "desc", "item", "name", "product", "material"}
	quantityKeywords    = []string{"quantity", "qty", "count", "amount"}
	partNumberKeywords  = []string{"part", "part number", "pn", "sku", "model", "part#"}
	unitPriceKeywords   = []string{"unit price", "price", "unit cost", "cost"}
	totalPriceKeywords  = []string{"total", "total price", "ext price", "extended", "line total"}
	vendorKeywords      = []string{"vendor", "manufacturer", "mfg", "mfr", "brand", "make"}
)

// DetectColumns scans rows from the top for a header row whose cells
// match the known field keyword sets. A row qualifies when it yields a
// description match or at least two distinct field matches; the second
// clause avoids false positives on rows with a single stray
// numeric-looking header. The first qualifying row wins. Returns false
// when no row inside the scan window qualifies, in which case callers
// fall back to positional defaults.
func DetectColumns(rows [][]string) (models.ColumnMap, bool) {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	for r := 0; r < limit; r++ {
		cm := models.ColumnMap{HeaderRow: r}
		cm.Description = findColumn(rows[r], descriptionKeywords)
		cm.Quantity = findColumn(rows[r], quantityKeywords)
		cm.PartNumber = findColumn(rows[r], partNumberKeywords)
		cm.UnitPrice = findColumn(rows[r], unitPriceKeywords)
		cm.TotalPrice = findColumn(rows[r], totalPriceKeywords)
		cm.Vendor = findColumn(rows[r], vendorKeywords)

		matches := 0
		for _, col := range []int{cm.Description, cm.Quantity, cm.PartNumber, cm.UnitPrice, cm.TotalPrice, cm.Vendor} {
			if col != models.NoColumn {
				matches++
			}
		}
		if cm.Description != models.NoColumn || matches >= 2 {
			return cm, true
		}
	}

	return models.ColumnMap{}, false
}

// findColumn returns the index of the first cell whose normalized text
// contains any of the keywords, or NoColumn.
func findColumn(row []string, keywords []string) int {
	for col, cell := range row {
		header := NormalizeHeader(cell)
		if header == "" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(header, kw) {
				return col
			}
		}
	}
	return models.NoColumn
}
