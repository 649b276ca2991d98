package bom

import (
	"testing"

	"github.com/hts-tools/sowgen-go/pkg/sowgen/models"
)

func TestDetectColumns(t *testing.T) {
	rows := [][]string{
		{"Acme Security", "", ""},
		{"", "", ""},
		{"Description", "Qty", "Part #", "Unit Price", "Total"},
		{"Dome Camera X1", "4", "CAM-100", "250", "1000"},
	}

	cm, ok := DetectColumns(rows)
	if !ok {
		t.Fatal("DetectColumns found no header row")
	}
	if cm.HeaderRow != 2 {
		t.Errorf("HeaderRow = %d, expected 2", cm.HeaderRow)
	}
	if cm.Description != 0 || cm.Quantity != 1 || cm.PartNumber != 2 || cm.UnitPrice != 3 || cm.TotalPrice != 4 {
		t.Errorf("unexpected column map: %+v", cm)
	}
}

func TestDetectColumnsTwoMatchTieBreak(t *testing.T) {
	// No description keyword, but two distinct field matches qualify.
	rows := [][]string{
		{"Qty", "SKU"},
		{"4", "CAM-100"},
	}
	cm, ok := DetectColumns(rows)
	if !ok {
		t.Fatal("expected two-field row to qualify as header")
	}
	if cm.Quantity != 0 || cm.PartNumber != 1 {
		t.Errorf("unexpected column map: %+v", cm)
	}
	if cm.Description != models.NoColumn {
		t.Errorf("Description = %d, expected NoColumn", cm.Description)
	}
}

func TestDetectColumnsSingleStrayMatch(t *testing.T) {
	// A lone "total"-looking cell must not be taken for a header row.
	rows := [][]string{
		{"Total", ""},
		{"1200", ""},
	}
	if _, ok := DetectColumns(rows); ok {
		t.Error("single non-description match should not qualify as a header row")
	}
}

func TestDetectColumnsScanWindow(t *testing.T) {
	rows := make([][]string, headerScanLimit+5)
	for i := range rows {
		rows[i] = []string{"", ""}
	}
	rows[headerScanLimit+2] = []string{"Description", "Qty"}

	if _, ok := DetectColumns(rows); ok {
		t.Error("header beyond the scan window should not be found")
	}
}

func TestDetectColumnsHeaderPrecedesData(t *testing.T) {
	rows := [][]string{
		{"Material", "Amount"},
		{"Cable", "2"},
	}
	cm, ok := DetectColumns(rows)
	if !ok {
		t.Fatal("DetectColumns found no header row")
	}
	if cm.HeaderRow >= 1 {
		t.Errorf("HeaderRow = %d, must precede first data row", cm.HeaderRow)
	}
}
