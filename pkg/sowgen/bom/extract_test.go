package bom

import (
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetSheetRow(sheet, "A1", &[]interface{}{"Description", "Qty", "Part #"})
	f.SetSheetRow(sheet, "A2", &[]interface{}{"Dome Camera X1", 4, "CAM-100"})
	f.SetSheetRow(sheet, "A3", &[]interface{}{"Cat6 Cable 1000ft", 2, "CBL-6"})
	f.SetSheetRow(sheet, "A4", &[]interface{}{"Subtotal", "", ""})

	res, err := ExtractWorkbook(f, nil)
	if err != nil {
		t.Fatalf("ExtractWorkbook failed: %v", err)
	}

	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(res.Items), res.Items)
	}
	if res.Items[0].Description != "Dome Camera X1" || res.Items[0].Quantity != 4 {
		t.Errorf("unexpected first item: %+v", res.Items[0])
	}
	if res.Items[0].PartNumber != "CAM-100" {
		t.Errorf("PartNumber = %q, expected CAM-100", res.Items[0].PartNumber)
	}
	if res.Items[1].Description != "Cat6 Cable 1000ft" || res.Items[1].Quantity != 2 {
		t.Errorf("unexpected second item: %+v", res.Items[1])
	}
}

func TestExtractWorkbookSkipsMarkers(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetSheetRow(sheet, "A1", &[]interface{}{"Description", "Qty"})
	f.SetSheetRow(sheet, "A2", &[]interface{}{"undefined", 1})
	f.SetSheetRow(sheet, "A3", &[]interface{}{"SUBTOTAL", ""})
	f.SetSheetRow(sheet, "A4", &[]interface{}{"Grand Total", ""})
	f.SetSheetRow(sheet, "A5", &[]interface{}{"Running total", ""})
	f.SetSheetRow(sheet, "A6", &[]interface{}{"Total station surveying kit, weatherized", 1})
	f.SetSheetRow(sheet, "A7", &[]interface{}{"Bullet Camera", 3})

	res, err := ExtractWorkbook(f, nil)
	if err != nil {
		t.Fatalf("ExtractWorkbook failed: %v", err)
	}

	// The long description containing "total" is a real item; the short
	// ones are markers.
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(res.Items), res.Items)
	}
	for _, item := range res.Items {
		lower := strings.ToLower(item.Description)
		if lower == "subtotal" || lower == "grand total" || lower == "undefined" {
			t.Errorf("marker row leaked into items: %+v", item)
		}
	}
}

func TestExtractWorkbookPicksLongestSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Description", "Qty"})
	f.SetSheetRow("Sheet1", "A2", &[]interface{}{"PTZ Camera", 1})

	f.NewSheet("Materials")
	f.SetSheetRow("Materials", "A1", &[]interface{}{"Description", "Qty"})
	f.SetSheetRow("Materials", "A2", &[]interface{}{"Dome Camera", 4})
	f.SetSheetRow("Materials", "A3", &[]interface{}{"Cat6 Cable", 2})
	f.SetSheetRow("Materials", "A4", &[]interface{}{"PoE Switch", 1})

	res, err := ExtractWorkbook(f, nil)
	if err != nil {
		t.Fatalf("ExtractWorkbook failed: %v", err)
	}
	if res.Sheet != "Materials" {
		t.Errorf("Sheet = %q, expected Materials", res.Sheet)
	}
	if len(res.Items) != 3 {
		t.Errorf("expected 3 items from the longer sheet, got %d", len(res.Items))
	}
}

func TestExtractWorkbookNoItems(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Quarterly revenue summary")

	_, err := ExtractWorkbook(f, nil)
	if !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
	if !strings.Contains(err.Error(), "description") || !strings.Contains(err.Error(), "qty") {
		t.Errorf("error should name the expected header vocabulary: %v", err)
	}
}

func TestExtractWorkbookPositionalFallback(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	// Header-less sheet: first column descriptions, second quantities.
	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"site photos", ""})
	f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Dome Camera", 4})
	f.SetSheetRow("Sheet1", "A3", &[]interface{}{"Cat6 Cable", 2})

	res, err := ExtractWorkbook(f, nil)
	if err != nil {
		t.Fatalf("ExtractWorkbook failed: %v", err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items via positional fallback, got %d: %+v", len(res.Items), res.Items)
	}
	if res.Items[0].Quantity != 4 {
		t.Errorf("Quantity = %v, expected 4", res.Items[0].Quantity)
	}
}

func TestExtractWorkbookVendorColumn(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Description", "Qty", "Manufacturer"})
	f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Dome Camera", 4, "Hanwha"})
	f.SetSheetRow("Sheet1", "A3", &[]interface{}{"Bullet Camera", 2, ""})

	res, err := ExtractWorkbook(f, nil)
	if err != nil {
		t.Fatalf("ExtractWorkbook failed: %v", err)
	}
	if res.Items[0].Vendor != "Hanwha" {
		t.Errorf("Vendor = %q, expected Hanwha", res.Items[0].Vendor)
	}
	if res.Items[1].Vendor != "" {
		t.Errorf("Vendor = %q, expected empty for blank cell", res.Items[1].Vendor)
	}
}

func TestExtractWorkbookMetadata(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Quote OPP-48213")
	f.SetCellValue("Sheet1", "A2", "Customer:")
	f.SetCellValue("Sheet1", "B2", "Acme Corp")
	f.SetCellValue("Sheet1", "A3", "Job Name")
	f.SetCellValue("Sheet1", "B3", "HQ Camera Refresh")
	f.SetCellValue("Sheet1", "A4", "Solution Architect")
	f.SetCellValue("Sheet1", "B4", "J. Rivera")
	f.SetSheetRow("Sheet1", "A8", &[]interface{}{"Description", "Qty"})
	f.SetSheetRow("Sheet1", "A9", &[]interface{}{"Dome Camera", 4})

	res, err := ExtractWorkbook(f, nil)
	if err != nil {
		t.Fatalf("ExtractWorkbook failed: %v", err)
	}
	if res.Meta.OppNumber != "OPP-48213" {
		t.Errorf("OppNumber = %q", res.Meta.OppNumber)
	}
	if res.Meta.CustomerName != "Acme Corp" {
		t.Errorf("CustomerName = %q", res.Meta.CustomerName)
	}
	if res.Meta.JobName != "HQ Camera Refresh" {
		t.Errorf("JobName = %q", res.Meta.JobName)
	}
	if res.Meta.SolutionArchitect != "J. Rivera" {
		t.Errorf("SolutionArchitect = %q", res.Meta.SolutionArchitect)
	}
}
