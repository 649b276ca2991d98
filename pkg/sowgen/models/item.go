// Package models defines data structures shared across the SOW generation pipeline.
package models

// LineItem represents a single material line parsed from a BOM spreadsheet.
type LineItem struct {
	// Description is the item description (non-empty, trimmed).
	Description string `json:"description"`
	// Quantity is the item quantity (0 when the cell was blank or unparseable).
	Quantity float64 `json:"quantity"`
	// PartNumber is the manufacturer part number, empty when absent.
	PartNumber string `json:"part_number,omitempty"`
	// Vendor is the vendor/brand name, empty when absent.
	Vendor string `json:"vendor,omitempty"`
	// UnitPrice is the per-unit price (nil when absent).
	UnitPrice *float64 `json:"unit_price,omitempty"`
	// TotalPrice is the extended line price (nil when absent).
	TotalPrice *float64 `json:"total_price,omitempty"`
}
