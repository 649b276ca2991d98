package models

// NoColumn marks a logical field with no matching column in the sheet.
const NoColumn = -1

// ColumnMap maps logical BOM fields to zero-based column indices for one sheet.
type ColumnMap struct {
	// Description is the description column index (NoColumn if absent).
	Description int `json:"description"`
	// Quantity is the quantity column index (NoColumn if absent).
	Quantity int `json:"quantity"`
	// PartNumber is the part-number column index (NoColumn if absent).
	PartNumber int `json:"part_number"`
	// UnitPrice is the unit-price column index (NoColumn if absent).
	UnitPrice int `json:"unit_price"`
	// TotalPrice is the total-price column index (NoColumn if absent).
	TotalPrice int `json:"total_price"`
	// Vendor is the vendor/manufacturer column index (NoColumn if absent).
	Vendor int `json:"vendor"`
	// HeaderRow is the zero-based row where the header was found.
	// Always less than the first data row consumed.
	HeaderRow int `json:"header_row"`
}
