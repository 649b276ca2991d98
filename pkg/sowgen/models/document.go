package models

// DocumentType identifies which SOW variant a template produces.
type DocumentType string

const (
	// DocCustomer is the customer-facing scope of work.
	DocCustomer DocumentType = "SOW_Customer"
	// DocSubQuoting is the subcontractor quoting variant.
	DocSubQuoting DocumentType = "SOW_SUB_Quoting"
	// DocSubProject is the subcontractor project variant.
	DocSubProject DocumentType = "SOW_SUB_Project"
)

// DocxMIME is the MIME type handed to the export collaborator.
const DocxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DocumentTypes lists all variants in generation order.
func DocumentTypes() []DocumentType {
	return []DocumentType{DocCustomer, DocSubQuoting, DocSubProject}
}
