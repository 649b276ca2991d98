package docx

import "strings"

const (
	documentPart     = "word/document.xml"
	documentRelsPart = "word/_rels/document.xml.rels"
	contentTypesPart = "[Content_Types].xml"

	bodyClose          = "</w:body>"
	relationshipsClose = "</Relationships>"
	typesClose         = "</Types>"

	imageRelType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"

	// pageBreakXML starts every appendix on a fresh page.
	pageBreakXML = `<w:p><w:r><w:br w:type="page"/></w:r></w:p>`
)

// EscapeXML escapes user content for embedding in OOXML text runs.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}

// unescapeXML reverses EscapeXML plus the apostrophe entity, for
// comparing run text against plain field values.
func unescapeXML(s string) string {
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&apos;", "'")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

// insertBeforeBodyClose splices fragment immediately before the last
// </w:body> of xml. Every appendix transform shares this one seam:
// later pipeline stages search for the same anchor and therefore always
// land after everything inserted so far. Returns false when the anchor
// is missing, in which case the caller must no-op.
func insertBeforeBodyClose(xml, fragment string) (string, bool) {
	idx := strings.LastIndex(xml, bodyClose)
	if idx < 0 {
		return xml, false
	}
	return xml[:idx] + fragment + xml[idx:], true
}
