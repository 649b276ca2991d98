package docx

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Appendix composition errors. A non-nil error from any composer means
// the transform was not applied; the returned blob is always usable
// (the input when the transform failed), so appendix failures are never
// fatal to the base document.
var (
	ErrNoDocumentPart = errors.New("docx has no word/document.xml part")
	ErrNoBodyAnchor   = errors.New("docx body close anchor not found")
)

// appendixRelIDBase is where remapped relationship ids for merged
// documents start counting; high enough to clear any host document.
const appendixRelIDBase = 900

var imageRelPattern = regexp.MustCompile(`Id="(rId\d+)"[^>]+Type="[^"]*/image"[^>]+Target="([^"]+)"`)

// AppendNotes appends a page break, a bold heading, an optional bold
// subtitle, and one small-type paragraph per line. Backs the vertical
// site-requirement, lift/equipment, and programming-notes appendix
// pages.
func AppendNotes(doc []byte, title, subtitle string, lines []string) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(pageBreakXML)
	sb.WriteString(`<w:p><w:pPr><w:spacing w:after="120"/></w:pPr><w:r><w:rPr><w:b/><w:sz w:val="28"/><w:szCs w:val="28"/></w:rPr><w:t>`)
	sb.WriteString(EscapeXML(title))
	sb.WriteString(`</w:t></w:r></w:p>`)
	if subtitle != "" {
		sb.WriteString(`<w:p><w:pPr><w:spacing w:after="100"/></w:pPr><w:r><w:rPr><w:b/><w:sz w:val="22"/><w:szCs w:val="22"/></w:rPr><w:t>`)
		sb.WriteString(EscapeXML(subtitle))
		sb.WriteString(`</w:t></w:r></w:p>`)
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sb.WriteString(`<w:p><w:pPr><w:ind w:left="360"/><w:spacing w:after="60"/></w:pPr><w:r><w:rPr><w:sz w:val="20"/><w:szCs w:val="20"/></w:rPr><w:t xml:space="preserve">•  `)
		sb.WriteString(EscapeXML(line))
		sb.WriteString(`</w:t></w:r></w:p>`)
	}
	return spliceIntoBody(doc, sb.String())
}

// AppendImage embeds img as a new media part and inserts a centered,
// page-sized inline drawing after a page break. ext selects the
// content type (png/jpg/jpeg/gif/webp; anything else stored as png).
func AppendImage(doc, img []byte, ext string) ([]byte, error) {
	a, err := openArchive(doc)
	if err != nil {
		return doc, err
	}
	docXML, ok := a.part(documentPart)
	if !ok {
		return doc, ErrNoDocumentPart
	}

	contentType := map[string]string{
		"png": "image/png", "jpg": "image/jpeg", "jpeg": "image/jpeg",
		"gif": "image/gif", "webp": "image/webp",
	}[ext]
	if contentType == "" {
		contentType = "image/png"
	}
	mediaName := "appendix_image." + ext
	a.setPart("word/media/"+mediaName, img)

	partName := "/word/media/" + mediaName
	if ct, ok := a.part(contentTypesPart); ok && !strings.Contains(string(ct), partName) {
		override := fmt.Sprintf(`<Override PartName="%s" ContentType="%s"/>`, partName, contentType)
		a.setPart(contentTypesPart, []byte(strings.Replace(string(ct), typesClose, override+typesClose, 1)))
	}

	const relID = "rIdAppendixImage"
	if rels, ok := a.part(documentRelsPart); ok && !strings.Contains(string(rels), relID) {
		rel := fmt.Sprintf(`<Relationship Id="%s" Type="%s" Target="media/%s"/>`, relID, imageRelType, mediaName)
		a.setPart(documentRelsPart, []byte(strings.Replace(string(rels), relationshipsClose, rel+relationshipsClose, 1)))
	}

	// ~6.5in x ~8.7in in EMU, sized to fill the printable page area.
	const cx, cy = 5943600, 7943600
	drawing := fmt.Sprintf(pageBreakXML+
		`<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr/><w:drawing>`+
		`<wp:inline distT="0" distB="0" distL="0" distR="0" xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing">`+
		`<wp:extent cx="%[1]d" cy="%[2]d"/><wp:effectExtent l="0" t="0" r="0" b="0"/>`+
		`<wp:docPr id="1" name="AppendixImage"/><wp:cNvGraphicFramePr/>`+
		`<a:graphic xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">`+
		`<a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
		`<pic:pic xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
		`<pic:nvPicPr><pic:cNvPr id="0" name="AppendixImage"/><pic:cNvPicPr/></pic:nvPicPr>`+
		`<pic:blipFill><a:blip r:embed="%[3]s" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`+
		`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%[1]d" cy="%[2]d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`+
		`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r></w:p>`,
		cx, cy, relID)

	newXML, ok := insertBeforeBodyClose(string(docXML), drawing)
	if !ok {
		return doc, ErrNoBodyAnchor
	}
	a.setPart(documentPart, []byte(newXML))
	return finish(a, doc)
}

var (
	bodyPattern   = regexp.MustCompile(`(?s)<w:body>(.*?)</w:body>`)
	sectPrPattern = regexp.MustCompile(`(?s)<w:sectPr.*?</w:sectPr>`)
)

// AppendDocument merges the body of a second .docx after a page break.
// The appendix's own section properties are stripped so only the host's
// page setup survives; image relationship ids are remapped from a high
// counter and the referenced media copied across.
func AppendDocument(doc, appendix []byte) ([]byte, error) {
	a, err := openArchive(doc)
	if err != nil {
		return doc, err
	}
	b, err := openArchive(appendix)
	if err != nil {
		return doc, fmt.Errorf("open appendix: %w", err)
	}

	hostXML, ok := a.part(documentPart)
	if !ok {
		return doc, ErrNoDocumentPart
	}
	appendXML, ok := b.part(documentPart)
	if !ok {
		return doc, fmt.Errorf("appendix: %w", ErrNoDocumentPart)
	}

	m := bodyPattern.FindSubmatch(appendXML)
	if m == nil {
		return doc, fmt.Errorf("appendix: %w", ErrNoBodyAnchor)
	}
	body := string(sectPrPattern.ReplaceAll(m[1], nil))

	hostRels, _ := a.part(documentRelsPart)
	appendRels, _ := b.part(documentRelsPart)
	rels := string(hostRels)

	nextID := appendixRelIDBase
	for _, match := range imageRelPattern.FindAllStringSubmatch(string(appendRels), -1) {
		oldID, target := match[1], match[2]
		media, ok := b.part("word/" + target)
		if !ok {
			continue
		}
		newID := fmt.Sprintf("rId%d", nextID)
		nextID++

		a.setPart("word/"+target, media)
		rel := fmt.Sprintf(`<Relationship Id="%s" Type="%s" Target="%s"/>`, newID, imageRelType, target)
		rels = strings.Replace(rels, relationshipsClose, rel+relationshipsClose, 1)
		body = strings.ReplaceAll(body, `"`+oldID+`"`, `"`+newID+`"`)
	}
	if rels != string(hostRels) {
		a.setPart(documentRelsPart, []byte(rels))
	}

	newXML, ok := insertBeforeBodyClose(string(hostXML), pageBreakXML+body)
	if !ok {
		return doc, ErrNoBodyAnchor
	}
	a.setPart(documentPart, []byte(newXML))
	return finish(a, doc)
}

// AppendFile dispatches on the appendix filename extension: .docx
// merges, recognized image types embed, and any unsupported format is
// passed through unchanged (documented behavior, not an error).
func AppendFile(doc []byte, filename string, data []byte) ([]byte, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "docx":
		return AppendDocument(doc, data)
	case "png", "jpg", "jpeg", "gif", "webp":
		return AppendImage(doc, data, ext)
	default:
		return doc, nil
	}
}

// spliceIntoBody inserts fragment before the host body close and
// re-serializes, returning the input untouched on any failure.
func spliceIntoBody(doc []byte, fragment string) ([]byte, error) {
	a, err := openArchive(doc)
	if err != nil {
		return doc, err
	}
	docXML, ok := a.part(documentPart)
	if !ok {
		return doc, ErrNoDocumentPart
	}
	newXML, ok := insertBeforeBodyClose(string(docXML), fragment)
	if !ok {
		return doc, ErrNoBodyAnchor
	}
	a.setPart(documentPart, []byte(newXML))
	return finish(a, doc)
}

// finish serializes the archive, falling back to the original blob on a
// write failure so the pipeline always has a document to continue with.
func finish(a *archive, original []byte) ([]byte, error) {
	out, err := a.bytes()
	if err != nil {
		return original, err
	}
	return out, nil
}
