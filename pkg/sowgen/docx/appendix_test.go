package docx

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestAppendNotes(t *testing.T) {
	doc := buildDocx(t, wrapBody(`<w:p><w:r><w:t>base</w:t></w:r></w:p>`))

	out, err := AppendNotes(doc, "Appendix — Site Requirements", "K-12 / SCHOOL CAMPUSES",
		[]string{"No photos/video of students; protect privacy.", ""})
	if err != nil {
		t.Fatalf("AppendNotes failed: %v", err)
	}

	xml := readPart(t, out, documentPart)
	if !strings.Contains(xml, `<w:br w:type="page"/>`) {
		t.Error("appendix should start with a page break")
	}
	if !strings.Contains(xml, "Appendix — Site Requirements") {
		t.Error("heading missing")
	}
	if !strings.Contains(xml, "K-12 / SCHOOL CAMPUSES") {
		t.Error("subtitle missing")
	}
	if !strings.Contains(xml, "•  No photos/video of students; protect privacy.") {
		t.Error("bullet line missing")
	}
	if idx := strings.Index(xml, "Appendix"); idx < strings.Index(xml, "base") {
		t.Error("appendix must come after the existing body content")
	}
}

func TestAppendNotesNoAnchorIsByteIdenticalNoOp(t *testing.T) {
	// document.xml without a closing body tag.
	doc := buildDocx(t, `<w:document><w:p/></w:document>`)

	out, err := AppendNotes(doc, "Appendix", "", []string{"line"})
	if !errors.Is(err, ErrNoBodyAnchor) {
		t.Fatalf("expected ErrNoBodyAnchor, got %v", err)
	}
	if !bytes.Equal(out, doc) {
		t.Error("failing appendix must return byte-identical input")
	}
}

func TestAppendImage(t *testing.T) {
	doc := buildDocx(t, wrapBody(`<w:p><w:r><w:t>base</w:t></w:r></w:p>`))
	img := []byte{0x89, 'P', 'N', 'G'}

	out, err := AppendImage(doc, img, "png")
	if err != nil {
		t.Fatalf("AppendImage failed: %v", err)
	}

	a, err := openArchive(out)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	media, ok := a.part("word/media/appendix_image.png")
	if !ok {
		t.Fatal("media part missing")
	}
	if !bytes.Equal(media, img) {
		t.Error("media bytes do not round-trip")
	}

	ct := readPart(t, out, contentTypesPart)
	if !strings.Contains(ct, "/word/media/appendix_image.png") {
		t.Error("content-type override missing")
	}
	rels := readPart(t, out, documentRelsPart)
	if !strings.Contains(rels, "rIdAppendixImage") {
		t.Error("image relationship missing")
	}
	xml := readPart(t, out, documentPart)
	if !strings.Contains(xml, `r:embed="rIdAppendixImage"`) {
		t.Error("drawing reference missing")
	}
	if !strings.Contains(xml, `<w:jc w:val="center"/>`) {
		t.Error("image paragraph should be centered")
	}
}

func TestAppendDocumentMergesBody(t *testing.T) {
	host := buildDocx(t, wrapBody(`<w:p><w:r><w:t>host</w:t></w:r></w:p>`))
	appendix := buildDocx(t, wrapBody(
		`<w:p><w:r><w:t>appendix text</w:t></w:r></w:p><w:sectPr><w:pgSz w:w="12240"/></w:sectPr>`))

	out, err := AppendDocument(host, appendix)
	if err != nil {
		t.Fatalf("AppendDocument failed: %v", err)
	}

	xml := readPart(t, out, documentPart)
	if !strings.Contains(xml, "appendix text") {
		t.Error("appendix body missing from host")
	}
	if strings.Count(xml, "<w:sectPr") != 0 {
		t.Error("appendix sectPr should be stripped")
	}
	if !strings.Contains(xml, `<w:br w:type="page"/>`) {
		t.Error("page break missing before merged body")
	}
}

func TestAppendDocumentRemapsImageRelationships(t *testing.T) {
	host := buildDocx(t, wrapBody(`<w:p/>`))

	appendix := buildDocxWithRels(t,
		wrapBody(`<w:p><w:r><w:drawing><a:blip r:embed="rId4"/></w:drawing></w:r></w:p>`),
		`<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.png"/></Relationships>`,
		[2]string{"word/media/image1.png", "PNGDATA"})

	out, err := AppendDocument(host, appendix)
	if err != nil {
		t.Fatalf("AppendDocument failed: %v", err)
	}

	xml := readPart(t, out, documentPart)
	if !strings.Contains(xml, `r:embed="rId900"`) {
		t.Errorf("image relationship id not remapped:\n%s", xml)
	}
	rels := readPart(t, out, documentRelsPart)
	if !strings.Contains(rels, `Id="rId900"`) {
		t.Error("remapped relationship missing from host rels")
	}
	if got := readPart(t, out, "word/media/image1.png"); got != "PNGDATA" {
		t.Error("appendix media not copied into host")
	}
}

// buildDocxWithRels is buildDocx with a custom document rels part.
func buildDocxWithRels(t *testing.T, documentXML, relsXML string, extra ...[2]string) []byte {
	t.Helper()
	base := buildDocx(t, documentXML, extra...)
	a, err := openArchive(base)
	if err != nil {
		t.Fatalf("reopen fixture: %v", err)
	}
	a.setPart(documentRelsPart, []byte(relsXML))
	out, err := a.bytes()
	if err != nil {
		t.Fatalf("serialize fixture: %v", err)
	}
	return out
}

func TestAppendFileUnsupportedFormatPassesThrough(t *testing.T) {
	doc := buildDocx(t, wrapBody(`<w:p/>`))

	out, err := AppendFile(doc, "notes.pdf", []byte("%PDF-1.7"))
	if err != nil {
		t.Fatalf("unsupported format must not error: %v", err)
	}
	if !bytes.Equal(out, doc) {
		t.Error("unsupported format should return the original unchanged")
	}
}

func TestAppendFileDispatch(t *testing.T) {
	doc := buildDocx(t, wrapBody(`<w:p/>`))

	out, err := AppendFile(doc, "photo.JPG", []byte("jpegdata"))
	if err != nil {
		t.Fatalf("AppendFile failed: %v", err)
	}
	if _, ok := mustArchive(t, out).part("word/media/appendix_image.jpg"); !ok {
		t.Error("image dispatch did not embed media")
	}
}

func mustArchive(t *testing.T, data []byte) *archive {
	t.Helper()
	a, err := openArchive(data)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	return a
}
