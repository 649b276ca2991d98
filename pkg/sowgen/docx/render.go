package docx

import (
	"regexp"
	"strings"
)

var (
	placeholderPattern = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)

	customXMLOverride = regexp.MustCompile(`<Override[^>]+PartName="/customXml/[^"]*"[^>]*/>`)
	customXMLRel      = regexp.MustCompile(`<Relationship[^>]+Target="[^"]*customXml[^"]*"[^>]*/>`)

	runPattern     = regexp.MustCompile(`(?s)<w:r\b[^>]*>.*?</w:r>`)
	runTextPattern = regexp.MustCompile(`(?s)<w:t[^>]*>(.*?)</w:t>`)
	boldPattern    = regexp.MustCompile(`<w:b(?:Cs)?(?:\s[^>]*)?/>`)
)

// Render substitutes {{Field}} placeholders in a .docx template against
// the resolved field map and returns a freshly serialized container.
//
// customXml parts (and their content-type overrides and relationship
// entries) are removed first; stale template metadata there commonly
// aborts rendering in Word. Unresolved placeholders render as empty
// string so partially-filled projects still produce a document. When
// the template has no word/document.xml at all the original buffer is
// returned unchanged so downstream appendix stages can still run.
func Render(template []byte, fields map[string]string) ([]byte, error) {
	a, err := openArchive(template)
	if err != nil {
		return nil, err
	}

	stripCustomXML(a)

	doc, ok := a.part(documentPart)
	if !ok {
		return template, nil
	}

	xml := substitute(string(doc), fields)
	xml = stripBoldRuns(xml, multilineValues(fields))
	a.setPart(documentPart, []byte(xml))

	return a.bytes()
}

// substitute resolves mustache-style placeholders. Values are escaped;
// embedded newlines become explicit <w:br/> run breaks so multi-line
// values survive inside a single run.
func substitute(xml string, fields map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(xml, func(m string) string {
		key := strings.TrimSpace(strings.Trim(m, "{}"))
		value, ok := fields[key]
		if !ok {
			return ""
		}
		if !strings.Contains(value, "\n") {
			return EscapeXML(value)
		}
		lines := strings.Split(value, "\n")
		for i, line := range lines {
			lines[i] = EscapeXML(line)
		}
		return strings.Join(lines, `</w:t><w:br/><w:t xml:space="preserve">`)
	})
}

// stripCustomXML drops every customXml/ part together with its
// content-type override and relationship entries.
func stripCustomXML(a *archive) {
	for _, name := range append([]string(nil), a.names...) {
		if strings.HasPrefix(name, "customXml/") {
			a.removePart(name)
		}
	}
	if ct, ok := a.part(contentTypesPart); ok {
		a.setPart(contentTypesPart, customXMLOverride.ReplaceAll(ct, nil))
	}
	for _, rels := range []string{documentRelsPart, "_rels/.rels"} {
		if b, ok := a.part(rels); ok {
			a.setPart(rels, customXMLRel.ReplaceAll(b, nil))
		}
	}
}

// stripBoldRuns removes bold styling from any run whose full text
// exactly matches one of the known multi-line field lines. Template
// authors tend to bold the placeholder run itself, which would leave
// every substituted material-list or scope line bold.
func stripBoldRuns(xml string, lines map[string]bool) string {
	if len(lines) == 0 {
		return xml
	}
	return runPattern.ReplaceAllStringFunc(xml, func(run string) string {
		m := runTextPattern.FindStringSubmatch(run)
		if m == nil {
			return run
		}
		text := strings.TrimSpace(unescapeXML(m[1]))
		if !lines[text] {
			return run
		}
		return boldPattern.ReplaceAllString(run, "")
	})
}
