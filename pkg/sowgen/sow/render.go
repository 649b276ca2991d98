package sow

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// renderedLine is one body line after substitution. Lines that saw an
// empty, zero, or unknown placeholder are flagged and later dropped, so
// optional clauses disappear instead of rendering an awkward blank
// count.
type renderedLine struct {
	text       string
	unresolved bool
}

// GenerateText renders the enabled sections, in sectionOrder sequence,
// into numbered narrative text. For each section the custom override
// body is used when present, else the catalog body. Placeholders
// substitute their trimmed variable value; a placeholder whose value is
// empty or "0" (or that has no variable at all) marks its whole line
// for removal. Surviving non-blank lines are indented under the
// "N. Title" heading; sections are joined by a blank line.
//
// Output is deterministic for identical inputs, but the result is not
// valid template input itself: re-rendering rendered text would not
// reproduce it.
func GenerateText(sectionOrder []string, enabled map[string]bool, variables map[string]string, customTemplates map[string]string) string {
	var parts []string
	num := 0
	for _, id := range sectionOrder {
		if !enabled[id] {
			continue
		}
		tmpl, ok := SectionByID(id)
		if !ok {
			continue
		}
		num++

		body := tmpl.Body
		if custom, ok := customTemplates[id]; ok && custom != "" {
			body = custom
		}

		var kept []string
		for _, line := range substituteLines(body, variables) {
			if line.unresolved {
				continue
			}
			if strings.TrimSpace(line.text) == "" {
				kept = append(kept, "")
				continue
			}
			kept = append(kept, "    "+line.text)
		}

		parts = append(parts, fmt.Sprintf("%d. %s\n\n%s", num, tmpl.Title, strings.Join(kept, "\n")))
	}
	return strings.Join(parts, "\n\n")
}

// substituteLines resolves placeholders line by line, flagging lines
// whose placeholder resolved empty/zero.
func substituteLines(body string, variables map[string]string) []renderedLine {
	raw := strings.Split(body, "\n")
	out := make([]renderedLine, 0, len(raw))
	for _, line := range raw {
		rl := renderedLine{}
		rl.text = placeholderPattern.ReplaceAllStringFunc(line, func(m string) string {
			key := strings.Trim(m, "{}")
			val := strings.TrimSpace(variables[key])
			if val == "" || val == "0" {
				rl.unresolved = true
				return ""
			}
			return val
		})
		out = append(out, rl)
	}
	return out
}
