package docx

import (
	"strconv"
	"strings"

	"github.com/hts-tools/sowgen-go/pkg/sowgen/models"
)

// BuildFieldMap resolves every recognized placeholder spelling to its
// current value. Old templates keep resolving: each logical field keeps
// all of its historical alias spellings, and every alias of the same
// field maps to the identical value. Multi-line fields are compacted
// (per-line trailing whitespace and blank lines removed) and the
// workday count additionally gets a spelled-out words form.
func BuildFieldMap(info, overrides models.ProjectInfo) map[string]string {
	merged := info.Merged(overrides)
	fields := make(map[string]string)

	alias := func(value string, names ...string) {
		for _, name := range names {
			fields[name] = value
		}
	}

	alias(merged.ProjectName, "Project_Name", "Project Name", "project_name")
	alias(merged.OppNumber, "OPP_Number", "OPP Number", "opp_number")
	alias(merged.ProjectNumber, "Project_Number", "Project Number", "project_number")
	alias(merged.Date, "Date", "date")
	alias(merged.CompanyName, "Company_Name", "Company Name", "company_name")
	alias(merged.CompanyAddress, "Company_Address", "Company Address", "company_address")
	alias(merged.CityStateZip, "City_State_Zip", "City State Zip", "city_state_zip")
	alias(merged.CustomerName, "Customer_Name", "Customer Name", "customer_name")
	alias(merged.CustomerContact, "Customer_Contact", "Customer Contact", "customer_contact")
	alias(merged.CustomerPhone, "Customer_Phone", "Customer Phone", "customer_phone")
	alias(merged.SolutionArchitect, "SOLUTION_ARCHITECT", "Solution_Architect", "solution_architect")
	alias(CompactMultiline(merged.Scope), "SCOPE", "Scope", "scope")
	alias(CompactMultiline(merged.Notes), "Notes", "NOTES", "notes")
	alias(merged.Workdays, "Workdays", "workdays", "WORKDAYS")
	alias(spellNumber(merged.Workdays), "Workdays_Words", "WORKDAYS_WORDS", "workdays_words")

	return fields
}

// CompactMultiline makes long text fields safe for run substitution:
// trailing whitespace stripped per line, blank lines removed.
func CompactMultiline(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// multilineValues collects the distinct lines of every multi-line field
// value. The renderer uses them to undo inherited bold styling on
// substituted lines.
func multilineValues(fields map[string]string) map[string]bool {
	lines := make(map[string]bool)
	for _, value := range fields {
		if !strings.Contains(value, "\n") {
			continue
		}
		for _, line := range strings.Split(value, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines[line] = true
			}
		}
	}
	return lines
}

var onesWords = []string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}
var tensWords = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}

// numberToWords spells a non-negative integer below one thousand;
// anything larger falls back to digits.
func numberToWords(n int) string {
	switch {
	case n < 0:
		return "negative " + numberToWords(-n)
	case n < 20:
		return onesWords[n]
	case n < 100:
		w := tensWords[n/10]
		if n%10 != 0 {
			w += "-" + onesWords[n%10]
		}
		return w
	case n < 1000:
		w := onesWords[n/100] + " hundred"
		if n%100 != 0 {
			w += " " + numberToWords(n%100)
		}
		return w
	default:
		return strconv.Itoa(n)
	}
}

// spellNumber converts a numeric field value to words, passing
// non-numeric values through unchanged.
func spellNumber(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return trimmed
	}
	if n == 0 {
		return "zero"
	}
	return numberToWords(n)
}
