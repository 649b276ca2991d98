package docx

import (
	"testing"

	"github.com/hts-tools/sowgen-go/pkg/sowgen/models"
)

func TestBuildFieldMapAliasCoherence(t *testing.T) {
	fields := BuildFieldMap(models.ProjectInfo{
		ProjectName:       "HQ Camera Refresh",
		OppNumber:         "OPP-48213",
		SolutionArchitect: "J. Rivera",
		Workdays:          "21",
	}, models.ProjectInfo{})

	aliasGroups := [][]string{
		{"Project_Name", "Project Name", "project_name"},
		{"OPP_Number", "OPP Number", "opp_number"},
		{"SOLUTION_ARCHITECT", "Solution_Architect", "solution_architect"},
		{"Workdays", "workdays", "WORKDAYS"},
		{"Workdays_Words", "WORKDAYS_WORDS", "workdays_words"},
	}
	for _, group := range aliasGroups {
		want, ok := fields[group[0]]
		if !ok {
			t.Errorf("alias %s missing from field map", group[0])
			continue
		}
		for _, name := range group[1:] {
			if got, ok := fields[name]; !ok || got != want {
				t.Errorf("alias %s = %q, expected %q (same value as %s)", name, got, want, group[0])
			}
		}
	}

	if fields["Workdays_Words"] != "twenty-one" {
		t.Errorf("Workdays_Words = %q, expected twenty-one", fields["Workdays_Words"])
	}
}

func TestBuildFieldMapOverrides(t *testing.T) {
	fields := BuildFieldMap(
		models.ProjectInfo{ProjectName: "From BOM", CustomerName: "Acme"},
		models.ProjectInfo{ProjectName: "Override"},
	)
	if fields["Project_Name"] != "Override" {
		t.Errorf("Project_Name = %q, override should win", fields["Project_Name"])
	}
	if fields["Customer_Name"] != "Acme" {
		t.Errorf("Customer_Name = %q, unset override should not clear", fields["Customer_Name"])
	}
}

func TestCompactMultiline(t *testing.T) {
	in := "first line  \n\n  second line\t\r\n\n"
	want := "first line\n  second line"
	if got := CompactMultiline(in); got != want {
		t.Errorf("CompactMultiline = %q, want %q", got, want)
	}
}

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "one"},
		{10, "ten"},
		{14, "fourteen"},
		{20, "twenty"},
		{21, "twenty-one"},
		{99, "ninety-nine"},
		{100, "one hundred"},
		{115, "one hundred fifteen"},
		{342, "three hundred forty-two"},
		{1000, "1000"},
	}
	for _, tt := range tests {
		if got := numberToWords(tt.n); got != tt.want {
			t.Errorf("numberToWords(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSpellNumber(t *testing.T) {
	if got := spellNumber("0"); got != "zero" {
		t.Errorf("spellNumber(0) = %q", got)
	}
	if got := spellNumber("ten to twelve"); got != "ten to twelve" {
		t.Errorf("non-numeric value should pass through: %q", got)
	}
	if got := spellNumber(""); got != "" {
		t.Errorf("empty value should stay empty: %q", got)
	}
}
