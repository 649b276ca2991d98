package models

// BuilderState is the mutable scope-of-work builder state owned by the
// caller (wizard UI or CLI). The pipeline reads it; only MergeVariables
// style fill-empty updates are ever applied on its behalf.
type BuilderState struct {
	// SectionOrder lists every known section id in render order.
	SectionOrder []string `json:"section_order"`
	// EnabledSections is the subset of ids to render.
	EnabledSections map[string]bool `json:"enabled_sections"`
	// Variables maps variable keys to string values.
	Variables map[string]string `json:"variables"`
	// CustomTemplates maps section ids to replacement body text,
	// looked up before the built-in catalog.
	CustomTemplates map[string]string `json:"custom_templates,omitempty"`
	// CustomSowText, when non-nil, replaces generated scope text entirely.
	CustomSowText *string `json:"custom_sow_text,omitempty"`
}

// ProjectInfo is the full set of user-editable document fields.
type ProjectInfo struct {
	ProjectName       string `json:"project_name"`
	OppNumber         string `json:"opp_number"`
	ProjectNumber     string `json:"project_number"`
	Date              string `json:"date"`
	CompanyName       string `json:"company_name"`
	CompanyAddress    string `json:"company_address"`
	CityStateZip      string `json:"city_state_zip"`
	CustomerName      string `json:"customer_name"`
	CustomerContact   string `json:"customer_contact"`
	CustomerPhone     string `json:"customer_phone"`
	SolutionArchitect string `json:"solution_architect"`
	Scope             string `json:"scope"`
	Notes             string `json:"notes"`
	Workdays          string `json:"workdays"`
}

// Merged returns a copy of info with non-empty override fields applied.
func (info ProjectInfo) Merged(overrides ProjectInfo) ProjectInfo {
	out := info
	apply := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	apply(&out.ProjectName, overrides.ProjectName)
	apply(&out.OppNumber, overrides.OppNumber)
	apply(&out.ProjectNumber, overrides.ProjectNumber)
	apply(&out.Date, overrides.Date)
	apply(&out.CompanyName, overrides.CompanyName)
	apply(&out.CompanyAddress, overrides.CompanyAddress)
	apply(&out.CityStateZip, overrides.CityStateZip)
	apply(&out.CustomerName, overrides.CustomerName)
	apply(&out.CustomerContact, overrides.CustomerContact)
	apply(&out.CustomerPhone, overrides.CustomerPhone)
	apply(&out.SolutionArchitect, overrides.SolutionArchitect)
	apply(&out.Scope, overrides.Scope)
	apply(&out.Notes, overrides.Notes)
	apply(&out.Workdays, overrides.Workdays)
	return out
}
