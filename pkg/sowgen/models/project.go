package models

// ProjectMeta holds project fields discoverable in a spreadsheet header
// region. Only fields actually found are populated.
type ProjectMeta struct {
	// OppNumber is the opportunity code (e.g. "OPP-12345").
	OppNumber string `json:"opp_number,omitempty"`
	// CustomerName is the customer company name.
	CustomerName string `json:"customer_name,omitempty"`
	// JobName is the job/project name.
	JobName string `json:"job_name,omitempty"`
	// SolutionArchitect is the assigned solution architect.
	SolutionArchitect string `json:"solution_architect,omitempty"`
	// Date is the quote/project date as written in the sheet.
	Date string `json:"date,omitempty"`
	// CityState is the site city/state line.
	CityState string `json:"city_state,omitempty"`
}

// FillFrom copies fields from other into m where m's field is still
// empty. Existing non-empty values are never overwritten, so values
// found by earlier, higher-priority sheets (or supplied by the user)
// always win.
func (m *ProjectMeta) FillFrom(other ProjectMeta) {
	if m.OppNumber == "" {
		m.OppNumber = other.OppNumber
	}
	if m.CustomerName == "" {
		m.CustomerName = other.CustomerName
	}
	if m.JobName == "" {
		m.JobName = other.JobName
	}
	if m.SolutionArchitect == "" {
		m.SolutionArchitect = other.SolutionArchitect
	}
	if m.Date == "" {
		m.Date = other.Date
	}
	if m.CityState == "" {
		m.CityState = other.CityState
	}
}

// Empty reports whether no field was found.
func (m ProjectMeta) Empty() bool {
	return m == ProjectMeta{}
}
