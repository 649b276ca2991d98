package sow

// VerticalEntry holds the site-requirement notes for one customer
// vertical, rendered as an appendix page.
type VerticalEntry struct {
	// Title is the vertical heading on the appendix page.
	Title string `json:"title" yaml:"title"`
	// Bullets are the note lines.
	Bullets []string `json:"bullets" yaml:"bullets"`
}

// DefaultVerticalNotes is the built-in vertical catalog, keyed by
// vertical code. Deployments may layer overrides on top via config.
var DefaultVerticalNotes = map[string]VerticalEntry{
	"K12": {
		Title: "K-12 / SCHOOL CAMPUSES",
		Bullets: []string{
			"Comply with district badging and background check requirements before starting work.",
			"Coordinate work to avoid instructional disruption; comply with bell/testing schedules and restricted areas.",
			"No photos/video of students; protect privacy.",
			"Tools/materials secured at all times; do not leave ladders/tools unattended in occupied areas.",
			"Maintain safe egress; do not block corridors/exits or prop doors.",
			"Replace/secure ceiling tiles same-day where possible.",
		},
	},
	"HEW": {
		Title: "HIGHER EDUCATION / UNIVERSITY",
		Bullets: []string{
			"Coordinate access/escort rules and after-hours work with campus facilities/security.",
			"Observe campus access requirements for elevated work, ceiling access, and restricted areas when applicable.",
			"Use signage/barricades where needed in high-traffic areas.",
			"Coordinate network cutovers/testing with campus IT change windows.",
		},
	},
	"MED": {
		Title: "HEALTHCARE / CLINICS / HOSPITALS",
		Bullets: []string{
			"Follow facility dust-control and cleanliness requirements as directed by site rules.",
			"Coordinate to avoid patient-care disruption; observe restricted zones and quiet hours where applicable.",
			"Do not capture patient information in photos; comply with facility confidentiality rules.",
			"Remove debris daily; restore ceiling tiles immediately when required by facility.",
		},
	},
	"BIZ": {
		Title: "COMMERCIAL BUSINESS",
		Bullets: []string{
			"Coordinate daily start/stop, access, staging, and work areas with the site Point of Contact; minimize disruption to normal operations.",
			"In public or high-traffic areas, control the work zone with signage/barricades as required by site rules; keep pathways clear and safe.",
			"Coordinate with site operations for loading zones, equipment traffic (including powered equipment routes), and restricted areas; do not obstruct operational lanes.",
		},
	},
	"GOV": {
		Title: "GOVERNMENT / PUBLIC SAFETY / SECURE SITES",
		Bullets: []string{
			"Comply with access/badging/escort rules and restricted-area requirements.",
			"Follow facility rules on devices, photography, and secure areas.",
			"Escalate any scope questions/field changes to HTS PM before action.",
			"Handle devices/media per HTS direction where chain-of-custody is required.",
		},
	},
}

// VerticalNotes returns the effective notes for a vertical code:
// override first, then the built-in catalog.
func VerticalNotes(vertical string, overrides map[string]VerticalEntry) (VerticalEntry, bool) {
	if entry, ok := overrides[vertical]; ok {
		return entry, true
	}
	entry, ok := DefaultVerticalNotes[vertical]
	return entry, ok
}
