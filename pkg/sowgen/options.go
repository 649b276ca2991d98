// Package sowgen turns a Bill-of-Materials spreadsheet into filled-in
// Word Scope-of-Work documents. ParseBOM extracts line items and
// project metadata from a workbook buffer; GenerateDocument renders a
// .docx template against a resolved field map and applies the
// configured appendix pipeline.
package sowgen

import (
	"go.uber.org/zap"

	"github.com/hts-tools/sowgen-go/pkg/sowgen/sow"
)

// AppendixFile is a user-supplied appendix source; the extension of
// Name selects the transform (docx merge, image embed, or pass-through
// for unsupported formats).
type AppendixFile struct {
	Name string
	Data []byte
}

// Options configures document generation. The zero value renders the
// template with no appendices and no logging.
type Options struct {
	// Logger receives pipeline progress and degradation warnings.
	// Nil means no logging.
	Logger *zap.Logger

	// Vertical selects a site-requirements appendix by vertical code
	// (e.g. "K12"); empty skips the page.
	Vertical string
	// VerticalOverrides layer deployment-specific note text over the
	// built-in vertical catalog.
	VerticalOverrides map[string]sow.VerticalEntry

	// LiftRequired adds the lift/equipment requirements page.
	LiftRequired bool
	// LiftHeight is the install height in feet, as entered.
	LiftHeight string
	// LiftEnvironment is "indoor", "outdoor", or empty.
	LiftEnvironment string

	// Appendix is an optional generic appendix file.
	Appendix *AppendixFile

	// HardwareSchedule is an optional second spreadsheet rendered as a
	// bordered table appendix.
	HardwareSchedule []byte

	// ProgrammingNotes is free text appended as its own page when
	// non-blank.
	ProgrammingNotes string
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
