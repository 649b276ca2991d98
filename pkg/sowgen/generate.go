package sowgen

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/hts-tools/sowgen-go/pkg/sowgen/bom"
	"github.com/hts-tools/sowgen-go/pkg/sowgen/docx"
	"github.com/hts-tools/sowgen-go/pkg/sowgen/models"
	"github.com/hts-tools/sowgen-go/pkg/sowgen/sow"
)

// BOMResult is everything extracted from a BOM spreadsheet.
type BOMResult struct {
	// Items is the material list from the best sheet.
	Items []models.LineItem
	// Meta holds project fields found in the header regions.
	Meta models.ProjectMeta
	// Sheet names the worksheet the items came from.
	Sheet string
	// ScopeText is the bullet-list rendering of the items, used to seed
	// the SCOPE variable.
	ScopeText string
}

// ParseBOM extracts line items and project metadata from a spreadsheet
// buffer (xlsx/xlsm/xls as supported by the underlying reader). Returns
// ErrInvalidSpreadsheet for unreadable buffers and ErrNoItems when no
// sheet yields a material list.
func ParseBOM(data []byte, logger *zap.Logger) (*BOMResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpreadsheet, err)
	}
	defer f.Close()

	res, err := bom.ExtractWorkbook(f, logger)
	if err != nil {
		return nil, err
	}
	return &BOMResult{
		Items:     res.Items,
		Meta:      res.Meta,
		Sheet:     res.Sheet,
		ScopeText: bom.BuildScopeText(res.Items),
	}, nil
}

// BuildFields resolves every placeholder alias spelling against the
// merged project info; see docx.BuildFieldMap.
func BuildFields(info, overrides models.ProjectInfo) map[string]string {
	return docx.BuildFieldMap(info, overrides)
}

// ScopeText renders the scope narrative for a builder state: the custom
// replacement text verbatim when set, otherwise the generated section
// text.
func ScopeText(state models.BuilderState) string {
	if state.CustomSowText != nil {
		return *state.CustomSowText
	}
	return sow.GenerateText(state.SectionOrder, state.EnabledSections, state.Variables, state.CustomTemplates)
}

// GenerateDocument renders template against fields, then applies the
// appendix pipeline in fixed order: vertical site notes, lift notes,
// generic appendix file, hardware schedule, programming notes. Each
// appendix stage that fails leaves the prior blob intact and is logged,
// never fatal; only a render failure aborts. The returned blob is
// always freshly allocated, so back-to-back generations from the same
// template never interfere.
func GenerateDocument(template []byte, fields map[string]string, opts Options) ([]byte, error) {
	logger := opts.logger()

	out, err := docx.Render(template, fields)
	if err != nil {
		return nil, &StageError{Stage: "render", Err: err}
	}
	logger.Debug("rendered base document", zap.Int("bytes", len(out)))

	apply := func(stage string, fn func([]byte) ([]byte, error)) {
		next, err := fn(out)
		if err != nil {
			logger.Warn("appendix stage skipped",
				zap.String("stage", stage), zap.Error(err))
			return
		}
		out = next
	}

	if opts.Vertical != "" {
		if entry, ok := sow.VerticalNotes(opts.Vertical, opts.VerticalOverrides); ok {
			apply("vertical notes", func(d []byte) ([]byte, error) {
				return docx.AppendNotes(d, "Appendix — Site Requirements", entry.Title, entry.Bullets)
			})
		} else {
			logger.Warn("unknown vertical code", zap.String("vertical", opts.Vertical))
		}
	}

	if opts.LiftRequired {
		apply("lift notes", func(d []byte) ([]byte, error) {
			return docx.AppendNotes(d, "Appendix — Lift / Equipment Requirements", "", liftBullets(opts))
		})
	}

	if opts.Appendix != nil {
		apply("appendix file", func(d []byte) ([]byte, error) {
			return docx.AppendFile(d, opts.Appendix.Name, opts.Appendix.Data)
		})
	}

	if len(opts.HardwareSchedule) > 0 {
		apply("hardware schedule", func(d []byte) ([]byte, error) {
			return docx.AppendSchedule(d, opts.HardwareSchedule)
		})
	}

	if notes := strings.TrimSpace(opts.ProgrammingNotes); notes != "" {
		apply("programming notes", func(d []byte) ([]byte, error) {
			return docx.AppendNotes(d, "Appendix — Programming Notes", "", strings.Split(notes, "\n"))
		})
	}

	return out, nil
}

func liftBullets(opts Options) []string {
	bullets := []string{"A lift / aerial equipment is required for this project."}
	if h := strings.TrimSpace(opts.LiftHeight); h != "" {
		bullets = append(bullets, fmt.Sprintf("Height of install: %s ft", h))
	}
	if env := opts.LiftEnvironment; env != "" {
		bullets = append(bullets, "Environment: "+strings.ToUpper(env[:1])+env[1:])
	}
	return bullets
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SuggestedFileName builds the download name handed to the export
// collaborator alongside the blob (MIME models.DocxMIME).
func SuggestedFileName(docType models.DocumentType, projectName string) string {
	name := unsafeFileChars.ReplaceAllString(strings.TrimSpace(projectName), "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return string(docType) + ".docx"
	}
	return name + "_" + string(docType) + ".docx"
}
