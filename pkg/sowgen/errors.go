package sowgen

import (
	"errors"
	"fmt"

	"github.com/hts-tools/sowgen-go/pkg/sowgen/bom"
)

// ErrInvalidSpreadsheet indicates the BOM buffer is not a readable
// workbook.
var ErrInvalidSpreadsheet = errors.New("invalid spreadsheet format")

// Sentinels re-exported from the extractor so callers only import this
// package. Both are unrecoverable input errors: no partial result is
// returned and the message names the expected header vocabulary.
var (
	ErrNoData  = bom.ErrNoData
	ErrNoItems = bom.ErrNoItems
)

// StageError records which pipeline stage failed. Render failures are
// fatal; appendix stage errors are logged and the pipeline continues
// with the previous blob.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("document stage %q: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
