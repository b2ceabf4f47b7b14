package export

import (
	"errors"
	"fmt"
)

// ErrConverterMissing is reported, as a warning, when the converter
// is not found on the PATH. Only the PostScript file is produced.
var ErrConverterMissing = errors.New("export: converter not found")

// ErrInvalidSize is returned when only one of the PNG width and
// height is set.
var ErrInvalidSize = errors.New("export: PNG width and height must be set together")

// ExportError reports a fatal failure of one export step.
// Files written by the previous steps are left untouched.
type ExportError struct {
	Op   string // "mkdir", "write" or "convert"
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
