package workbook

import (
	"fmt"
	"log/slog"

	"github.com/theirongolddev/scaleos/internal/model"
)

// Options controls a generation run.
type Options struct {
	Path   string
	Sheet  string
	Logger *slog.Logger
}

// Report describes a generated workbook.
type Report struct {
	Path      string
	Sheet     string
	FirstRow  int
	LastRow   int
	Years     []int
	CellCount int
}

// Generate validates the assumptions, lays out the model and writes it to
// opts.Path.
func Generate(a model.Assumptions, opts Options) (Report, error) {
	if err := a.Validate(); err != nil {
		return Report{}, fmt.Errorf("invalid assumptions: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sheet := opts.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}

	grid := Layout(a, sheet)
	logger.Debug("laid out model",
		"sheet", grid.Sheet,
		"cells", len(grid.Cells),
		"first_row", FirstDataRow,
		"last_row", LastDataRow,
	)

	if err := Write(grid, opts.Path); err != nil {
		return Report{}, err
	}
	logger.Debug("wrote workbook", "path", opts.Path)

	return Report{
		Path:      opts.Path,
		Sheet:     grid.Sheet,
		FirstRow:  FirstDataRow,
		LastRow:   LastDataRow,
		Years:     model.Years(),
		CellCount: len(grid.Cells),
	}, nil
}
