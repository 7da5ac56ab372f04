package workbook

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// Number formats.
const (
	FormatInteger  = "#,##0"
	FormatCurrency = "$#,##0"
	FormatDecimal  = "0.0"
)

// WriteError reports a failure to produce the output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing workbook %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

// styleDefs maps each layout style to its excelize definition.
var styleDefs = map[Style]*excelize.Style{
	StyleTitle:      {Font: &excelize.Font{Bold: true, Size: 12}},
	StyleInputLabel: {Font: &excelize.Font{Size: 10}},
	StyleInputValue: {Font: &excelize.Font{Size: 10}, CustomNumFmt: strPtr(FormatInteger)},
	StyleSummaryLabel: {
		Font: &excelize.Font{Bold: true, Size: 11},
	},
	StyleYearHeader: {
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	},
	StyleColumnHeader: {
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	},
	StyleCurrency: {CustomNumFmt: strPtr(FormatCurrency)},
	StyleDecimal:  {CustomNumFmt: strPtr(FormatDecimal)},
}

// Render converts a grid into an in-memory workbook. The caller closes it.
func Render(g Grid) (*excelize.File, error) {
	xf := excelize.NewFile()

	defaultSheet := xf.GetSheetName(0)
	if g.Sheet != "" && g.Sheet != defaultSheet {
		if err := xf.SetSheetName(defaultSheet, g.Sheet); err != nil {
			_ = xf.Close()
			return nil, fmt.Errorf("naming sheet: %w", err)
		}
	}
	sheet := xf.GetSheetName(0)

	styleIDs := make(map[Style]int, len(styleDefs))
	for st, def := range styleDefs {
		id, err := xf.NewStyle(def)
		if err != nil {
			_ = xf.Close()
			return nil, fmt.Errorf("creating style %d: %w", st, err)
		}
		styleIDs[st] = id
	}

	for _, c := range g.Cells {
		if err := setCell(xf, sheet, c, styleIDs); err != nil {
			_ = xf.Close()
			return nil, fmt.Errorf("cell %s: %w", c.Ref, err)
		}
	}

	for _, col := range g.Columns {
		if err := xf.SetColWidth(sheet, col.Letter, col.Letter, col.Width); err != nil {
			_ = xf.Close()
			return nil, fmt.Errorf("column %s width: %w", col.Letter, err)
		}
	}

	// No cached results are stored for formulas; have the reader compute them.
	if err := xf.SetCalcProps(&excelize.CalcPropsOptions{FullCalcOnLoad: boolPtr(true)}); err != nil {
		_ = xf.Close()
		return nil, fmt.Errorf("setting calc props: %w", err)
	}

	return xf, nil
}

func setCell(xf *excelize.File, sheet string, c Cell, styleIDs map[Style]int) error {
	if c.Formula != "" {
		if err := xf.SetCellFormula(sheet, c.Ref, c.Formula); err != nil {
			return err
		}
	} else if err := xf.SetCellValue(sheet, c.Ref, c.Value); err != nil {
		return err
	}

	if id, ok := styleIDs[c.Style]; ok {
		return xf.SetCellStyle(sheet, c.Ref, c.Ref, id)
	}
	return nil
}

// Write renders the grid and writes it to path, replacing any existing file.
// The file handle is released whether or not the write succeeds.
func Write(g Grid, path string) error {
	xf, err := Render(g)
	if err != nil {
		return err
	}
	defer func() { _ = xf.Close() }()

	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // output path is chosen by the user
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if _, err := xf.WriteTo(fh); err != nil {
		_ = fh.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := fh.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
