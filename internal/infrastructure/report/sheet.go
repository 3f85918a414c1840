package report

import "github.com/xuri/excelize/v2"

// sheetBuilder writes cells and keeps the first error, so layout code reads
// top to bottom.
type sheetBuilder struct {
	f     *excelize.File
	sheet string
	cols  int
	err   error
}

func (b *sheetBuilder) cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil && b.err == nil {
		b.err = err
	}
	return name
}

func (b *sheetBuilder) set(col, row int, v any) {
	if b.err != nil {
		return
	}
	b.err = b.f.SetCellValue(b.sheet, b.cell(col, row), v)
}

func (b *sheetBuilder) formula(col, row int, formula string) {
	if b.err != nil {
		return
	}
	b.err = b.f.SetCellFormula(b.sheet, b.cell(col, row), formula)
}

func (b *sheetBuilder) style(fromCol, fromRow, toCol, toRow, style int) {
	if b.err != nil {
		return
	}
	b.err = b.f.SetCellStyle(b.sheet, b.cell(fromCol, fromRow), b.cell(toCol, toRow), style)
}

func (b *sheetBuilder) height(row int, h float64) {
	if b.err != nil {
		return
	}
	b.err = b.f.SetRowHeight(b.sheet, row, h)
}

// title writes text into a row merged across every column.
func (b *sheetBuilder) title(row int, text string, style int, h float64) {
	if b.err != nil {
		return
	}
	from, to := b.cell(1, row), b.cell(b.cols, row)
	if b.err = b.f.MergeCell(b.sheet, from, to); b.err != nil {
		return
	}
	b.set(1, row, text)
	b.style(1, row, b.cols, row, style)
	b.height(row, h)
}

func (b *sheetBuilder) header(row int, labels []string, style int) {
	for i, label := range labels {
		b.set(i+1, row, label)
	}
	b.style(1, row, len(labels), row, style)
	b.height(row, 30)
}

func (b *sheetBuilder) widths(widths []float64) {
	for i, w := range widths {
		if b.err != nil {
			return
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			b.err = err
			return
		}
		b.err = b.f.SetColWidth(b.sheet, col, col, w)
	}
}
