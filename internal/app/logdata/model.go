package logdata

import (
	"fmt"

	"kelvin/internal/app/errors"
)

// lineNumberColumn is a bookkeeping column the logger writes; it never
// carries measurement data and is always dropped.
const lineNumberColumn = "LineNumber"

// Model is the in-memory tabular data holder: a header plus column-major
// float64 data. Columns that never held a value (all zero) are dropped on
// SetData, as is the logger's line-number column.
type Model struct {
	header  []string
	columns [][]float64
}

// NewModel returns an empty model
func NewModel() *Model {
	return &Model{}
}

// SetData replaces the model's contents wholesale
func (m *Model) SetData(header []string, columns [][]float64) {
	keptHeader := make([]string, 0, len(header))
	keptColumns := make([][]float64, 0, len(columns))

	for i, col := range columns {
		name := ""
		if i < len(header) {
			name = header[i]
		}

		if name == lineNumberColumn || allZero(col) {
			continue
		}

		keptHeader = append(keptHeader, name)
		keptColumns = append(keptColumns, col)
	}

	m.header = keptHeader
	m.columns = keptColumns
}

// Header returns the column titles
func (m *Model) Header() []string {
	return m.header
}

// ColumnCount returns the number of columns
func (m *Model) ColumnCount() int {
	return len(m.columns)
}

// RowCount returns the number of samples per column
func (m *Model) RowCount() int {
	if len(m.columns) == 0 {
		return 0
	}

	return len(m.columns[0])
}

// Column returns the samples of column i. The slice is shared, not copied;
// callers treat it as an immutable snapshot.
func (m *Model) Column(i int) []float64 {
	if i < 0 || i >= len(m.columns) {
		return nil
	}

	return m.columns[i]
}

// ColumnIndex resolves a column title to its index
func (m *Model) ColumnIndex(name string) (int, error) {
	for i, h := range m.header {
		if h == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errors.ErrColumnNotFound, name)
}

// Item returns a single sample
func (m *Model) Item(row, col int) float64 {
	return m.columns[col][row]
}

func allZero(col []float64) bool {
	for _, v := range col {
		if v != 0 {
			return false
		}
	}

	return true
}
