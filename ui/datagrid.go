package ui

import (
	"cmp"
	"slices"
	"strconv"
	"sync/atomic"

	"github.com/agiangrant/facet/text"
)

// ============================================================================
// DataGrid
// ============================================================================

// WidthKind is the sizing rule of a DataGrid column.
type WidthKind int

const (
	WidthFlex WidthKind = iota
	WidthFixed
	WidthAuto
)

// ColumnWidth is a column sizing rule. Value is pixels for WidthFixed and a share
// for WidthFlex; it is ignored for WidthAuto.
type ColumnWidth struct {
	Kind  WidthKind
	Value float32
}

// share is the flex share; a zero ColumnWidth is a flex column of share 1.
func (w ColumnWidth) share() float32 {
	if w.Value <= 0 {
		return 1
	}
	return w.Value
}

// FixedWidth is a column of exactly px pixels.
func FixedWidth(px float32) ColumnWidth { return ColumnWidth{Kind: WidthFixed, Value: px} }

// FlexWidth shares the width left over after fixed and auto columns.
func FlexWidth(share float32) ColumnWidth { return ColumnWidth{Kind: WidthFlex, Value: share} }

// AutoWidth fits the header and the first autoSampleRows rows.
func AutoWidth() ColumnWidth { return ColumnWidth{Kind: WidthAuto} }

// GridColumn describes one DataGrid column.
type GridColumn struct {
	Title    string
	Width    ColumnWidth
	MinWidth float32
	Sortable bool
}

// SelectionMode controls how row clicks change the selection.
type SelectionMode int

const (
	SelectNone SelectionMode = iota
	SelectSingle
	SelectMultiple
)

// CellKind tags the value held by a Cell.
type CellKind int

const (
	CellText CellKind = iota
	CellNumber
	CellBool
)

// Cell is one DataGrid value.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Bool   bool
}

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell { return Cell{Kind: CellNumber, Number: v} }

// BoolCell returns a boolean cell.
func BoolCell(v bool) Cell { return Cell{Kind: CellBool, Bool: v} }

func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellBool:
		if c.Bool {
			return "✓"
		}
		return ""
	}
	return c.Text
}

// Compare orders cells of the same kind; cells of different kinds order by kind.
func (c Cell) Compare(o Cell) int {
	if c.Kind != o.Kind {
		return cmp.Compare(c.Kind, o.Kind)
	}
	switch c.Kind {
	case CellNumber:
		return cmp.Compare(c.Number, o.Number)
	case CellBool:
		switch {
		case c.Bool == o.Bool:
			return 0
		case c.Bool:
			return 1
		}
		return -1
	}
	return cmp.Compare(c.Text, o.Text)
}

// DataSource supplies rows to a DataGrid. Cell reports false for rows that are not
// available; those rows are skipped for the frame.
type DataSource interface {
	RowCount() int
	Cell(row, col int) (Cell, bool)
}

// Snapshotter is a DataSource that can be replaced while frames are built. Every pass
// over a grid reads one snapshot so a frame never mixes two versions of the data.
type Snapshotter interface {
	Snapshot() DataSource
}

func snapshotOf(src DataSource) DataSource {
	if s, ok := src.(Snapshotter); ok {
		if snap := s.Snapshot(); snap != nil {
			return snap
		}
	}
	return src
}

// TableSource is an immutable in-memory table.
type TableSource struct {
	rows [][]Cell
}

// NewTableSource returns a table over rows. The rows are owned by the table.
func NewTableSource(rows [][]Cell) *TableSource {
	return &TableSource{rows: rows}
}

// RowCount implements DataSource.
func (t *TableSource) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Cell implements DataSource.
func (t *TableSource) Cell(row, col int) (Cell, bool) {
	if t == nil || row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.rows[row]) {
		return Cell{}, false
	}
	return t.rows[row][col], true
}

// Sorted returns a new table ordered by col. The sort is stable.
func (t *TableSource) Sorted(col int, desc bool) *TableSource {
	rows := slices.Clone(t.rows)
	slices.SortStableFunc(rows, func(a, b []Cell) int {
		var ca, cb Cell
		if col < len(a) {
			ca = a[col]
		}
		if col < len(b) {
			cb = b[col]
		}
		if desc {
			return cb.Compare(ca)
		}
		return ca.Compare(cb)
	})
	return &TableSource{rows: rows}
}

// SnapshotSource lets a producer goroutine publish new tables while the UI goroutine
// renders. Store is safe to call concurrently with rendering.
type SnapshotSource struct {
	cur atomic.Pointer[TableSource]
}

// NewSnapshotSource returns a source publishing t.
func NewSnapshotSource(t *TableSource) *SnapshotSource {
	s := &SnapshotSource{}
	s.Store(t)
	return s
}

// Store publishes t.
func (s *SnapshotSource) Store(t *TableSource) {
	s.cur.Store(t)
}

// Load returns the current table.
func (s *SnapshotSource) Load() *TableSource {
	return s.cur.Load()
}

// Snapshot implements Snapshotter.
func (s *SnapshotSource) Snapshot() DataSource {
	return s.cur.Load()
}

// RowCount implements DataSource.
func (s *SnapshotSource) RowCount() int { return s.cur.Load().RowCount() }

// Cell implements DataSource.
func (s *SnapshotSource) Cell(row, col int) (Cell, bool) { return s.cur.Load().Cell(row, col) }

const (
	defaultRowHeight    = 28
	defaultHeaderHeight = 32
	defaultColumnWidth  = 100
	cellPadding         = 8
	autoSampleRows      = 100
	// naturalGridRows caps a DataGrid's intrinsic height.
	naturalGridRows = 10
)

// DataGrid is a virtualized table. Only rows inside the viewport plus the renderer's
// overscan are flattened.
type DataGrid struct {
	Columns      []GridColumn
	Source       DataSource
	RowHeight    float32
	HeaderHeight float32
	NoHeader     bool
	Striped      bool
	GridLines    bool
	Selection    SelectionMode
	// Selected holds selected row indexes.
	Selected map[int]bool
	// SortColumn is the sorted column, or -1.
	SortColumn int
	SortDesc   bool

	// ColumnWidths is written by ComputeLayout.
	ColumnWidths []float32

	// sorted caches the sorted view of sortedFrom.
	sortedFrom *TableSource
	sorted     *TableSource
	sortedCol  int
	sortedDesc bool
}

// NewDataGrid returns an unsorted grid over src.
func NewDataGrid(columns []GridColumn, src DataSource) *DataGrid {
	return &DataGrid{Columns: columns, Source: src, SortColumn: -1}
}

func (g *DataGrid) rowHeight() float32 {
	if g.RowHeight > 0 {
		return g.RowHeight
	}
	return defaultRowHeight
}

func (g *DataGrid) headerHeight() float32 {
	switch {
	case g.NoHeader:
		return 0
	case g.HeaderHeight > 0:
		return g.HeaderHeight
	}
	return defaultHeaderHeight
}

func (g *DataGrid) rowCount(src DataSource) int {
	if src == nil {
		return 0
	}
	return src.RowCount()
}

// view returns the rows the grid shows for this pass: the current snapshot of Source,
// ordered by SortColumn. The source itself is never reordered. Sorted copies are
// cached per snapshot, so a producer publishing a new table costs one sort on the
// next pass. Sources other than tables are shown in their own order.
func (g *DataGrid) view() DataSource {
	src := snapshotOf(g.Source)
	t, ok := src.(*TableSource)
	if !ok || t == nil || g.SortColumn < 0 {
		return src
	}
	if g.sorted == nil || g.sortedFrom != t || g.sortedCol != g.SortColumn || g.sortedDesc != g.SortDesc {
		g.sorted = t.Sorted(g.SortColumn, g.SortDesc)
		g.sortedFrom, g.sortedCol, g.sortedDesc = t, g.SortColumn, g.SortDesc
	}
	return g.sorted
}

// Row returns the cell at row and col as the grid shows it, sorted.
func (g *DataGrid) Row(row, col int) (Cell, bool) {
	v := g.view()
	if v == nil {
		return Cell{}, false
	}
	return v.Cell(row, col)
}

// Select applies a click on row according to the selection mode and reports whether
// the selection changed.
func (g *DataGrid) Select(row int, extend bool) bool {
	switch g.Selection {
	case SelectNone:
		return false
	case SelectSingle:
		if len(g.Selected) == 1 && g.Selected[row] {
			return false
		}
		g.Selected = map[int]bool{row: true}
		return true
	}
	if g.Selected == nil {
		g.Selected = make(map[int]bool)
	}
	if !extend {
		clear(g.Selected)
		g.Selected[row] = true
		return true
	}
	if g.Selected[row] {
		delete(g.Selected, row)
	} else {
		g.Selected[row] = true
	}
	return true
}

// ToggleSort sorts by col, flipping the direction when col is already the sort
// column. The order is grid state applied on read; Source is left untouched.
func (g *DataGrid) ToggleSort(col int) bool {
	if col < 0 || col >= len(g.Columns) || !g.Columns[col].Sortable {
		return false
	}
	if g.SortColumn == col {
		g.SortDesc = !g.SortDesc
	} else {
		g.SortColumn, g.SortDesc = col, false
	}
	clear(g.Selected)
	return true
}

// resolveColumns assigns ColumnWidths for a grid of the given width.
func (g *DataGrid) resolveColumns(width float32, font text.FontSpec, m text.Measurer) {
	n := len(g.Columns)
	if cap(g.ColumnWidths) < n {
		g.ColumnWidths = make([]float32, n)
	}
	g.ColumnWidths = g.ColumnWidths[:n]

	src := g.view()
	rows := min(g.rowCount(src), autoSampleRows)

	var used, shares float32
	for i, col := range g.Columns {
		var w float32
		switch col.Width.Kind {
		case WidthFixed:
			w = col.Width.Value
		case WidthAuto:
			w = m.Measure(col.Title, font).W
			for r := range rows {
				if c, ok := src.Cell(r, i); ok {
					w = max(w, m.Measure(c.String(), font).W)
				}
			}
			w += 2 * cellPadding
		case WidthFlex:
			shares += col.Width.share()
			continue
		}
		w = max(w, col.MinWidth)
		g.ColumnWidths[i] = w
		used += w
	}

	leftover := max(width-used, 0)
	for i, col := range g.Columns {
		if col.Width.Kind != WidthFlex {
			continue
		}
		var w float32
		if shares > 0 {
			w = leftover * col.Width.share() / shares
		}
		g.ColumnWidths[i] = max(w, col.MinWidth)
	}
}

// naturalWidth is the width the grid asks for with no flex columns stretched.
func (g *DataGrid) naturalWidth() float32 {
	var w float32
	for _, col := range g.Columns {
		switch col.Width.Kind {
		case WidthFixed:
			w += max(col.Width.Value, col.MinWidth)
		default:
			w += max(defaultColumnWidth, col.MinWidth)
		}
	}
	return w
}
