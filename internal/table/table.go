// Package table holds schema-tolerant tabular data: an ordered set of named
// columns, each either numeric (NaN marks a missing cell) or text.
package table

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

type Kind int

const (
	Numeric Kind = iota
	Text
)

func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "text"
}

// Column is one named column. Exactly one of Num and Str is populated,
// depending on Kind.
type Column struct {
	Name string
	Kind Kind
	Num  []float64
	Str  []string
}

func (c *Column) len() int {
	if c.Kind == Numeric {
		return len(c.Num)
	}
	return len(c.Str)
}

// Cell renders row i as text. Missing numeric cells render empty.
func (c *Column) Cell(i int) string {
	if c.Kind == Text {
		return c.Str[i]
	}
	return FormatFloat(c.Num[i])
}

func (c *Column) clone(rows []int) *Column {
	out := &Column{Name: c.Name, Kind: c.Kind}
	if c.Kind == Numeric {
		out.Num = make([]float64, len(rows))
		for i, r := range rows {
			out.Num[i] = c.Num[r]
		}
	} else {
		out.Str = make([]string, len(rows))
		for i, r := range rows {
			out.Str[i] = c.Str[r]
		}
	}
	return out
}

// Table is a set of equal-length columns. The zero value is an empty table.
type Table struct {
	cols   []*Column
	byName map[string]int
	rows   int
}

// New builds a table from columns, which must all have the same length.
func New(cols ...*Column) (*Table, error) {
	t := &Table{byName: make(map[string]int, len(cols))}
	for i, c := range cols {
		if _, dup := t.byName[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.Name)
		}
		if i == 0 {
			t.rows = c.len()
		} else if c.len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", c.Name, c.len(), t.rows)
		}
		t.byName[c.Name] = i
		t.cols = append(t.cols, c)
	}
	return t, nil
}

func (t *Table) Len() int { return t.rows }

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

func (t *Table) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// Floats returns a copy of the column as numbers. Text cells that do not
// parse become NaN. The second result is false when the column is absent.
func (t *Table) Floats(name string) ([]float64, bool) {
	c, ok := t.Column(name)
	if !ok {
		return nil, false
	}
	if c.Kind == Numeric {
		return append([]float64(nil), c.Num...), true
	}
	out := make([]float64, len(c.Str))
	for i, s := range c.Str {
		out[i] = parseCell(s)
	}
	return out, true
}

// Value returns the cell at row i of column name as text.
func (t *Table) Value(name string, i int) string {
	c, ok := t.Column(name)
	if !ok {
		return ""
	}
	return c.Cell(i)
}

// Unique returns the distinct non-empty values of a column, sorted.
func (t *Table) Unique(name string) []string {
	c, ok := t.Column(name)
	if !ok {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for i := 0; i < t.rows; i++ {
		v := c.Cell(i)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Take returns a new table holding the given rows, in the given order.
func (t *Table) Take(rows []int) *Table {
	out := &Table{byName: make(map[string]int, len(t.cols)), rows: len(rows)}
	for i, c := range t.cols {
		out.byName[c.Name] = i
		out.cols = append(out.cols, c.clone(rows))
	}
	return out
}

// Filter returns the rows for which keep reports true.
func (t *Table) Filter(keep func(row int) bool) *Table {
	var rows []int
	for i := 0; i < t.rows; i++ {
		if keep(i) {
			rows = append(rows, i)
		}
	}
	return t.Take(rows)
}

// Where keeps the rows whose column name renders exactly as value.
func (t *Table) Where(name, value string) *Table {
	c, ok := t.Column(name)
	if !ok {
		return t.Take(nil)
	}
	return t.Filter(func(i int) bool { return c.Cell(i) == value })
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	rows := make([]int, t.rows)
	for i := range rows {
		rows[i] = i
	}
	return t.Take(rows)
}

// WithText returns a copy with a constant text column inserted at pos.
func (t *Table) WithText(pos int, name, value string) (*Table, error) {
	if t.Has(name) {
		return nil, fmt.Errorf("column %q already exists", name)
	}
	if pos < 0 || pos > len(t.cols) {
		return nil, fmt.Errorf("column position %d out of range", pos)
	}
	vals := make([]string, t.rows)
	for i := range vals {
		vals[i] = value
	}
	src := t.Clone().cols
	cols := make([]*Column, 0, len(src)+1)
	cols = append(cols, src[:pos]...)
	cols = append(cols, &Column{Name: name, Kind: Text, Str: vals})
	cols = append(cols, src[pos:]...)
	return New(cols...)
}

// Concat stacks tables vertically. The result holds the union of columns in
// first-appearance order; cells of columns a table lacks are missing. A
// column that is text in any input is text in the result.
func Concat(tables ...*Table) *Table {
	var (
		order []string
		kinds = map[string]Kind{}
		total int
	)
	for _, t := range tables {
		total += t.rows
		for _, c := range t.cols {
			k, seen := kinds[c.Name]
			if !seen {
				order = append(order, c.Name)
				kinds[c.Name] = c.Kind
			} else if k == Numeric && c.Kind == Text {
				kinds[c.Name] = Text
			}
		}
	}

	out := &Table{byName: make(map[string]int, len(order)), rows: total}
	for i, name := range order {
		col := &Column{Name: name, Kind: kinds[name]}
		for _, t := range tables {
			src, ok := t.Column(name)
			for r := 0; r < t.rows; r++ {
				switch {
				case col.Kind == Numeric && ok:
					col.Num = append(col.Num, src.Num[r])
				case col.Kind == Numeric:
					col.Num = append(col.Num, math.NaN())
				case ok:
					col.Str = append(col.Str, src.Cell(r))
				default:
					col.Str = append(col.Str, "")
				}
			}
		}
		out.byName[name] = i
		out.cols = append(out.cols, col)
	}
	return out
}

// FormatFloat renders v in its shortest round-tripping decimal form; NaN
// renders empty.
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
