package querybuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errTableRequired   = errors.New("table is required")
	errColumnsRequired = errors.New("columns are required")
)

// Condition renders one WHERE predicate with $n placeholders.
type Condition interface {
	render(w *writer)
}

// writer accumulates SQL text and positional arguments.
type writer struct {
	sb   strings.Builder
	args []any
}

func (w *writer) text(parts ...string) {
	for _, p := range parts {
		w.sb.WriteString(p)
	}
}

func (w *writer) bind(value any) {
	w.args = append(w.args, value)
	w.sb.WriteString("$")
	w.sb.WriteString(strconv.Itoa(len(w.args)))
}

// expr writes s, binding one argument per '?' marker.
func (w *writer) expr(s string, args []any) {
	next := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '?' && next < len(args) {
			w.bind(args[next])
			next++
			continue
		}
		w.sb.WriteByte(s[i])
	}
}

func (w *writer) where(conds []Condition) {
	for i, c := range conds {
		if i == 0 {
			w.text(" WHERE ")
		} else {
			w.text(" AND ")
		}
		c.render(w)
	}
}

type eq struct {
	column string
	value  any
}

func Eq(column string, value any) Condition { return eq{column: column, value: value} }

func (c eq) render(w *writer) {
	w.text(c.column, " = ")
	w.bind(c.value)
}

type in struct {
	column string
	values []any
}

func In(column string, values []any) Condition { return in{column: column, values: values} }

func (c in) render(w *writer) {
	if len(c.values) == 0 {
		w.text("1=0")
		return
	}
	w.text(c.column, " IN (")
	for i, v := range c.values {
		if i > 0 {
			w.text(", ")
		}
		w.bind(v)
	}
	w.text(")")
}

type isNull struct{ column string }

func IsNull(column string) Condition { return isNull{column: column} }

func (c isNull) render(w *writer) { w.text(c.column, " IS NULL") }

type rawExpr struct {
	sql  string
	args []any
}

// Expr is a free-form predicate; each '?' binds the next arg.
func Expr(sql string, args ...any) Condition { return rawExpr{sql: sql, args: args} }

func (c rawExpr) render(w *writer) { w.expr(c.sql, c.args) }

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conds ...Condition) *SelectBuilder {
	b.where = append(b.where, conds...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select: %w", errColumnsRequired)
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select: %w", errTableRequired)
	}

	var w writer
	w.text("SELECT ", strings.Join(b.columns, ", "), " FROM ", b.table)
	w.where(b.where)
	if len(b.orderBy) > 0 {
		w.text(" ORDER BY ", strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.text(" LIMIT ", strconv.Itoa(b.limit))
	}
	return w.sb.String(), w.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends trailing SQL such as RETURNING or ON CONFLICT clauses.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert: %w", errTableRequired)
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert: %w", errColumnsRequired)
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert: values are required")
	}

	var w writer
	w.text("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES ")
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert: row %d has %d values, expected %d", i, len(row), len(b.columns))
		}
		if i > 0 {
			w.text(", ")
		}
		w.text("(")
		for j, v := range row {
			if j > 0 {
				w.text(", ")
			}
			w.bind(v)
		}
		w.text(")")
	}
	if b.suffix != "" {
		w.text(" ", b.suffix)
	}
	return w.sb.String(), w.args, nil
}

type assignment struct {
	column string
	value  any
	raw    *rawExpr
}

type UpdateBuilder struct {
	table  string
	sets   []assignment
	where  []Condition
	suffix string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

func (b *UpdateBuilder) SetExpr(column, sql string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, raw: &rawExpr{sql: sql, args: args}})
	return b
}

func (b *UpdateBuilder) Where(conds ...Condition) *UpdateBuilder {
	b.where = append(b.where, conds...)
	return b
}

func (b *UpdateBuilder) Suffix(sql string) *UpdateBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update: %w", errTableRequired)
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update: %w", errColumnsRequired)
	}

	var w writer
	w.text("UPDATE ", b.table, " SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.text(", ")
		}
		w.text(s.column, " = ")
		if s.raw != nil {
			s.raw.render(&w)
			continue
		}
		w.bind(s.value)
	}
	w.where(b.where)
	if b.suffix != "" {
		w.text(" ", b.suffix)
	}
	return w.sb.String(), w.args, nil
}

type DeleteBuilder struct {
	table  string
	where  []Condition
	suffix string
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conds ...Condition) *DeleteBuilder {
	b.where = append(b.where, conds...)
	return b
}

func (b *DeleteBuilder) Suffix(sql string) *DeleteBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

// ToSQL refuses to build an unconditional delete.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete: %w", errTableRequired)
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("delete: where clause is required")
	}

	var w writer
	w.text("DELETE FROM ", b.table)
	w.where(b.where)
	if b.suffix != "" {
		w.text(" ", b.suffix)
	}
	return w.sb.String(), w.args, nil
}
