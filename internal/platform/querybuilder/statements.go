package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

type SelectBuilder struct {
	columns []string
	table   string
	joins   []string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: columns}
}

func (s *SelectBuilder) From(table string) *SelectBuilder {
	s.table = table
	return s
}

// Join appends a raw clause such as "JOIN teams t ON t.id = s.team_id".
func (s *SelectBuilder) Join(clause string) *SelectBuilder {
	s.joins = append(s.joins, clause)
	return s
}

func (s *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	s.where = append(s.where, conditions...)
	return s
}

func (s *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	s.orderBy = append(s.orderBy, terms...)
	return s
}

func (s *SelectBuilder) Limit(n int) *SelectBuilder {
	s.limit = n
	return s
}

func (s *SelectBuilder) ToSQL() (string, []any, error) {
	if len(s.columns) == 0 || strings.TrimSpace(s.table) == "" {
		return "", nil, fmt.Errorf("select needs columns and a table")
	}

	var b binder
	b.write("SELECT ", strings.Join(s.columns, ", "), " FROM ", s.table)
	for _, join := range s.joins {
		b.write(" ", join)
	}
	b.where(s.where)
	if len(s.orderBy) > 0 {
		b.write(" ORDER BY ", strings.Join(s.orderBy, ", "))
	}
	if s.limit > 0 {
		b.write(" LIMIT ", strconv.Itoa(s.limit))
	}
	return b.result()
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

func (s *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	s.columns = columns
	return s
}

func (s *InsertBuilder) Values(values ...any) *InsertBuilder {
	s.rows = append(s.rows, values)
	return s
}

// Suffix is appended verbatim, typically ON CONFLICT or RETURNING.
func (s *InsertBuilder) Suffix(sql string) *InsertBuilder {
	s.suffix = strings.TrimSpace(sql)
	return s
}

func (s *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(s.table) == "":
		return "", nil, fmt.Errorf("insert needs a table")
	case len(s.columns) == 0:
		return "", nil, fmt.Errorf("insert into %s needs columns", s.table)
	case len(s.rows) == 0:
		return "", nil, fmt.Errorf("insert into %s needs values", s.table)
	}

	var b binder
	b.write("INSERT INTO ", s.table, " (", strings.Join(s.columns, ", "), ") VALUES ")
	for i, row := range s.rows {
		if len(row) != len(s.columns) {
			return "", nil, fmt.Errorf("insert into %s: row %d has %d values for %d columns", s.table, i, len(row), len(s.columns))
		}
		if i > 0 {
			b.write(", ")
		}
		b.write("(")
		for j, value := range row {
			if j > 0 {
				b.write(", ")
			}
			b.bind(value)
		}
		b.write(")")
	}
	if s.suffix != "" {
		b.write(" ", s.suffix)
	}
	return b.result()
}

type assignment struct {
	column string
	expr   string
	values []any
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (s *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	return s.SetExpr(column, "?", value)
}

// SetExpr assigns an expression such as "total_teams + ?".
func (s *UpdateBuilder) SetExpr(column, expr string, values ...any) *UpdateBuilder {
	s.sets = append(s.sets, assignment{column: column, expr: expr, values: values})
	return s
}

func (s *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	s.where = append(s.where, conditions...)
	return s
}

// ToSQL refuses to build an UPDATE without a WHERE clause.
func (s *UpdateBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(s.table) == "" || len(s.sets) == 0:
		return "", nil, fmt.Errorf("update needs a table and assignments")
	case len(s.where) == 0:
		return "", nil, fmt.Errorf("update of %s without where clause is not allowed", s.table)
	}

	var b binder
	b.write("UPDATE ", s.table, " SET ")
	for i, set := range s.sets {
		if i > 0 {
			b.write(", ")
		}
		b.write(set.column, " = ")
		b.bindExpr(set.expr, set.values)
	}
	b.where(s.where)
	return b.result()
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (s *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	s.where = append(s.where, conditions...)
	return s
}

// ToSQL refuses to build a DELETE without a WHERE clause.
func (s *DeleteBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(s.table) == "":
		return "", nil, fmt.Errorf("delete needs a table")
	case len(s.where) == 0:
		return "", nil, fmt.Errorf("delete from %s without where clause is not allowed", s.table)
	}

	var b binder
	b.write("DELETE FROM ", s.table)
	b.where(s.where)
	return b.result()
}
