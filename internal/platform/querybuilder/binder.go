// Package querybuilder renders postgres statements with positional
// placeholders for the repositories.
package querybuilder

import (
	"strconv"
	"strings"
)

// binder accumulates SQL text and its arguments. Placeholders are numbered
// by the argument count, so conditions can be rendered in any order.
type binder struct {
	sql  strings.Builder
	args []any
}

func (b *binder) write(parts ...string) {
	for _, part := range parts {
		b.sql.WriteString(part)
	}
}

func (b *binder) bind(value any) {
	b.args = append(b.args, value)
	b.sql.WriteString("$")
	b.sql.WriteString(strconv.Itoa(len(b.args)))
}

// bindExpr copies expr, replacing each ? with the next value. Surplus
// question marks are kept verbatim.
func (b *binder) bindExpr(expr string, values []any) {
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(values) {
			b.bind(values[next])
			next++
			continue
		}
		b.sql.WriteByte(expr[i])
	}
}

func (b *binder) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	b.write(" WHERE ")
	joinConditions(b, conditions, " AND ")
}

func (b *binder) result() (string, []any, error) {
	return b.sql.String(), b.args, nil
}

func joinConditions(b *binder, conditions []Condition, sep string) {
	for i, c := range conditions {
		if i > 0 {
			b.write(sep)
		}
		c.render(b)
	}
}
