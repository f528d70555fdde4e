package querybuilder

// Condition is one boolean term of a WHERE clause.
type Condition interface {
	render(b *binder)
}

type conditionFunc func(b *binder)

func (f conditionFunc) render(b *binder) { f(b) }

// Eq renders "column = $n".
func Eq(column string, value any) Condition {
	return conditionFunc(func(b *binder) {
		b.write(column, " = ")
		b.bind(value)
	})
}

// Any renders "column = ANY($n)". Wrap the slice with pq.Array.
func Any(column string, array any) Condition {
	return conditionFunc(func(b *binder) {
		b.write(column, " = ANY(")
		b.bind(array)
		b.write(")")
	})
}

// Or groups conditions as "(a OR b ...)". An empty group matches nothing.
func Or(conditions ...Condition) Condition {
	return conditionFunc(func(b *binder) {
		if len(conditions) == 0 {
			b.write("1=0")
			return
		}
		b.write("(")
		joinConditions(b, conditions, " OR ")
		b.write(")")
	})
}

// Expr embeds raw SQL, replacing each ? with the next positional placeholder.
func Expr(expr string, values ...any) Condition {
	return conditionFunc(func(b *binder) {
		b.bindExpr(expr, values)
	})
}
