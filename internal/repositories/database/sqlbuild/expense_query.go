// Package sqlbuild assembles the dynamic parts of expense queries for both
// storage backends. Column names come from a fixed whitelist; every value is
// passed as a bind argument.
package sqlbuild

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// Placeholder renders the n-th (1-based) bind parameter for a dialect.
type Placeholder func(n int) string

// Dollar renders PostgreSQL style placeholders ($1, $2, ...).
func Dollar(n int) string { return "$" + strconv.Itoa(n) }

// Question renders SQLite style placeholders.
func Question(int) string { return "?" }

// ExpenseColumns is the select list shared by every expense read.
const ExpenseColumns = "id, amount, description, category, date, created_at, updated_at"

var sortColumns = map[domain.SortField]string{
	domain.SortByDate:        "date",
	domain.SortByAmount:      "amount",
	domain.SortByCategory:    "category",
	domain.SortByCreatedAt:   "created_at",
	domain.SortByDescription: "description",
}

// TimeEncoder converts a bound time value into the representation the
// backend stores. PostgreSQL passes time.Time through; SQLite uses text.
type TimeEncoder func(time.Time) any

// Builder accumulates WHERE conditions and their arguments.
type Builder struct {
	ph         Placeholder
	encodeTime TimeEncoder
	conds      []string
	args       []any
}

// New returns a Builder for the dialect.
func New(ph Placeholder, encodeTime TimeEncoder) *Builder {
	if encodeTime == nil {
		encodeTime = func(t time.Time) any { return t }
	}
	return &Builder{ph: ph, encodeTime: encodeTime}
}

func (b *Builder) add(cond string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf(cond, b.ph(len(b.args))))
}

// DateRange adds inclusive bounds on the date column. Nil bounds are open.
func (b *Builder) DateRange(start, end *time.Time) *Builder {
	if start != nil {
		b.add("date >= %s", b.encodeTime(start.UTC()))
	}
	if end != nil {
		b.add("date <= %s", b.encodeTime(end.UTC()))
	}
	return b
}

// Filter adds the conditions of an expense filter.
func (b *Builder) Filter(f domain.ExpenseFilter) *Builder {
	if f.Category != nil {
		b.add("category = %s", *f.Category)
	}
	return b.DateRange(f.StartDate, f.EndDate)
}

// Where renders the accumulated conditions, or an empty string when there are none.
func (b *Builder) Where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// Args returns the bind arguments in placeholder order.
func (b *Builder) Args() []any {
	return b.args
}

// Page appends LIMIT and OFFSET bind arguments and returns the clause.
func (b *Builder) Page(limit, offset int) string {
	b.args = append(b.args, limit)
	l := b.ph(len(b.args))
	b.args = append(b.args, offset)
	o := b.ph(len(b.args))
	return fmt.Sprintf(" LIMIT %s OFFSET %s", l, o)
}

// OrderBy renders the ORDER BY clause for a query. id breaks ties in the
// same direction so paging is stable. Unknown fields fall back to date desc.
func OrderBy(field domain.SortField, order domain.SortOrder) string {
	col, ok := sortColumns[field]
	if !ok {
		col = sortColumns[domain.SortByDate]
	}
	dir := "DESC"
	if order == domain.SortAsc {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id %s", col, dir, dir)
}
