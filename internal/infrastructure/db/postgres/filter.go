package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/retailnet/pos-admin/internal/core/ports"
)

// Columns names the fields a listing filters on. Empty entries disable the
// matching criterion.
type Columns struct {
	Search []string
	Store  string
	Region string
	Date   string
}

// Filter accumulates predicates written with ? placeholders together with
// their arguments. It is rendered once, so every query built from it shares
// the same WHERE clause and argument list.
type Filter struct {
	preds []string
	args  []any
}

// NewFilter translates criteria into predicates over cols. A store id wins
// over a region id; the date range covers whole calendar days.
func NewFilter(c ports.Criteria, cols Columns) *Filter {
	f := &Filter{}
	if len(cols.Search) > 0 {
		f.Search(c.Search, cols.Search...)
	}
	switch {
	case c.StoreID != nil && cols.Store != "":
		f.Where(cols.Store+" = ?", *c.StoreID)
	case c.RegionID != nil && cols.Region != "":
		f.Where(cols.Region+" = ?", *c.RegionID)
	}
	if c.DateRange != nil && cols.Date != "" {
		f.Where(cols.Date+" >= ? AND "+cols.Date+" < ?", c.DateRange.Start, c.DateRange.Until())
	}
	return f
}

// Where appends a predicate. Each ? in pred consumes one of args.
func (f *Filter) Where(pred string, args ...any) *Filter {
	f.preds = append(f.preds, pred)
	f.args = append(f.args, args...)
	return f
}

// Search matches term as a literal, case-insensitive substring of any of cols.
// An empty term matches every non-null value.
func (f *Filter) Search(term string, cols ...string) *Filter {
	pattern := "%" + EscapeLike(term) + "%"
	parts := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		parts[i] = col + " ILIKE ?"
		args[i] = pattern
	}
	return f.Where("("+strings.Join(parts, " OR ")+")", args...)
}

// Query binds the filter to a listing.
func (f *Filter) Query(selectSQL, countSQL, orderBy string) Query {
	where, args := f.render()
	return Query{selectSQL: selectSQL, countSQL: countSQL, orderBy: orderBy, where: where, args: args}
}

func (f *Filter) render() (string, []any) {
	if len(f.preds) == 0 {
		return "", nil
	}
	var b strings.Builder
	b.WriteString("WHERE ")
	n := 0
	for i, pred := range f.preds {
		if i > 0 {
			b.WriteString(" AND ")
		}
		for _, r := range pred {
			if r == '?' {
				n++
				b.WriteByte('$')
				b.WriteString(strconv.Itoa(n))
				continue
			}
			b.WriteRune(r)
		}
	}
	args := make([]any, len(f.args))
	copy(args, f.args)
	return b.String(), args
}

// Query is a rendered filter bound to its select and count statements.
type Query struct {
	selectSQL string
	countSQL  string
	orderBy   string
	where     string
	args      []any
}

// Where returns the rendered clause and its arguments.
func (q Query) Where() (string, []any) {
	return q.where, append([]any(nil), q.args...)
}

// Page returns the select statement windowed to p. LIMIT and OFFSET are bound
// after the filter arguments.
func (q Query) Page(p ports.Page) (string, []any) {
	n := len(q.args)
	sql := q.compose(q.selectSQL, true) +
		" LIMIT $" + strconv.Itoa(n+1) + " OFFSET $" + strconv.Itoa(n+2)
	args := append(append([]any(nil), q.args...), p.Limit, p.Offset())
	return sql, args
}

// Count returns the count statement over the same predicates.
func (q Query) Count() (string, []any) {
	return q.compose(q.countSQL, false), append([]any(nil), q.args...)
}

// All returns the ordered select statement without a page window.
func (q Query) All() (string, []any) {
	return q.compose(q.selectSQL, true), append([]any(nil), q.args...)
}

func (q Query) compose(base string, ordered bool) string {
	parts := []string{strings.TrimSpace(base)}
	if q.where != "" {
		parts = append(parts, q.where)
	}
	if ordered && q.orderBy != "" {
		parts = append(parts, "ORDER BY "+q.orderBy)
	}
	return strings.Join(parts, " ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters so s matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// listPage runs the windowed select and the count of q.
func listPage[T any](ctx context.Context, db DB, q Query, p ports.Page) ([]T, int64, error) {
	sql, args := q.Page(p)
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countSQL, countArgs := q.Count()
	if err := db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
