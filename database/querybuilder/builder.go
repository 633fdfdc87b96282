package querybuilder

import (
	"strings"

	"github.com/fluentsql/fluentsql/errors"
)

// QueryBuilder accumulates clause fragments and renders them with Build.
//
// A QueryBuilder is not safe for concurrent use.  Use one builder per query,
// or hand a Copy to another goroutine.
type QueryBuilder struct {
	selectClause  string
	fromClause    string
	whereClause   string
	groupByClause string

	orderColumn    string
	orderDirection Direction

	// Keyword of the most recent join entry operation.
	lastJoinKeyword string

	// Join waiting for its ON condition; "" when there is none.
	pendingJoin string

	// Completed joins, in completion order.
	joins []string

	separator string
}

// Option configures a QueryBuilder at construction time.
type Option func(q *QueryBuilder)

// Multiline renders each clause on its own line instead of separating
// clauses with a single space.
func Multiline() Option {
	return func(q *QueryBuilder) {
		q.separator = "\n"
	}
}

// New returns an empty builder.
func New(options ...Option) *QueryBuilder {
	q := &QueryBuilder{
		lastJoinKeyword: innerJoinKeyword,
		separator:       " ",
	}
	for _, option := range options {
		option(q)
	}
	return q
}

// Select sets the SELECT clause, e.g. Select("id, name").
func (q *QueryBuilder) Select(projections string) *QueryBuilder {
	q.setClause(&q.selectClause, projections, selectKeyword)
	return q
}

// From sets the FROM clause.
func (q *QueryBuilder) From(table string) *QueryBuilder {
	q.setClause(&q.fromClause, table, fromKeyword)
	return q
}

// Where sets the WHERE clause.  The condition replaces any previous one;
// combine conditions in the fragment itself.
func (q *QueryBuilder) Where(condition string) *QueryBuilder {
	q.setClause(&q.whereClause, condition, whereKeyword)
	return q
}

// GroupBy sets the GROUP BY clause.
func (q *QueryBuilder) GroupBy(columns string) *QueryBuilder {
	q.setClause(&q.groupByClause, columns, groupByKeyword)
	return q
}

// Last write wins; blank fragments keep the previous value.
func (q *QueryBuilder) setClause(
	clause *string,
	fragment string,
	keyword string) {

	if isBlank(fragment) {
		return
	}
	*clause = normalize(fragment, keyword)
}

// Build returns the query text for the current state.  Unset clauses and
// joins still waiting for an ON condition are omitted.  Build does not
// modify the builder and may be called any number of times.
func (q *QueryBuilder) Build() string {
	parts := make([]string, 0, 5+len(q.joins))

	if q.selectClause != "" {
		parts = append(parts, q.selectClause)
	}
	if q.fromClause != "" {
		parts = append(parts, q.fromClause)
	}
	parts = append(parts, q.joins...)
	if q.whereClause != "" {
		parts = append(parts, q.whereClause)
	}
	if q.groupByClause != "" {
		parts = append(parts, q.groupByClause)
	}
	if q.orderColumn != "" {
		parts = append(parts, q.orderColumn+" "+string(q.orderDirection))
	}

	return strings.Join(parts, q.separator)
}

// String implements fmt.Stringer.
func (q *QueryBuilder) String() string {
	return q.Build()
}

// Check reports state that Build would silently drop or that cannot form a
// SELECT query: a missing SELECT or FROM clause, or a join without an ON
// condition.
func (q *QueryBuilder) Check() error {
	if q.selectClause == "" {
		return errors.Newf(
			"No SELECT clause specified.  Generated sql: %s",
			q.Build())
	}
	if q.fromClause == "" {
		return errors.Newf(
			"No FROM clause specified.  Generated sql: %s",
			q.Build())
	}
	if q.pendingJoin != "" {
		return errors.Newf(
			"Join '%s' has no ON condition and will not be rendered",
			q.pendingJoin)
	}
	return nil
}

// Copy returns an independent builder with the same state.
func (q *QueryBuilder) Copy() *QueryBuilder {
	ret := *q
	ret.joins = append([]string(nil), q.joins...)
	return &ret
}

// Reset clears every clause, including pending and completed joins.
// Options passed to New are kept.
func (q *QueryBuilder) Reset() *QueryBuilder {
	*q = QueryBuilder{
		lastJoinKeyword: innerJoinKeyword,
		separator:       q.separator,
	}
	return q
}
