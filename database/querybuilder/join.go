package querybuilder

import (
	"strings"
	"unicode"
)

const (
	innerJoinKeyword = "INNER JOIN"
	leftJoinKeyword  = "LEFT JOIN"
	rightJoinKeyword = "RIGHT JOIN"
)

// Join kinds accepted by CustomJoin, without the trailing JOIN.
var customJoinKinds = map[string]bool{
	"INNER":       true,
	"LEFT":        true,
	"RIGHT":       true,
	"FULL":        true,
	"CROSS":       true,
	"NATURAL":     true,
	"LEFT OUTER":  true,
	"RIGHT OUTER": true,
	"FULL OUTER":  true,
}

// Join starts a plain JOIN on table.  The join is rendered only after On or
// OnEq completes it.
func (q *QueryBuilder) Join(table string) *QueryBuilder {
	return q.startJoin(joinKeyword, table)
}

// InnerJoin starts an INNER JOIN on table.
func (q *QueryBuilder) InnerJoin(table string) *QueryBuilder {
	return q.startJoin(innerJoinKeyword, table)
}

// LeftJoin starts a LEFT JOIN on table.
func (q *QueryBuilder) LeftJoin(table string) *QueryBuilder {
	return q.startJoin(leftJoinKeyword, table)
}

// RightJoin starts a RIGHT JOIN on table.
func (q *QueryBuilder) RightJoin(table string) *QueryBuilder {
	return q.startJoin(rightJoinKeyword, table)
}

// CustomJoin starts a join of the given kind, e.g. CustomJoin("full outer",
// "b").  The kind may include a trailing JOIN.  Empty or unknown kinds
// fall back to INNER JOIN.
func (q *QueryBuilder) CustomJoin(joinType string, table string) *QueryBuilder {
	return q.startJoin(resolveJoinKeyword(joinType), table)
}

func resolveJoinKeyword(joinType string) string {
	kind := strings.Join(strings.Fields(strings.ToUpper(joinType)), " ")
	kind = strings.TrimSpace(strings.TrimSuffix(kind, joinKeyword))

	if !customJoinKinds[kind] {
		return innerJoinKeyword
	}
	return kind + " " + joinKeyword
}

// An unfinished pending join is dropped.  A blank table is ignored and
// leaves the pending join as it was.
func (q *QueryBuilder) startJoin(keyword string, table string) *QueryBuilder {
	if isBlank(table) {
		return q
	}

	q.lastJoinKeyword = keyword
	q.pendingJoin = normalize(table, keyword)
	return q
}

// On completes the pending join with condition, e.g. On("a.id = b.a_id").
// A leading ON in condition is not repeated.  Without a pending join, or
// with a blank condition, On does nothing.
func (q *QueryBuilder) On(condition string) *QueryBuilder {
	if q.pendingJoin == "" {
		return q
	}

	condition = trimOnKeyword(condition)
	if condition == "" {
		return q
	}

	return q.completeJoin(q.pendingJoin + " " + onKeyword + " " + condition)
}

// OnEq completes the pending join with the condition "left = right".  Stray
// '=' characters in either operand are dropped.  Both operands must be
// non-blank.
func (q *QueryBuilder) OnEq(left string, right string) *QueryBuilder {
	if q.pendingJoin == "" {
		return q
	}

	left = strings.TrimSpace(strings.Replace(left, "=", "", -1))
	right = strings.TrimSpace(strings.Replace(right, "=", "", -1))
	if left == "" || right == "" {
		return q
	}

	return q.completeJoin(
		q.pendingJoin + " " + onKeyword + " " + left + " = " + right)
}

func trimOnKeyword(condition string) string {
	condition = strings.TrimSpace(condition)
	if len(condition) >= 2 && strings.EqualFold(condition[:2], onKeyword) {
		if len(condition) == 2 || unicode.IsSpace(rune(condition[2])) {
			condition = strings.TrimSpace(condition[2:])
		}
	}
	return condition
}

func (q *QueryBuilder) completeJoin(join string) *QueryBuilder {
	q.joins = append(q.joins, join)
	q.pendingJoin = ""
	return q
}

// CurrentJoin returns the join waiting for its ON condition, or "" if there
// is none.
func (q *QueryBuilder) CurrentJoin() string {
	return q.pendingJoin
}

// SetCurrentJoin replaces the pending join with raw text, which is useful to
// join on a subquery:
//
//	q.SetCurrentJoin("LEFT JOIN (SELECT id FROM b) AS sub").On("a.id = sub.id")
//
// Text without JOIN is prefixed with the keyword of the last join entry
// operation (INNER JOIN by default).  Text which looks like a completed join
// (it contains JOIN, ON and '=') is appended to the completed joins right
// away.  That detection is a substring check, not parsing.
func (q *QueryBuilder) SetCurrentJoin(join string) *QueryBuilder {
	if isBlank(join) {
		return q
	}

	join = strings.TrimSpace(join)
	if !containsKeyword(join, joinKeyword) {
		join = normalize(join, q.lastJoinKeyword)
	}

	if looksLikeCompletedJoin(join) {
		return q.completeJoin(join)
	}

	q.pendingJoin = join
	return q
}

func looksLikeCompletedJoin(join string) bool {
	return containsKeyword(join, joinKeyword) &&
		containsKeyword(join, onKeyword) &&
		strings.Contains(join, "=")
}

// Joins returns the completed join fragments in render order.
func (q *QueryBuilder) Joins() []string {
	return append([]string(nil), q.joins...)
}
