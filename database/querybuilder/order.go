package querybuilder

import (
	"strings"
)

// Sort direction of the ORDER BY clause.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection resolves a direction token.  Case and whitespace are
// ignored ("  desc", "D E S C"); anything that is not ASC or DESC resolves
// to Asc.
func ParseDirection(direction string) Direction {
	switch Direction(strings.ToUpper(strings.Join(strings.Fields(direction), ""))) {
	case Desc:
		return Desc
	default:
		return Asc
	}
}

// OrderBy sets the ORDER BY column with ascending direction.  Replaces any
// previous ordering.
func (q *QueryBuilder) OrderBy(column string) *QueryBuilder {
	return q.OrderByDirection(column, string(Asc))
}

// OrderByDirection sets the ORDER BY column and its direction.  An unknown
// or empty direction falls back to ASC.  A blank column leaves the current
// ordering untouched.
func (q *QueryBuilder) OrderByDirection(
	column string,
	direction string) *QueryBuilder {

	if isBlank(column) {
		return q
	}

	q.orderColumn = normalize(column, orderByKeyword)
	q.orderDirection = ParseDirection(direction)
	return q
}
