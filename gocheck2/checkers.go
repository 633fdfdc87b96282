// Extensions to the go-check unittest framework.
//
// NOTE: see https://github.com/go-check/check/pull/6 for reasons why these
// checkers live here.
package gocheck2

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
	. "gopkg.in/check.v1"
)

// -----------------------------------------------------------------------
// IsTrue / IsFalse checker.

type isBoolValueChecker struct {
	*CheckerInfo
	expected bool
}

func (checker *isBoolValueChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	obtained, ok := params[0].(bool)
	if !ok {
		return false, "Argument to " + checker.Name + " must be bool"
	}

	return obtained == checker.expected, ""
}

// The IsTrue checker verifies that the obtained value is true.
//
// For example:
//
//     c.Assert(value, IsTrue)
//
var IsTrue Checker = &isBoolValueChecker{
	&CheckerInfo{Name: "IsTrue", Params: []string{"obtained"}},
	true,
}

// The IsFalse checker verifies that the obtained value is false.
//
// For example:
//
//     c.Assert(value, IsFalse)
//
var IsFalse Checker = &isBoolValueChecker{
	&CheckerInfo{Name: "IsFalse", Params: []string{"obtained"}},
	false,
}

// -----------------------------------------------------------------------
// SQLEquals checker.

type sqlEqualsChecker struct {
	*CheckerInfo
}

func (checker *sqlEqualsChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	obtained, ok := params[0].(string)
	if !ok {
		return false, "Obtained value must be a string"
	}
	expected, ok := params[1].(string)
	if !ok {
		return false, "Expected value must be a string"
	}

	if obtained == expected {
		return true, ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitClauses(expected),
		B:        splitClauses(obtained),
		FromFile: "expected",
		ToFile:   "obtained",
		Context:  1,
	})
	if err != nil {
		return false, err.Error()
	}
	return false, "SQL mismatch:\n" + diff
}

// One token per diff line, so the diff points at the word that differs
// rather than at one long line.
func splitClauses(sql string) []string {
	words := strings.Fields(sql)
	result := make([]string, 0, len(words))
	for _, word := range words {
		result = append(result, word+"\n")
	}
	return result
}

// The SQLEquals checker verifies that the obtained SQL text is identical to
// the expected text.  On mismatch the failure carries a unified diff.
//
// For example:
//
//     c.Assert(q.Build(), SQLEquals, "SELECT id FROM users")
//
var SQLEquals Checker = &sqlEqualsChecker{
	&CheckerInfo{Name: "SQLEquals", Params: []string{"obtained", "expected"}},
}

// -----------------------------------------------------------------------
// ContainsInOrder checker.

type containsInOrderChecker struct {
	*CheckerInfo
}

func (checker *containsInOrderChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	obtained, ok := params[0].(string)
	if !ok {
		return false, "Obtained value must be a string"
	}
	fragments, ok := params[1].([]string)
	if !ok {
		return false, "Expected value must be a []string"
	}

	rest := obtained
	for i, fragment := range fragments {
		idx := strings.Index(rest, fragment)
		if idx < 0 {
			return false, "Missing (or out of order) fragments:\n" +
				spew.Sdump(fragments[i:])
		}
		rest = rest[idx+len(fragment):]
	}
	return true, ""
}

// The ContainsInOrder checker verifies that the obtained string contains
// every expected fragment, without overlap, in the given order.
//
// For example:
//
//     c.Assert(sql, ContainsInOrder, []string{"SELECT *", "FROM a"})
//
var ContainsInOrder Checker = &containsInOrderChecker{
	&CheckerInfo{Name: "ContainsInOrder", Params: []string{"obtained", "fragments"}},
}
