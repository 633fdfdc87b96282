package querybuilder

import (
	gc "gopkg.in/check.v1"

	. "github.com/fluentsql/fluentsql/gocheck2"
)

type JoinSuite struct {
}

var _ = gc.Suite(&JoinSuite{})

func (s *JoinSuite) TestLeftJoinOnEq(c *gc.C) {
	q := New().Select("*").From("a").LeftJoin("b").OnEq("a.id", "b.a_id")

	c.Assert(q.Build(), SQLEquals, "SELECT * FROM a LEFT JOIN b ON a.id = b.a_id")
	c.Assert(q.Joins(), gc.DeepEquals, []string{"LEFT JOIN b ON a.id = b.a_id"})
}

func (s *JoinSuite) TestEntryOperations(c *gc.C) {
	q := New().Select("*").From("a").
		Join("b").On("a.id = b.id").
		InnerJoin("c").On("a.id = c.id").
		RightJoin("d").On("a.id = d.id")

	c.Assert(q.Joins(), gc.DeepEquals, []string{
		"JOIN b ON a.id = b.id",
		"INNER JOIN c ON a.id = c.id",
		"RIGHT JOIN d ON a.id = d.id",
	})
}

func (s *JoinSuite) TestUnfinishedJoinNotRendered(c *gc.C) {
	q := New().Select("*").From("a").InnerJoin("b")

	c.Assert(q.Build(), SQLEquals, "SELECT * FROM a")
	c.Assert(q.CurrentJoin(), gc.Equals, "INNER JOIN b")

	// Completing the join makes it show up in a later build.
	q.On("a.id = b.a_id")
	c.Assert(q.Build(), SQLEquals, "SELECT * FROM a INNER JOIN b ON a.id = b.a_id")
	c.Assert(q.CurrentJoin(), gc.Equals, "")
}

func (s *JoinSuite) TestSecondEntryDiscardsPendingJoin(c *gc.C) {
	q := New().Select("*").From("a").
		InnerJoin("b").
		LeftJoin("c").
		OnEq("a.id", "c.a_id")

	c.Assert(q.Build(), SQLEquals, "SELECT * FROM a LEFT JOIN c ON a.id = c.a_id")
	c.Assert(q.Joins(), gc.HasLen, 1)
}

func (s *JoinSuite) TestBlankEntryKeepsPendingJoin(c *gc.C) {
	q := New().Select("*").From("a").LeftJoin("b").InnerJoin("   ")

	c.Assert(q.CurrentJoin(), gc.Equals, "LEFT JOIN b")
}

func (s *JoinSuite) TestJoinsRenderInCompletionOrder(c *gc.C) {
	q := New().Select("*").From("a").
		LeftJoin("b").On("a.id = b.a_id").
		InnerJoin("c").On("on c.id = a.c_id").
		Where("a.x = 1")

	c.Assert(
		q.Build(),
		SQLEquals,
		"SELECT * FROM a LEFT JOIN b ON a.id = b.a_id "+
			"INNER JOIN c ON c.id = a.c_id WHERE a.x = 1")
}

func (s *JoinSuite) TestOnWithoutPendingJoin(c *gc.C) {
	q := New().Select("*").From("a").On("a.id = b.id").OnEq("a.id", "b.id")

	c.Assert(q.Build(), SQLEquals, "SELECT * FROM a")
	c.Assert(q.Joins(), gc.HasLen, 0)
}

func (s *JoinSuite) TestBlankOnKeepsJoinPending(c *gc.C) {
	q := New().Select("*").From("a").InnerJoin("b").
		On("").
		On("  on  ").
		OnEq("a.id", "").
		OnEq("=", "b.id")

	c.Assert(q.CurrentJoin(), gc.Equals, "INNER JOIN b")
	c.Assert(q.Joins(), gc.HasLen, 0)
}

func (s *JoinSuite) TestOnEqStripsEquals(c *gc.C) {
	q := New().Select("*").From("a").InnerJoin("b").OnEq("a.id =", " = b.id")

	c.Assert(q.Joins(), gc.DeepEquals, []string{"INNER JOIN b ON a.id = b.id"})
}

func (s *JoinSuite) TestOnKeepsConditionStartingWithOnWord(c *gc.C) {
	// Only a standalone ON is treated as the keyword.
	q := New().Select("*").From("a").InnerJoin("b").On("online = b.online")

	c.Assert(q.Joins(), gc.DeepEquals, []string{"INNER JOIN b ON online = b.online"})
}

func (s *JoinSuite) TestTableAlreadyPrefixed(c *gc.C) {
	q := New().Select("*").From("a").LeftJoin("left join b").On("a.id = b.id")

	c.Assert(q.Joins(), gc.DeepEquals, []string{"left join b ON a.id = b.id"})
}

//
// CustomJoin tests
//

func (s *JoinSuite) TestCustomJoin(c *gc.C) {
	q := New().Select("*").From("a").
		CustomJoin("full outer", "b").On("a.id = b.id").
		CustomJoin(" cross join ", "c").On("1 = 1")

	c.Assert(q.Joins(), gc.DeepEquals, []string{
		"FULL OUTER JOIN b ON a.id = b.id",
		"CROSS JOIN c ON 1 = 1",
	})
}

func (s *JoinSuite) TestCustomJoinFallsBackToInner(c *gc.C) {
	q := New().Select("*").From("a").
		CustomJoin("", "b").On("a.id = b.id").
		CustomJoin("sideways", "c").On("a.id = c.id")

	c.Assert(q.Joins(), gc.DeepEquals, []string{
		"INNER JOIN b ON a.id = b.id",
		"INNER JOIN c ON a.id = c.id",
	})
}

func (s *JoinSuite) TestResolveJoinKeyword(c *gc.C) {
	c.Assert(resolveJoinKeyword("left"), gc.Equals, "LEFT JOIN")
	c.Assert(resolveJoinKeyword("Right  Outer"), gc.Equals, "RIGHT OUTER JOIN")
	c.Assert(resolveJoinKeyword("natural join"), gc.Equals, "NATURAL JOIN")
	c.Assert(resolveJoinKeyword("JOIN"), gc.Equals, "INNER JOIN")
	c.Assert(resolveJoinKeyword("  "), gc.Equals, "INNER JOIN")
}

//
// CurrentJoin / SetCurrentJoin tests
//

func (s *JoinSuite) TestSetCurrentJoinSubquery(c *gc.C) {
	q := New().Select("*").From("a").
		SetCurrentJoin("(SELECT id FROM b WHERE b.live) AS sub")

	c.Assert(q.CurrentJoin(), gc.Equals, "INNER JOIN (SELECT id FROM b WHERE b.live) AS sub")
	c.Assert(q.Build(), SQLEquals, "SELECT * FROM a")

	q.On("a.id = sub.id")
	c.Assert(
		q.Build(),
		SQLEquals,
		"SELECT * FROM a INNER JOIN (SELECT id FROM b WHERE b.live) AS sub "+
			"ON a.id = sub.id")
}

func (s *JoinSuite) TestSetCurrentJoinUsesLastJoinKeyword(c *gc.C) {
	q := New().RightJoin("x").SetCurrentJoin("y")

	c.Assert(q.CurrentJoin(), gc.Equals, "RIGHT JOIN y")
}

func (s *JoinSuite) TestSetCurrentJoinCompleted(c *gc.C) {
	q := New().Select("*").From("a").
		InnerJoin("c").
		SetCurrentJoin("  LEFT JOIN b ON a.id = b.a_id ")

	c.Assert(q.CurrentJoin(), gc.Equals, "")
	c.Assert(q.Joins(), gc.DeepEquals, []string{"LEFT JOIN b ON a.id = b.a_id"})
	c.Assert(q.Build(), SQLEquals, "SELECT * FROM a LEFT JOIN b ON a.id = b.a_id")
}

func (s *JoinSuite) TestSetCurrentJoinWithoutOnStaysPending(c *gc.C) {
	q := New().SetCurrentJoin("LEFT JOIN b USING (id)")

	c.Assert(q.CurrentJoin(), gc.Equals, "LEFT JOIN b USING (id)")
	c.Assert(looksLikeCompletedJoin(q.CurrentJoin()), IsFalse)
}

func (s *JoinSuite) TestSetCurrentJoinBlank(c *gc.C) {
	q := New().LeftJoin("b").SetCurrentJoin(" ")

	c.Assert(q.CurrentJoin(), gc.Equals, "LEFT JOIN b")
}

func (s *JoinSuite) TestLooksLikeCompletedJoinIsHeuristic(c *gc.C) {
	c.Assert(looksLikeCompletedJoin("JOIN b ON a.id = b.id"), IsTrue)
	// "positions" contains "ON"; the heuristic accepts it.
	c.Assert(looksLikeCompletedJoin("JOIN positions p WHERE x = 1"), IsTrue)
	c.Assert(looksLikeCompletedJoin("JOIN b ON a.id"), IsFalse)
}
