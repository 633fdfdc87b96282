// A library for assembling sql text from caller supplied fragments.
//
// The builder does not model tables, columns or expressions.  Each clause
// operation takes a raw fragment, prefixes it with its keyword (unless the
// fragment already contains that keyword, compared case-insensitively) and
// stores it.  Build concatenates the stored clauses in a fixed order:
//
//	SELECT, FROM, joins (in completion order), WHERE, GROUP BY, ORDER BY
//
// Joins are two-step: an entry operation (Join, InnerJoin, LeftJoin,
// RightJoin, CustomJoin) records a pending join, and On / OnEq completes it.
// Only completed joins are rendered.  Starting a new join while another is
// pending silently discards the unfinished one.
//
// Blank fragments are ignored, so a chain never breaks on bad input.  Use
// Check to find out whether the accumulated state forms a plausible query.
//
// SECURITY NOTE: fragments are copied verbatim into the output.  Nothing is
// escaped or quoted, so callers must never pass untrusted input.
//
// Known limitations:
//   - keyword detection is substring based, e.g. From("from_date_table")
//     is stored without a FROM prefix since it already contains "FROM"
//   - SetCurrentJoin decides whether a string is an already completed join
//     by looking for "JOIN", "ON" and "=" anywhere in it.  This is a
//     heuristic, not parsing; a table named "positions" contains "ON".
//   - no LIMIT / OFFSET, HAVING, UNION or subquery support beyond embedding
//     raw text through SetCurrentJoin
package querybuilder
