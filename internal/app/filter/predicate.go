// Package filter turns optional ship query parameters into composable
// predicates. A predicate renders both as a gorm scope and as an in-memory
// matcher so every store evaluates the same condition.
package filter

import (
	"strings"

	"space_ships/internal/app/ds"

	"gorm.io/gorm"
)

type condition struct {
	query string
	args  []any
	match func(*ds.Ship) bool
}

// Predicate is a conjunction of conditions. The zero value matches every ship.
type Predicate struct {
	conds []condition
}

func newPredicate(query string, match func(*ds.Ship) bool, args ...any) *Predicate {
	return &Predicate{conds: []condition{{query: query, args: args, match: match}}}
}

// And combines predicates with logical AND. Nil predicates contribute no constraint.
func And(preds ...*Predicate) Predicate {
	var out Predicate
	for _, p := range preds {
		if p == nil {
			continue
		}
		out.conds = append(out.conds, p.conds...)
	}
	return out
}

// Empty reports whether the predicate matches everything.
func (p Predicate) Empty() bool {
	return len(p.conds) == 0
}

// Match evaluates the predicate against a single ship.
func (p Predicate) Match(s *ds.Ship) bool {
	for _, c := range p.conds {
		if !c.match(s) {
			return false
		}
	}
	return true
}

// Scope applies the predicate to a gorm query as WHERE clauses.
func (p Predicate) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, c := range p.conds {
			db = db.Where(c.query, c.args...)
		}
		return db
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// ordered covers the column types range filters work on.
type ordered interface {
	~int | ~int64 | ~float64
}

// between builds the three-way range condition: >= min, <= max or BETWEEN both.
func between[T ordered](column string, min, max *T, get func(*ds.Ship) T) *Predicate {
	switch {
	case min == nil && max == nil:
		return nil
	case min == nil:
		hi := *max
		return newPredicate(column+" <= ?", func(s *ds.Ship) bool { return get(s) <= hi }, hi)
	case max == nil:
		lo := *min
		return newPredicate(column+" >= ?", func(s *ds.Ship) bool { return get(s) >= lo }, lo)
	default:
		lo, hi := *min, *max
		return newPredicate(column+" BETWEEN ? AND ?", func(s *ds.Ship) bool {
			v := get(s)
			return v >= lo && v <= hi
		}, lo, hi)
	}
}
