package mapping

import (
	"slices"
	"sort"

	"github.com/ankarhem/advent-of-code/domain/interval"
)

// Table is the set of rules for one stage. Rules are sorted by source start
// and their source intervals are pairwise disjoint. Values not covered by
// any rule translate to themselves. Immutable after construction.
type Table struct {
	name  string
	rules []Rule
}

// NewTable builds a stage from parsed rule lines. Zero-length rules are
// dropped; overlapping sources are rejected.
func NewTable(name string, specs []RuleSpec) (Table, error) {
	rules := make([]Rule, 0, len(specs))
	indexes := make([]int, 0, len(specs))
	for i, spec := range specs {
		r, err := NewRule(spec.DestStart, spec.SourceStart, spec.Length)
		if err != nil {
			return Table{}, &ConfigError{Stage: name, Rule: i, Other: -1, Err: err}
		}
		rules = append(rules, r)
		indexes = append(indexes, i)
	}
	return build(name, rules, indexes)
}

// NewTableFromRules builds a stage from already constructed rules.
func NewTableFromRules(name string, rules []Rule) (Table, error) {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	indexes := make([]int, len(rules))
	for i := range indexes {
		indexes[i] = i
	}
	return build(name, copied, indexes)
}

// build drops empty rules, sorts by source start and rejects overlaps.
// indexes carries each rule's position in the caller's input for errors.
func build(name string, rules []Rule, indexes []int) (Table, error) {
	type indexed struct {
		rule  Rule
		index int
	}

	kept := make([]indexed, 0, len(rules))
	for i, r := range rules {
		if r.source.IsEmpty() {
			continue
		}
		kept = append(kept, indexed{rule: r, index: indexes[i]})
	}

	slices.SortStableFunc(kept, func(a, b indexed) int {
		switch {
		case a.rule.source.Start() < b.rule.source.Start():
			return -1
		case a.rule.source.Start() > b.rule.source.Start():
			return 1
		default:
			return 0
		}
	})

	sorted := make([]Rule, len(kept))
	for i, k := range kept {
		if i > 0 && kept[i-1].rule.source.Overlaps(k.rule.source) {
			return Table{}, &ConfigError{
				Stage: name,
				Rule:  k.index,
				Other: kept[i-1].index,
				Err:   ErrOverlappingSource,
			}
		}
		sorted[i] = k.rule
	}

	return Table{name: name, rules: sorted}, nil
}

// Name returns the stage name.
func (t Table) Name() string { return t.name }

// Len returns the number of rules.
func (t Table) Len() int { return len(t.rules) }

// Rules returns a copy of the sorted rules.
func (t Table) Rules() []Rule {
	result := make([]Rule, len(t.rules))
	copy(result, t.rules)
	return result
}

// first returns the index of the first rule whose source ends after v.
func (t Table) first(v uint64) int {
	return sort.Search(len(t.rules), func(i int) bool {
		return t.rules[i].source.End() > v
	})
}

// TranslatePoint maps id through the rule covering it, or returns it
// unchanged when no rule does.
func (t Table) TranslatePoint(id uint64) uint64 {
	i := t.first(id)
	if i < len(t.rules) && t.rules[i].source.Contains(id) {
		return shift(id, t.rules[i].offset)
	}
	return id
}

// Split cuts iv at the rule boundaries of the table. Covered fragments are
// returned translated; gaps pass through. The source coordinates of the
// returned pieces tile iv in ascending order.
func (t Table) Split(iv interval.Interval) []Piece {
	if iv.IsEmpty() {
		return nil
	}

	pieces := make([]Piece, 0, 3)
	cursor := iv.Start()

	for i := t.first(iv.Start()); i < len(t.rules) && t.rules[i].source.Start() < iv.End(); i++ {
		r := t.rules[i]
		overlap := r.source.Intersect(iv)

		if cursor < overlap.Start() {
			gap, _ := interval.New(cursor, overlap.Start())
			pieces = append(pieces, unmappedPiece(gap))
		}
		pieces = append(pieces, mappedPiece(r, overlap))
		cursor = overlap.End()
	}

	if cursor < iv.End() {
		gap, _ := interval.New(cursor, iv.End())
		pieces = append(pieces, unmappedPiece(gap))
	}

	return pieces
}
