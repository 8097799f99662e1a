package dto

import (
	"cmp"
	"fmt"
	"maps"
	"strings"
)

const (
	FilterOperatorEq      = "eq"
	FilterOperatorGreater = "greater"
)

const FilterGroupOperatorAnd = "AND"

// comparators maps filter operators to SQL comparisons. Anything else renders no clause.
var comparators = map[string]string{
	FilterOperatorEq:      "=",
	FilterOperatorGreater: ">",
}

// Clause renders a WHERE fragment with named sqlx arguments.
type Clause interface {
	GetWhereClause() (string, map[string]any)
}

// Filter compares one column against a bound value. ArgName defaults to Field.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string
	Table    string
}

func (f Filter) GetWhereClause() (string, map[string]any) {
	comparator, ok := comparators[f.Operator]
	if !ok {
		return "", map[string]any{}
	}

	column := f.Field
	if f.Table != "" {
		column = f.Table + "." + f.Field
	}

	argName := cmp.Or(f.ArgName, f.Field)

	return fmt.Sprintf("%s %s :%s", column, comparator, argName), map[string]any{argName: f.Value}
}

// FilterGroup joins its clauses with Operator, AND when unset. Nested groups are parenthesized.
type FilterGroup struct {
	Filters  []Clause
	Operator string
}

func (f FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	parts := make([]string, 0, len(f.Filters))

	for _, clause := range f.Filters {
		where, arg := clause.GetWhereClause()
		if where == "" {
			continue
		}

		parts = append(parts, where)
		maps.Copy(args, arg)
	}

	if len(parts) == 0 {
		return "", args
	}

	operator := cmp.Or(f.Operator, FilterGroupOperatorAnd)

	return "(" + strings.Join(parts, " "+operator+" ") + ")", args
}
