package propfilter

import (
	"fmt"

	"github.com/youdz/propfilter/datecmp"
)

// evalToken evaluates one token against an item.
//
// Tokens naming an undeclared property, or an operator the property did not
// register, do not match. They are not errors: queries referencing stale
// properties degrade to empty results instead of failing.
func evalToken(token Token, item Item, pm PropertyMap) (bool, error) {
	if token.PropertyKey == "" {
		return evalFreeText(token.Value, token.Operator, item, pm), nil
	}

	ext, ok := pm.Resolve(token.PropertyKey, token.Operator)
	if !ok {
		return false, nil
	}

	itemValue := item[token.PropertyKey]
	if ext.Match == MatchKindNone {
		itemValue = fixupFalsy(itemValue)
	}

	matched, err := evalOperator(itemValue, token.Value, ext)
	if err != nil {
		return false, fmt.Errorf("property %q: %w", token.PropertyKey, err)
	}
	return matched, nil
}

// evalOperator applies one extended operator to a value pair. Date and
// datetime strategies reduce to a three-way comparison, custom functions
// are consulted verbatim, and any other non-zero match kind (including a
// MatchKindFunc descriptor missing its function) is a configuration defect
// reported as UnsupportedMatchTypeError.
func evalOperator(itemValue, tokenValue any, ext ExtendedOperator) (bool, error) {
	switch ext.Match {
	case MatchKindDate, MatchKindDatetime:
		return matchDateValue(itemValue, tokenValue, ext), nil
	case MatchKindFunc:
		if ext.MatchFunc == nil {
			return false, &UnsupportedMatchTypeError{Operator: ext.Operator, Kind: ext.Match}
		}
		return ext.MatchFunc(itemValue, tokenValue), nil
	case MatchKindNone:
	default:
		return false, &UnsupportedMatchTypeError{Operator: ext.Operator, Kind: ext.Match}
	}

	switch ext.Operator {
	case OpLessThan:
		cmp, ok := relationalCompare(itemValue, tokenValue)
		return ok && cmp < 0, nil
	case OpLessThanEqual:
		cmp, ok := relationalCompare(itemValue, tokenValue)
		return ok && cmp <= 0, nil
	case OpGreaterThan:
		cmp, ok := relationalCompare(itemValue, tokenValue)
		return ok && cmp > 0, nil
	case OpGreaterThanEqual:
		cmp, ok := relationalCompare(itemValue, tokenValue)
		return ok && cmp >= 0, nil
	case OpEqual:
		return looseEqual(itemValue, tokenValue), nil
	case OpNotEqual:
		return !looseEqual(itemValue, tokenValue), nil
	case OpContains:
		return matchText(itemValue, tokenValue), nil
	case OpNotContains:
		return !matchText(itemValue, tokenValue), nil
	case OpStartsWith:
		return matchPrefix(itemValue, tokenValue), nil
	case OpNotStartsWith:
		return !matchPrefix(itemValue, tokenValue), nil
	default:
		return false, &UnsupportedOperatorError{Operator: ext.Operator}
	}
}

// matchDateValue maps a calendar or timestamp comparison onto the
// relational and equality operators. Other operator symbols, and operand
// pairs where either side fails to parse as a point in time, do not match.
func matchDateValue(itemValue, tokenValue any, ext ExtendedOperator) bool {
	var cmp int
	var ok bool
	if ext.Match == MatchKindDate {
		cmp, ok = datecmp.Date(itemValue, tokenValue)
	} else {
		cmp, ok = datecmp.Timestamp(itemValue, tokenValue)
	}
	if !ok {
		return false
	}
	switch ext.Operator {
	case OpLessThan:
		return cmp < 0
	case OpLessThanEqual:
		return cmp <= 0
	case OpGreaterThan:
		return cmp > 0
	case OpGreaterThanEqual:
		return cmp >= 0
	case OpEqual:
		return cmp == 0
	case OpNotEqual:
		return cmp != 0
	default:
		return false
	}
}

// evalFreeText tests a free-text token: the item matches when any property
// that registered OpContains contains the token value. The raw item values
// are tested with the plain substring semantics, even where OpContains was
// declared with a custom match. OpNotContains negates the existential
// result; any other operator follows the non-negated path.
func evalFreeText(value any, op Operator, item Item, pm PropertyMap) bool {
	matched := false
	for key, ops := range pm {
		if _, ok := ops[OpContains]; !ok {
			continue
		}
		if matchText(item[key], value) {
			matched = true
			break
		}
	}
	if op == OpNotContains {
		return !matched
	}
	return matched
}
