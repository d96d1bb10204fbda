package propfilter

// Operator identifies one of the comparison operators a property may
// support. The set is closed: relational ordering, equality, substring
// containment and prefix matching, each with a negated form where it
// makes sense.
type Operator string

const (
	OpLessThan         Operator = "<"
	OpLessThanEqual    Operator = "<="
	OpGreaterThan      Operator = ">"
	OpGreaterThanEqual Operator = ">="
	OpEqual            Operator = "="
	OpNotEqual         Operator = "!="
	OpContains         Operator = ":"
	OpNotContains      Operator = "!:"
	OpStartsWith       Operator = "^"
	OpNotStartsWith    Operator = "!^"
)

// Valid reports whether op is one of the ten supported operator symbols.
func (op Operator) Valid() bool {
	switch op {
	case OpLessThan, OpLessThanEqual, OpGreaterThan, OpGreaterThanEqual,
		OpEqual, OpNotEqual, OpContains, OpNotContains, OpStartsWith, OpNotStartsWith:
		return true
	default:
		return false
	}
}

// MatchKind discriminates the match strategy of an ExtendedOperator.
type MatchKind uint8

const (
	// MatchKindNone selects the built-in comparison semantics for the operator.
	MatchKindNone MatchKind = iota
	// MatchKindDate compares operands by calendar date, ignoring time of day.
	MatchKindDate
	// MatchKindDatetime compares operands as timestamps with millisecond precision.
	MatchKindDatetime
	// MatchKindFunc delegates the comparison to a MatchFunc.
	MatchKindFunc
)

// String returns a human-readable name for the match kind.
func (k MatchKind) String() string {
	switch k {
	case MatchKindNone:
		return "none"
	case MatchKindDate:
		return "date"
	case MatchKindDatetime:
		return "datetime"
	case MatchKindFunc:
		return "func"
	default:
		return "invalid"
	}
}

// MatchFunc is a custom comparison between an item's property value and a
// token value. The item value arrives exactly as stored, without the falsy
// normalization applied on the built-in path.
type MatchFunc func(itemValue, tokenValue any) bool

// ExtendedOperator pairs an operator symbol with its match strategy.
//
// The zero Match kind selects the built-in semantics. Prefer the Plain,
// DateMatch, DatetimeMatch and CustomMatch constructors over building
// values by hand.
type ExtendedOperator struct {
	Operator  Operator
	Match     MatchKind
	MatchFunc MatchFunc
}

// Plain returns an ExtendedOperator with the built-in comparison semantics.
func Plain(op Operator) ExtendedOperator {
	return ExtendedOperator{Operator: op}
}

// DateMatch returns an ExtendedOperator comparing by calendar date.
// Only the relational and equality operators produce matches on this path.
func DateMatch(op Operator) ExtendedOperator {
	return ExtendedOperator{Operator: op, Match: MatchKindDate}
}

// DatetimeMatch returns an ExtendedOperator comparing timestamps.
// Only the relational and equality operators produce matches on this path.
func DatetimeMatch(op Operator) ExtendedOperator {
	return ExtendedOperator{Operator: op, Match: MatchKindDatetime}
}

// CustomMatch returns an ExtendedOperator that delegates matching to fn.
// fn receives the raw item value and the token value; its result is
// returned verbatim, including for the negated operator symbols.
func CustomMatch(op Operator, fn MatchFunc) ExtendedOperator {
	return ExtendedOperator{Operator: op, Match: MatchKindFunc, MatchFunc: fn}
}
