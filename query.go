package propfilter

// Operation combines the per-token results of a query.
type Operation string

const (
	// OperationAnd requires every token to match.
	OperationAnd Operation = "and"
	// OperationOr requires at least one token to match.
	OperationOr Operation = "or"
)

// Token is one atomic filter condition.
//
// A token with a PropertyKey tests that property's value with Operator.
// A token without a PropertyKey is a free-text token, tested against every
// property that supports OpContains.
type Token struct {
	PropertyKey string   `json:"propertyKey,omitempty"`
	Operator    Operator `json:"operator"`
	Value       any      `json:"value"`
}

// Query is a parsed property-filter query: a flat token list combined under
// a single logical operation.
//
// The zero Query matches every item. Any Operation other than OperationAnd
// combines tokens with OR semantics.
type Query struct {
	Tokens    []Token   `json:"tokens"`
	Operation Operation `json:"operation"`
}

// And returns a Query combining tokens with AND semantics.
func And(tokens ...Token) Query {
	return Query{Tokens: tokens, Operation: OperationAnd}
}

// Or returns a Query combining tokens with OR semantics.
func Or(tokens ...Token) Query {
	return Query{Tokens: tokens, Operation: OperationOr}
}

// Eq returns a token matching items whose property value equals value.
func Eq(key string, value any) Token {
	return Token{PropertyKey: key, Operator: OpEqual, Value: value}
}

// Ne returns a token matching items whose property value differs from value.
func Ne(key string, value any) Token {
	return Token{PropertyKey: key, Operator: OpNotEqual, Value: value}
}

// Lt returns a token matching items whose property value orders before value.
func Lt(key string, value any) Token {
	return Token{PropertyKey: key, Operator: OpLessThan, Value: value}
}

// Lte returns a token matching items whose property value orders before or equals value.
func Lte(key string, value any) Token {
	return Token{PropertyKey: key, Operator: OpLessThanEqual, Value: value}
}

// Gt returns a token matching items whose property value orders after value.
func Gt(key string, value any) Token {
	return Token{PropertyKey: key, Operator: OpGreaterThan, Value: value}
}

// Gte returns a token matching items whose property value orders after or equals value.
func Gte(key string, value any) Token {
	return Token{PropertyKey: key, Operator: OpGreaterThanEqual, Value: value}
}

// Contains returns a token matching items whose property value contains value.
func Contains(key string, value any) Token {
	return Token{PropertyKey: key, Operator: OpContains, Value: value}
}

// NotContains returns the negation of Contains.
func NotContains(key string, value any) Token {
	return Token{PropertyKey: key, Operator: OpNotContains, Value: value}
}

// StartsWith returns a token matching items whose property value starts with value.
func StartsWith(key string, value any) Token {
	return Token{PropertyKey: key, Operator: OpStartsWith, Value: value}
}

// NotStartsWith returns the negation of StartsWith.
func NotStartsWith(key string, value any) Token {
	return Token{PropertyKey: key, Operator: OpNotStartsWith, Value: value}
}

// FreeText returns a free-text token matching items where any property
// supporting OpContains contains value.
func FreeText(value any) Token {
	return Token{Operator: OpContains, Value: value}
}

// NotFreeText returns the negation of FreeText.
func NotFreeText(value any) Token {
	return Token{Operator: OpNotContains, Value: value}
}
