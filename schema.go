package propfilter

import "fmt"

// Item is a single record under test: property values keyed by attribute
// name. Missing attributes read as nil.
type Item map[string]any

// Property declares one filterable property.
type Property struct {
	// Key is the item attribute the property reads.
	Key string

	// Operators lists the operators a query may apply to the property,
	// each optionally carrying a match strategy.
	Operators []ExtendedOperator

	// DefaultOperator seeds the property's operator set before Operators
	// are applied. Empty means OpEqual.
	DefaultOperator Operator
}

// Config declares the filterable properties and, optionally, a replacement
// for the default token combinator.
type Config struct {
	Properties []Property

	// FilteringFunc, when non-nil, replaces the default combinator
	// entirely. The compiled property map is not consulted in that case.
	FilteringFunc FilteringFunc
}

// Validate checks that the configuration is well formed: every property
// names a key, every operator symbol is one of the supported ten, and every
// MatchKindFunc descriptor carries a function.
//
// BuildPredicate never validates. A malformed descriptor surfaces during
// evaluation instead, as an error or a non-matching token. Validation is a
// construction-time convenience used by New and NewIndex.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	for i, p := range c.Properties {
		if p.Key == "" {
			return fmt.Errorf("propfilter: property %d: key must not be empty", i)
		}
		if p.DefaultOperator != "" && !p.DefaultOperator.Valid() {
			return fmt.Errorf("propfilter: property %q: invalid default operator %q", p.Key, p.DefaultOperator)
		}
		for _, ext := range p.Operators {
			if !ext.Operator.Valid() {
				return fmt.Errorf("propfilter: property %q: invalid operator %q", p.Key, ext.Operator)
			}
			switch ext.Match {
			case MatchKindNone, MatchKindDate, MatchKindDatetime:
			case MatchKindFunc:
				if ext.MatchFunc == nil {
					return fmt.Errorf("propfilter: property %q, operator %q: nil match func", p.Key, ext.Operator)
				}
			default:
				return fmt.Errorf("propfilter: property %q, operator %q: invalid match kind %d", p.Key, ext.Operator, uint8(ext.Match))
			}
		}
	}
	return nil
}

// OperatorSet maps the operator symbols registered for one property to
// their extended descriptors.
type OperatorSet map[Operator]ExtendedOperator

// PropertyMap is the compiled form of a property list: one OperatorSet per
// declared property key. It is built once per predicate construction and
// never mutated afterwards, so it is safe to share across goroutines.
type PropertyMap map[string]OperatorSet

// CompileProperties builds the PropertyMap for props.
//
// Each property's set is seeded with its default operator (OpEqual when
// unspecified) as a plain descriptor, then the declared operators are
// registered on top, later entries overwriting earlier ones. The seeded
// default is therefore replaced when the property declares the same symbol
// with a match strategy. Duplicate property keys follow the same rule: the
// last declaration wins.
func CompileProperties(props []Property) PropertyMap {
	pm := make(PropertyMap, len(props))
	for _, p := range props {
		ops := make(OperatorSet, len(p.Operators)+1)
		def := p.DefaultOperator
		if def == "" {
			def = OpEqual
		}
		ops[def] = Plain(def)
		for _, ext := range p.Operators {
			ops[ext.Operator] = ext
		}
		pm[p.Key] = ops
	}
	return pm
}

// Resolve returns the descriptor registered for op on the property key.
func (pm PropertyMap) Resolve(key string, op Operator) (ExtendedOperator, bool) {
	ops, ok := pm[key]
	if !ok {
		return ExtendedOperator{}, false
	}
	ext, ok := ops[op]
	return ext, ok
}
