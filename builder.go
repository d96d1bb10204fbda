// Package propfilter compiles declarative property-filter queries into predicates.
//
// This file implements predicate construction and the fluent schema builder.
// Builders are immutable - each method returns a new builder with the updated
// configuration.
package propfilter

import "slices"

// Predicate reports whether a single item satisfies a query. Predicates are
// stateless and safe for concurrent use.
//
// The error return surfaces configuration defects (unsupported match shapes
// or operator symbols) discovered during evaluation. Data-shaped anomalies,
// such as tokens naming unknown properties, never error; they simply do not
// match.
type Predicate func(item Item) (bool, error)

// FilteringFunc combines an item with a whole query. Config.FilteringFunc
// replaces the default combinator with one of these.
type FilteringFunc func(item Item, query Query) (bool, error)

// BuildPredicate compiles cfg and query into a reusable per-item predicate.
//
// A nil cfg means filtering is disabled and the returned Predicate is nil.
// The property map is compiled fresh on every call and captured by the
// returned closure; nothing is cached across calls, so concurrent builds
// over a shared Config do not interfere.
func BuildPredicate(cfg *Config, query Query) Predicate {
	if cfg == nil {
		return nil
	}
	filtering := cfg.FilteringFunc
	if filtering == nil {
		filtering = defaultFilteringFunc(CompileProperties(cfg.Properties))
	}
	return func(item Item) (bool, error) {
		return filtering(item, query)
	}
}

// defaultFilteringFunc builds the standard combinator over pm.
//
// AND over no tokens is vacuously true. OR over no tokens is also true, by
// an explicit special case: an empty query means "show everything", not
// "hide everything". Evaluation short-circuits, so a token that would error
// is never reached once the outcome is decided.
func defaultFilteringFunc(pm PropertyMap) FilteringFunc {
	return func(item Item, query Query) (bool, error) {
		if query.Operation == OperationAnd {
			for _, token := range query.Tokens {
				matched, err := evalToken(token, item, pm)
				if err != nil || !matched {
					return false, err
				}
			}
			return true, nil
		}

		if len(query.Tokens) == 0 {
			return true, nil
		}
		for _, token := range query.Tokens {
			matched, err := evalToken(token, item, pm)
			if err != nil {
				return false, err
			}
			if matched {
				return true, nil
			}
		}
		return false, nil
	}
}

// Schema creates a new schema builder.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration. This ensures thread-safety and prevents accidental
// state sharing.
//
// Example:
//
//	cfg, err := propfilter.Schema().
//	    Text("name").
//	    Numeric("size").
//	    Date("launched").
//	    Build()
func Schema() SchemaBuilder {
	return SchemaBuilder{}
}

// SchemaBuilder is an immutable fluent builder for assembling a Config.
// Each method returns a new builder with the updated configuration.
type SchemaBuilder struct {
	properties []Property
	filtering  FilteringFunc
}

// Property adds a property declaration as-is.
func (b SchemaBuilder) Property(p Property) SchemaBuilder {
	b.properties = append(slices.Clip(b.properties), p)
	return b
}

// Text adds a property supporting equality, substring and prefix matching.
func (b SchemaBuilder) Text(key string) SchemaBuilder {
	return b.Property(Property{
		Key: key,
		Operators: []ExtendedOperator{
			Plain(OpEqual), Plain(OpNotEqual),
			Plain(OpContains), Plain(OpNotContains),
			Plain(OpStartsWith), Plain(OpNotStartsWith),
		},
	})
}

// Numeric adds a property supporting equality and relational ordering.
func (b SchemaBuilder) Numeric(key string) SchemaBuilder {
	return b.Property(Property{
		Key: key,
		Operators: []ExtendedOperator{
			Plain(OpEqual), Plain(OpNotEqual),
			Plain(OpLessThan), Plain(OpLessThanEqual),
			Plain(OpGreaterThan), Plain(OpGreaterThanEqual),
		},
	})
}

// Date adds a property whose comparisons ignore time of day.
func (b SchemaBuilder) Date(key string) SchemaBuilder {
	return b.Property(Property{
		Key: key,
		Operators: []ExtendedOperator{
			DateMatch(OpEqual), DateMatch(OpNotEqual),
			DateMatch(OpLessThan), DateMatch(OpLessThanEqual),
			DateMatch(OpGreaterThan), DateMatch(OpGreaterThanEqual),
		},
	})
}

// Datetime adds a property compared as timestamps with millisecond precision.
func (b SchemaBuilder) Datetime(key string) SchemaBuilder {
	return b.Property(Property{
		Key: key,
		Operators: []ExtendedOperator{
			DatetimeMatch(OpEqual), DatetimeMatch(OpNotEqual),
			DatetimeMatch(OpLessThan), DatetimeMatch(OpLessThanEqual),
			DatetimeMatch(OpGreaterThan), DatetimeMatch(OpGreaterThanEqual),
		},
	})
}

// Custom adds a property with an explicit operator list.
func (b SchemaBuilder) Custom(key string, ops ...ExtendedOperator) SchemaBuilder {
	return b.Property(Property{Key: key, Operators: ops})
}

// Filtering replaces the default token combinator.
func (b SchemaBuilder) Filtering(fn FilteringFunc) SchemaBuilder {
	b.filtering = fn
	return b
}

// Build assembles and validates the Config.
func (b SchemaBuilder) Build() (*Config, error) {
	cfg := &Config{
		Properties:    b.properties,
		FilteringFunc: b.filtering,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustBuild assembles the Config, panicking on error.
func (b SchemaBuilder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}
