// Package propfilter compiles declarative property-filter queries into
// reusable predicates over map-shaped items.
//
// A configuration declares which properties are filterable and which
// comparison operators each property supports; a query is a flat list of
// tokens combined with AND or OR. The compiled predicate evaluates one item
// at a time, so it drops into any collection pipeline.
//
// # Quick Start
//
// Direct predicate construction:
//
//	cfg := propfilter.Schema().
//	    Text("name").
//	    Numeric("size").
//	    MustBuild()
//
//	p := propfilter.BuildPredicate(cfg, propfilter.And(
//	    propfilter.Contains("name", "web"),
//	    propfilter.Gte("size", 100),
//	))
//
//	ok, _ := p(propfilter.Item{"name": "web-01", "size": 250})
//
// Engine mode, with shared options:
//
//	eng, _ := propfilter.New(cfg,
//	    propfilter.WithWorkers(4),
//	    propfilter.WithLogLevel(slog.LevelDebug),
//	)
//	matched, _ := eng.Filter(ctx, items, query)
//
// # Operators
//
// Ten operator symbols are supported: <, <=, >, >=, =, !=, : (contains),
// !: (not contains), ^ (starts with) and !^ (not starts with). A property
// opts into each operator it supports; tokens using anything else simply do
// not match. Operators may carry a match strategy: date and datetime
// strategies compare parsed points in time, and custom functions receive
// the raw item value.
//
// # Free Text
//
// A token without a property key searches every property that supports the
// contains operator:
//
//	propfilter.FreeText("prod")     // any property contains "prod"
//	propfilter.NotFreeText("test")  // no property contains "test"
//
// # Comparison Semantics
//
// The built-in comparisons coerce across types the way text-sourced tokens
// need: "5" equals 5, booleans equal their rendered form, and substring
// matching is case-insensitive on stringified values. See the Predicate and
// BuildPredicate documentation for the exact rules.
//
// # Indexed Collections
//
// For repeated queries over a registered collection, Index maintains
// Roaring Bitmap posting lists per property value and answers equality
// queries by bitmap intersection or union, falling back to a scan whenever
// a token needs semantics the posting lists cannot reproduce:
//
//	ix, _ := propfilter.NewIndex(cfg)
//	ix.Set(1, propfilter.Item{"state": "running"})
//	ids, _ := ix.Search(ctx, propfilter.And(propfilter.Eq("state", "running")))
//
// # Key Features
//
//   - Declarative per-property operator allow-lists
//   - AND/OR token combination with free-text tokens
//   - Date, datetime and custom match strategies
//   - Loose cross-type comparison tuned for text-sourced tokens
//   - Roaring Bitmap inverted index with scan fallback
//   - Parallel collection filtering (errgroup)
//   - Pluggable codecs (encoding/json, goccy/go-json)
package propfilter
