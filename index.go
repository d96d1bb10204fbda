package propfilter

import (
	"context"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// Index combines item storage with an inverted index over property values,
// using Roaring Bitmaps as posting lists, for repeated filtering of a
// registered collection.
//
// Architecture:
//   - Primary storage: map[uint32]Item (items by ID)
//   - Inverted index: map[property]map[valueKey]*roaring.Bitmap
//
// Queries whose tokens all resolve to plain equality with exactly-indexable
// values are answered by bitmap intersection (AND) or union (OR).
// Everything else falls back to a predicate scan, so Search always agrees
// with BuildPredicate.
type Index struct {
	mu sync.RWMutex

	cfg *Config
	pm  PropertyMap

	// Primary item storage (id -> item)
	items map[uint32]Item

	// Inverted index for fast equality lookups
	// Structure: property -> valueKey -> bitmap of IDs
	inverted map[string]map[string]*roaring.Bitmap

	metrics MetricsCollector
	logger  *Logger
}

// NewIndex creates an empty Index for cfg. The constructor accepts the same
// options as New; codec and worker options have no effect here.
func NewIndex(cfg *Config, optFns ...Option) (*Index, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	opts := applyOptions(optFns)

	if !opts.disableValidation {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return &Index{
		cfg:      cfg,
		pm:       CompileProperties(cfg.Properties),
		items:    make(map[uint32]Item),
		inverted: make(map[string]map[string]*roaring.Bitmap),
		metrics:  opts.metricsCollector,
		logger:   opts.logger,
	}, nil
}

// Set stores the item under id and updates the inverted index.
// This replaces any existing item stored under the ID.
func (ix *Index) Set(id uint32, item Item) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if old, exists := ix.items[id]; exists {
		ix.removeFromIndexLocked(id, old)
	}

	ix.items[id] = item
	ix.addToIndexLocked(id, item)
}

// Get retrieves the item stored under id.
func (ix *Index) Get(id uint32) (Item, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	item, ok := ix.items[id]
	return item, ok
}

// Delete removes the item stored under id and reports whether it existed.
func (ix *Index) Delete(id uint32) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	item, exists := ix.items[id]
	if !exists {
		return false
	}

	ix.removeFromIndexLocked(id, item)
	delete(ix.items, id)
	return true
}

// Len returns the number of indexed items.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return len(ix.items)
}

// ToMap returns a copy of all items as a map. Useful for bulk export.
func (ix *Index) ToMap() map[uint32]Item {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	result := make(map[uint32]Item, len(ix.items))
	for id, item := range ix.items {
		result[id] = item
	}
	return result
}

// Search returns a bitmap of the IDs whose items match query.
func (ix *Index) Search(ctx context.Context, query Query) (*roaring.Bitmap, error) {
	start := time.Now()

	ix.mu.RLock()
	result, fastPath := ix.compileLocked(query)
	var err error
	if !fastPath {
		result, err = ix.scanLocked(ctx, query)
	}
	ix.mu.RUnlock()

	duration := time.Since(start)
	ix.metrics.RecordSearch(len(query.Tokens), fastPath, duration, err)
	if err != nil {
		ix.logger.LogSearch(ctx, len(query.Tokens), 0, fastPath, err)
		return nil, err
	}
	ix.logger.LogSearch(ctx, len(query.Tokens), result.GetCardinality(), fastPath, nil)

	return result, nil
}

// Items materializes the items selected by a Search result, in ascending
// ID order.
func (ix *Index) Items(ids *roaring.Bitmap) []Item {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	result := make([]Item, 0, ids.GetCardinality())
	it := ids.Iterator()
	for it.HasNext() {
		if item, ok := ix.items[it.Next()]; ok {
			result = append(result, item)
		}
	}
	return result
}

// FilterFunc returns a membership test over the IDs selected by query,
// suitable for post-filtering external result streams.
func (ix *Index) FilterFunc(ctx context.Context, query Query) (func(id uint32) bool, error) {
	ids, err := ix.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return ids.Contains, nil
}

// compileLocked answers a query from posting lists where possible: every
// token must name a property and resolve to plain equality with an
// exactly-indexable value. ok is false when any token needs the scan path.
// Caller must hold ix.mu.RLock().
func (ix *Index) compileLocked(query Query) (*roaring.Bitmap, bool) {
	if ix.cfg.FilteringFunc != nil {
		// A custom combinator can mean anything; only the scan honors it.
		return nil, false
	}
	if len(query.Tokens) == 0 {
		return ix.allLocked(), true
	}

	isAnd := query.Operation == OperationAnd
	var result *roaring.Bitmap

	for _, token := range query.Tokens {
		bm, ok := ix.tokenBitmapLocked(token)
		if !ok {
			return nil, false
		}

		if result == nil {
			result = bm.Clone()
		} else if isAnd {
			result.And(bm)
		} else {
			result.Or(bm)
		}

		// Early termination once an AND chain is empty
		if isAnd && result.IsEmpty() {
			return result, true
		}
	}

	return result, true
}

// tokenBitmapLocked resolves one token to its posting bitmap. The returned
// bitmap must not be mutated. ok is false when the token cannot be answered
// from the index. Caller must hold ix.mu.RLock().
func (ix *Index) tokenBitmapLocked(token Token) (*roaring.Bitmap, bool) {
	if token.PropertyKey == "" {
		// Free text touches every property; only the scan handles it.
		return nil, false
	}

	ext, ok := ix.pm.Resolve(token.PropertyKey, token.Operator)
	if !ok {
		// Unknown property or unregistered operator: matches nothing.
		return emptyBitmap, true
	}
	if token.Operator != OpEqual || ext.Match != MatchKindNone {
		return nil, false
	}

	key, ok := lookupKey(token.Value)
	if !ok {
		return nil, false
	}

	values, ok := ix.inverted[token.PropertyKey]
	if !ok {
		return emptyBitmap, true
	}
	bm, ok := values[key]
	if !ok {
		return emptyBitmap, true
	}
	return bm, true
}

var emptyBitmap = roaring.New()

// scanLocked evaluates a compiled predicate against every stored item.
// Caller must hold ix.mu.RLock().
func (ix *Index) scanLocked(ctx context.Context, query Query) (*roaring.Bitmap, error) {
	p := BuildPredicate(ix.cfg, query)
	result := roaring.New()

	for id, item := range ix.items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		matched, err := p(item)
		if err != nil {
			return nil, err
		}
		if matched {
			result.Add(id)
		}
	}
	return result, nil
}

// addToIndexLocked indexes the declared properties of an item. Undeclared
// item attributes are only visible to scans. Caller must hold ix.mu.Lock().
func (ix *Index) addToIndexLocked(id uint32, item Item) {
	for key := range ix.pm {
		keys := equalityKeys(fixupFalsy(item[key]))
		if len(keys) == 0 {
			continue
		}

		valueMap, ok := ix.inverted[key]
		if !ok {
			valueMap = make(map[string]*roaring.Bitmap)
			ix.inverted[key] = valueMap
		}

		for _, vk := range keys {
			bitmap, ok := valueMap[vk]
			if !ok {
				bitmap = roaring.New()
				valueMap[vk] = bitmap
			}
			bitmap.Add(id)
		}
	}
}

// removeFromIndexLocked removes an item from the inverted index.
// Caller must hold ix.mu.Lock().
func (ix *Index) removeFromIndexLocked(id uint32, item Item) {
	for key := range ix.pm {
		valueMap, ok := ix.inverted[key]
		if !ok {
			continue
		}

		for _, vk := range equalityKeys(fixupFalsy(item[key])) {
			bitmap, ok := valueMap[vk]
			if !ok {
				continue
			}

			bitmap.Remove(id)

			// Clean up empty bitmaps
			if bitmap.IsEmpty() {
				delete(valueMap, vk)
				if len(valueMap) == 0 {
					delete(ix.inverted, key)
				}
			}
		}
	}
}

// allLocked returns a bitmap of every stored ID.
// Caller must hold ix.mu.RLock().
func (ix *Index) allLocked() *roaring.Bitmap {
	all := roaring.New()
	for id := range ix.items {
		all.Add(id)
	}
	return all
}

// equalityKeys returns the posting keys an item value is indexed under. The
// value has already passed through fixupFalsy, so booleans and nil never
// appear here. Values are indexed under their string rendering and, when
// numeric or numeric-parsable, under a numeric key as well, so numeric
// lookups collapse 5, 5.0 and "5" into one posting list. Values of other
// types are not indexed; scans still see them.
func equalityKeys(v any) []string {
	if f, ok := toFloat(v); ok {
		if math.IsNaN(f) {
			return nil
		}
		return []string{numericKey(f)}
	}
	if s, ok := v.(string); ok {
		keys := []string{stringKey(s)}
		if f, ok := parseNumeric(s); ok && !math.IsNaN(f) {
			keys = append(keys, numericKey(f))
		}
		return keys
	}
	return nil
}

// lookupKey returns the posting key an equality token value selects. ok is
// false when no single posting list can answer the token: a numeric-parsable
// string token matches the same number spelled differently ("5" matches 5
// but not "05"), which only a scan reproduces.
func lookupKey(v any) (string, bool) {
	switch t := v.(type) {
	case bool:
		return numericKey(boolToFloat(t)), true
	case string:
		if _, ok := parseNumeric(t); ok {
			return "", false
		}
		return stringKey(t), true
	}
	if f, ok := toFloat(v); ok && !math.IsNaN(f) {
		return numericKey(f), true
	}
	return "", false
}

func numericKey(f float64) string {
	return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
}

func stringKey(s string) string {
	return "s:" + s
}

// IndexStats summarizes index shape and footprint.
type IndexStats struct {
	ItemCount        int    // Total items
	PropertyCount    int    // Number of indexed properties
	BitmapCount      int    // Total number of posting bitmaps
	TotalCardinality uint64 // Sum of all bitmap cardinalities
	MemoryBytes      uint64 // Estimated memory usage
}

// GetStats returns statistics about the index.
func (ix *Index) GetStats() IndexStats {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	stats := IndexStats{
		ItemCount:     len(ix.items),
		PropertyCount: len(ix.inverted),
	}

	for _, valueMap := range ix.inverted {
		for _, bitmap := range valueMap {
			stats.BitmapCount++
			stats.TotalCardinality += bitmap.GetCardinality()
			stats.MemoryBytes += bitmap.GetSizeInBytes()
		}
	}

	return stats
}
