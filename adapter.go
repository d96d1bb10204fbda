package propfilter

import (
	"fmt"

	"github.com/youdz/propfilter/codec"
)

// ItemFromAny converts an arbitrary record into an Item using codec.Default.
//
// Items and map[string]any values pass through without copying,
// map[string]string is widened, and any other value (typically a struct) is
// round-tripped through the codec, so field visibility and naming follow
// its struct tags. Values that do not encode to an object fail.
func ItemFromAny(v any) (Item, error) {
	return itemFromAny(v, codec.Default)
}

// ItemsFromAny converts a record slice into Items using codec.Default.
func ItemsFromAny[T any](records []T) ([]Item, error) {
	items := make([]Item, len(records))
	for i, rec := range records {
		item, err := ItemFromAny(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		items[i] = item
	}
	return items, nil
}

func itemFromAny(v any, c codec.Codec) (Item, error) {
	switch t := v.(type) {
	case nil:
		return nil, fmt.Errorf("propfilter: cannot convert nil to item")
	case Item:
		return t, nil
	case map[string]any:
		return Item(t), nil
	case map[string]string:
		item := make(Item, len(t))
		for k, val := range t {
			item[k] = val
		}
		return item, nil
	}

	data, err := c.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("propfilter: convert item: %w", err)
	}
	var item Item
	if err := c.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("propfilter: convert item: %w", err)
	}
	return item, nil
}

// DecodeQuery decodes the wire form of a query, e.g.
//
//	{"tokens":[{"propertyKey":"state","operator":"=","value":"running"}],"operation":"and"}
//
// A nil codec means codec.Default.
func DecodeQuery(c codec.Codec, data []byte) (Query, error) {
	if c == nil {
		c = codec.Default
	}
	var q Query
	if err := c.Unmarshal(data, &q); err != nil {
		return Query{}, fmt.Errorf("propfilter: decode query: %w", err)
	}
	return q, nil
}

// EncodeQuery encodes q into its wire form. A nil codec means codec.Default.
func EncodeQuery(c codec.Codec, q Query) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	data, err := c.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("propfilter: encode query: %w", err)
	}
	return data, nil
}
