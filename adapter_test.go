package propfilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youdz/propfilter"
	"github.com/youdz/propfilter/codec"
)

func TestItemFromAny(t *testing.T) {
	t.Run("ItemPassthrough", func(t *testing.T) {
		in := propfilter.Item{"name": "web-01"}
		out, err := propfilter.ItemFromAny(in)
		require.NoError(t, err)
		assert.Equal(t, in, out)

		// Same map, not a copy.
		out["state"] = "running"
		assert.Equal(t, "running", in["state"])
	})

	t.Run("MapPassthrough", func(t *testing.T) {
		out, err := propfilter.ItemFromAny(map[string]any{"size": 5})
		require.NoError(t, err)
		assert.Equal(t, 5, out["size"])
	})

	t.Run("StringMapWidened", func(t *testing.T) {
		out, err := propfilter.ItemFromAny(map[string]string{"state": "running"})
		require.NoError(t, err)
		assert.Equal(t, "running", out["state"])
	})

	t.Run("StructViaTags", func(t *testing.T) {
		type instance struct {
			Name    string `json:"name"`
			Size    int    `json:"size"`
			Ignored string `json:"-"`
			private string
		}
		out, err := propfilter.ItemFromAny(instance{Name: "web-01", Size: 512, Ignored: "x", private: "y"})
		require.NoError(t, err)

		assert.Equal(t, "web-01", out["name"])
		assert.Equal(t, float64(512), out["size"], "numbers decode as float64")
		assert.NotContains(t, out, "Ignored")
		assert.NotContains(t, out, "private")
	})

	t.Run("Nil", func(t *testing.T) {
		_, err := propfilter.ItemFromAny(nil)
		require.Error(t, err)
	})

	t.Run("NonObject", func(t *testing.T) {
		_, err := propfilter.ItemFromAny("just a string")
		require.Error(t, err)
	})

	t.Run("Unencodable", func(t *testing.T) {
		_, err := propfilter.ItemFromAny(make(chan int))
		require.Error(t, err)
	})
}

func TestItemsFromAny(t *testing.T) {
	type instance struct {
		Name string `json:"name"`
	}

	items, err := propfilter.ItemsFromAny([]instance{{Name: "a"}, {Name: "b"}})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0]["name"])
	assert.Equal(t, "b", items[1]["name"])

	_, err = propfilter.ItemsFromAny([]any{instance{Name: "a"}, "oops"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
}

func TestQueryWireFormat(t *testing.T) {
	wire := []byte(`{
		"tokens": [
			{"propertyKey": "state", "operator": "=", "value": "running"},
			{"propertyKey": "size", "operator": ">=", "value": 512},
			{"operator": ":", "value": "web"}
		],
		"operation": "and"
	}`)

	q, err := propfilter.DecodeQuery(nil, wire)
	require.NoError(t, err)

	require.Len(t, q.Tokens, 3)
	assert.Equal(t, propfilter.OperationAnd, q.Operation)
	assert.Equal(t, propfilter.Eq("state", "running"), q.Tokens[0])
	assert.Equal(t, propfilter.OpGreaterThanEqual, q.Tokens[1].Operator)
	assert.Equal(t, float64(512), q.Tokens[1].Value)
	assert.Equal(t, "", q.Tokens[2].PropertyKey, "free-text token has no property key")

	// Free-text tokens stay free-text through an encode/decode cycle: the
	// empty key is omitted, not round-tripped to a "" property.
	data, err := propfilter.EncodeQuery(nil, q)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "propertyKey\":\"\"")

	back, err := propfilter.DecodeQuery(codec.JSON{}, data)
	require.NoError(t, err)
	assert.Equal(t, q, back)

	_, err = propfilter.DecodeQuery(nil, []byte(`{"tokens":`))
	require.Error(t, err)
}

func TestDecodedQueryFiltersConvertedRecords(t *testing.T) {
	type instance struct {
		Name  string `json:"name"`
		State string `json:"state"`
		Size  int    `json:"size"`
	}

	cfg := propfilter.Schema().
		Text("name").
		Text("state").
		Numeric("size").
		MustBuild()

	q, err := propfilter.DecodeQuery(nil, []byte(
		`{"tokens":[{"propertyKey":"size","operator":">","value":500},{"operator":":","value":"web"}],"operation":"and"}`,
	))
	require.NoError(t, err)

	items, err := propfilter.ItemsFromAny([]instance{
		{Name: "web-01", State: "running", Size: 512},
		{Name: "db-01", State: "running", Size: 2048},
		{Name: "web-02", State: "stopped", Size: 128},
	})
	require.NoError(t, err)

	p := propfilter.BuildPredicate(cfg, q)
	var matched []string
	for _, item := range items {
		ok, err := p(item)
		require.NoError(t, err)
		if ok {
			matched = append(matched, item["name"].(string))
		}
	}
	assert.Equal(t, []string{"web-01"}, matched)
}
