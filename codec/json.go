package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Notes:
// - For items (map-like structures), JSON is stable and portable.
// - For arbitrary record types, JSON works for typical structs/maps/slices.
// - Numbers decode as float64, which matches the loose comparison rules.
//
// If you need custom encoding (e.g. protobuf/msgpack), implement Codec and
// pass it via the codec option where supported.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
var Default Codec = GoJSON{}
