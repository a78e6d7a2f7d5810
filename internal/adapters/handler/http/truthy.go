package http

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// truthy evaluates a raw JSON value the way a loosely typed client expects:
// null, false, zero, "" and empty collections are false, anything else is
// true. A missing value (nil raw) yields def.
func truthy(raw json.RawMessage, def bool) bool {
	if len(raw) == 0 {
		return def
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return def
	}

	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		return err != nil || f != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}
