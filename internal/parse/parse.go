package parse

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ObjectFragment parses a possibly-partial JSON object fragment into a map.
// An empty or whitespace-only fragment yields an empty object. A fragment
// strict decoding rejects is repaired with jsonrepair and retried. When even
// the repaired form does not decode to an object, an empty object is returned
// rather than an error: streamed fragments stand alone and a later fragment
// may complete them.
func ObjectFragment(fragment string) map[string]any {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return map[string]any{}
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(fragment), &args); err == nil && args != nil {
		return args
	}

	repaired, err := jsonrepair.JSONRepair(fragment)
	if err != nil {
		return map[string]any{}
	}
	args = nil
	if err := json.Unmarshal([]byte(repaired), &args); err != nil || args == nil {
		return map[string]any{}
	}
	return args
}
