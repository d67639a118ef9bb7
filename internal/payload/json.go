package payload

import (
	"encoding/json"
	"strings"
)

// ParseJSON parses a native JSON object payload. Only accepts inputs that,
// after trimming, start with `{` and end with `}`. Tries a strict parse
// first; on failure, repairs common escape confusion and retries once.
// Returns nil on any remaining failure.
//
// Grounded on gastrolog's internal/tokenizer/json.go (stdlib
// encoding/json.Unmarshal into map[string]any is the teacher's own choice
// here, not a fallback) and on ziggiz_courier_handler_core's json_parser,
// whose escape-repair fallback chain this mirrors.
func ParseJSON(message string) map[string]any {
	trimmed := strings.TrimSpace(message)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return nil
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(trimmed), &out); err == nil {
		return out
	}

	fixed := trimmed
	fixed = strings.ReplaceAll(fixed, `\r\n`, "\r\n")
	fixed = strings.ReplaceAll(fixed, `\n`, "\n")
	fixed = strings.ReplaceAll(fixed, `\"`, `"`)
	fixed = strings.ReplaceAll(fixed, `\/`, "/")
	fixed = strings.ReplaceAll(fixed, `\\`, `\`)

	if err := json.Unmarshal([]byte(fixed), &out); err == nil {
		return out
	}
	return nil
}
