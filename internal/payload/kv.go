package payload

import "strings"

// ParseKV parses a space-separated "key=value" payload. Values may be bare
// (ending at the next unescaped whitespace) or double-quoted, with `\"` and
// `\\` escapes. Stray tokens without `=` are skipped. Returns nil if the
// message contains no `=` at all or nothing could be extracted.
//
// Grounded on gastrolog's internal/tokenizer (ASCII byte-scan style) and on
// ziggiz_courier_handler_core's KVParser, whose character-by-character
// scan this mirrors directly.
func ParseKV(message string) map[string]string {
	if !strings.Contains(message, "=") {
		return nil
	}

	result := make(map[string]string)
	n := len(message)
	i := 0

	for i < n {
		for i < n && isSpace(message[i]) {
			i++
		}
		if i >= n {
			break
		}

		keyStart := i
		for i < n && message[i] != '=' && !isSpace(message[i]) {
			i++
		}
		key := message[keyStart:i]

		if key == "" || i >= n || message[i] != '=' {
			// Not a valid key=value token; skip to the next whitespace.
			for i < n && !isSpace(message[i]) {
				i++
			}
			continue
		}
		i++ // skip '='

		var value string
		if i < n && message[i] == '"' {
			i++
			var b strings.Builder
			for i < n {
				if message[i] == '"' {
					break
				}
				if message[i] == '\\' && i+1 < n {
					b.WriteByte(message[i+1])
					i += 2
					continue
				}
				b.WriteByte(message[i])
				i++
			}
			i++ // skip closing quote
			value = b.String()
		} else {
			valueStart := i
			for i < n && !isSpace(message[i]) {
				if message[i] == '\\' && i+1 < n {
					i += 2
					continue
				}
				i++
			}
			value = message[valueStart:i]
		}
		result[key] = value
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
