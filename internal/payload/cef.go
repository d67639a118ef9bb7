package payload

import "strings"

// CEFEvent holds the parsed fields of a single ArcSight Common Event
// Format message.
type CEFEvent struct {
	Version         string
	DeviceVendor    string
	DeviceProduct   string
	DeviceVersion   string
	DeviceEventID   string
	Name            string
	Severity        string
	Extension       map[string]string
}

// ParseCEF parses a "CEF:Version|Vendor|Product|Version|EventID|Name|Severity|Extension"
// message. Returns nil if the header does not carry all 7 pipe-delimited
// fields.
//
// Grounded on the generic CEF plugin (generic/cef) and the CEF extension
// grammar shared with LEEF: a 7-field `|`-delimited header (with `\|` and
// `\\` escapes inside header fields) followed by a space-delimited
// key=value extension, where a "<key>Label" entry adds a field named by
// the label's value carrying <key>'s value, alongside both raw entries.
func ParseCEF(message string) *CEFEvent {
	if !strings.HasPrefix(message, "CEF:") {
		return nil
	}
	body := message[len("CEF:"):]

	fields, rest, ok := splitEscapedHeader(body, 7, '|')
	if !ok {
		return nil
	}

	ext := parseExtensionKV(rest, cefUnescapeExtValue)
	applyLabelExpansion(ext)

	return &CEFEvent{
		Version:       unescapePipes(fields[0]),
		DeviceVendor:  unescapePipes(fields[1]),
		DeviceProduct: unescapePipes(fields[2]),
		DeviceVersion: unescapePipes(fields[3]),
		DeviceEventID: unescapePipes(fields[4]),
		Name:          unescapePipes(fields[5]),
		Severity:      unescapePipes(fields[6]),
		Extension:     ext,
	}
}

// splitEscapedHeader splits s into n fields delimited by sep, honoring a
// backslash escape for sep and for the backslash itself. Returns the
// fields and whatever text followed the nth delimiter.
func splitEscapedHeader(s string, n int, sep byte) (fields []string, rest string, ok bool) {
	fields = make([]string, 0, n)
	var cur strings.Builder
	i := 0
	for i < len(s) && len(fields) < n {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			cur.WriteByte(s[i])
			cur.WriteByte(s[i+1])
			i += 2
		case c == sep:
			fields = append(fields, cur.String())
			cur.Reset()
			i++
		default:
			cur.WriteByte(c)
			i++
		}
	}
	if len(fields) != n {
		return nil, "", false
	}
	return fields, s[i:], true
}

func unescapePipes(s string) string {
	s = strings.ReplaceAll(s, `\|`, "|")
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}

func cefUnescapeExtValue(s string) string {
	s = strings.ReplaceAll(s, `\=`, "=")
	s = strings.ReplaceAll(s, `\|`, "|")
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "\r")
	s = strings.ReplaceAll(s, `\t`, "\t")
	s = strings.ReplaceAll(s, `\s`, " ")
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}

// parseExtensionKV scans a CEF/LEEF extension body of escaped-space
// delimited key=value pairs. A value runs until the next token that looks
// like "<key>=" (no unescaped '=' inside a bare value token), matching the
// reference parsers' lookahead-based splitting.
func parseExtensionKV(s string, unescape func(string) string) map[string]string {
	s = strings.TrimSpace(s)
	if s == "" {
		return map[string]string{}
	}

	tokens := splitUnescapedSpaces(s)
	result := make(map[string]string)

	var pendingKey string
	var valueParts []string
	flush := func() {
		if pendingKey != "" {
			result[pendingKey] = unescape(strings.Join(valueParts, " "))
		}
	}

	for _, tok := range tokens {
		if idx := unescapedEquals(tok); idx >= 0 && looksLikeKey(tok[:idx]) {
			flush()
			pendingKey = tok[:idx]
			valueParts = []string{tok[idx+1:]}
			continue
		}
		valueParts = append(valueParts, tok)
	}
	flush()

	return result
}

func splitUnescapedSpaces(s string) []string {
	var tokens []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			cur.WriteByte(s[i])
			cur.WriteByte(s[i+1])
			i++
			continue
		}
		if s[i] == ' ' {
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteByte(s[i])
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

func unescapedEquals(tok string) int {
	for i := 0; i < len(tok); i++ {
		if tok[i] == '\\' {
			i++
			continue
		}
		if tok[i] == '=' {
			return i
		}
	}
	return -1
}

// looksLikeKey rejects candidate keys containing whitespace remnants; CEF
// extension keys are short bare identifiers.
func looksLikeKey(s string) bool {
	return s != "" && !strings.ContainsAny(s, " \t")
}

// applyLabelExpansion handles "<key>Label" entries: the custom field named
// by the "Label" value is added alongside the raw <key> entry. Both the
// base field and the Label field itself remain in ext.
func applyLabelExpansion(ext map[string]string) {
	for k, label := range ext {
		if !strings.HasSuffix(k, "Label") {
			continue
		}
		base := strings.TrimSuffix(k, "Label")
		if val, ok := ext[base]; ok {
			ext[label] = val
		}
	}
}
