package payload

import "strings"

// LEEFEvent holds the parsed fields of a single IBM QRadar Log Event
// Extended Format message (1.0 or 2.0).
type LEEFEvent struct {
	Version       string
	Vendor        string
	Product       string
	ProductVer    string
	EventID       string
	EventCategory string // LEEF 2.0 only; empty otherwise
	Extension     map[string]string
}

// ParseLEEF1 parses a "LEEF:1.0|Vendor|Product|Version|EventID|Extension"
// message. The extension uses tab as its field delimiter when present,
// falling back to space otherwise.
//
// Grounded on the generic LEEF1 plugin (generic/leef1) and
// leef_1_parser.py: a 5-field header, then an extension whose delimiter is
// chosen by probing for a literal tab before falling back to space, with
// `\=`, `\|`, `\\`, `\n`, `\r`, `\t` escapes.
func ParseLEEF1(message string) *LEEFEvent {
	if !strings.HasPrefix(message, "LEEF:") {
		return nil
	}
	body := message[len("LEEF:"):]

	fields, rest, ok := splitEscapedHeader(body, 5, '|')
	if !ok {
		return nil
	}

	ext := parseLEEFExtension(rest, leefUnescapeValue)

	return &LEEFEvent{
		Version:    unescapePipes(fields[0]),
		Vendor:     unescapePipes(fields[1]),
		Product:    unescapePipes(fields[2]),
		ProductVer: unescapePipes(fields[3]),
		EventID:    unescapePipes(fields[4]),
		Extension:  ext,
	}
}

func leefUnescapeValue(s string) string {
	s = strings.ReplaceAll(s, `\=`, "=")
	s = strings.ReplaceAll(s, `\|`, "|")
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "\r")
	s = strings.ReplaceAll(s, `\t`, "\t")
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}

// parseLEEFExtension splits the extension body on tab when one is
// present, else on unescaped spaces, then parses it as key=value pairs,
// applying the Label-expansion convention shared with CEF.
func parseLEEFExtension(s string, unescape func(string) string) map[string]string {
	s = strings.TrimSpace(s)
	if s == "" {
		return map[string]string{}
	}

	var result map[string]string
	if strings.Contains(s, "\t") {
		result = make(map[string]string)
		for _, tok := range strings.Split(s, "\t") {
			if idx := unescapedEquals(tok); idx >= 0 {
				result[tok[:idx]] = unescape(tok[idx+1:])
			}
		}
	} else {
		result = parseExtensionKV(s, unescape)
	}

	applyLabelExpansion(result)
	return result
}
