package payload

import (
	"encoding/xml"
	"regexp"
	"strings"
)

var dtdNameRe = regexp.MustCompile(`<!DOCTYPE\s+(\w+)`)

// ParseXML decodes an XML document payload into a nested map, following the
// xmltodict convention: element attributes become `@name` keys, mixed
// text content becomes a `#text` key, and a DOCTYPE name (if present) is
// recorded under the reserved `_dtd_name` key. Returns nil if message is
// not well-formed XML.
//
// Grounded on ziggiz_courier_handler_core's xml_parser, which wraps
// Python's xmltodict; stdlib encoding/xml's token-level Decoder is the
// closest Go analogue capable of reproducing the same attribute/text
// convention without bringing in a non-pack XML-to-map library (see
// DESIGN.md).
func ParseXML(message string) map[string]any {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return nil
	}

	result := make(map[string]any)
	if m := dtdNameRe.FindStringSubmatch(trimmed); m != nil {
		result["_dtd_name"] = m[1]
	}

	dec := xml.NewDecoder(strings.NewReader(trimmed))
	root := false
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if start, ok := tok.(xml.StartElement); ok {
			value, err := decodeElement(dec, start)
			if err != nil {
				return nil
			}
			result[start.Name.Local] = value
			root = true
			break
		}
	}

	if !root {
		return nil
	}
	return result
}

// decodeElement recursively decodes the children of start (already
// consumed) into a map or string, xmltodict-style: a leaf with no
// attributes and no child elements collapses to its plain text; anything
// else becomes a map with `@attr` and `#text` keys alongside child
// element keys.
func decodeElement(dec *xml.Decoder, start xml.StartElement) (any, error) {
	attrs := make(map[string]any, len(start.Attr))
	for _, a := range start.Attr {
		attrs["@"+a.Name.Local] = a.Value
	}

	children := make(map[string]any)
	var text strings.Builder

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			value, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			mergeChild(children, t.Name.Local, value)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			trimmedText := strings.TrimSpace(text.String())
			if len(attrs) == 0 && len(children) == 0 {
				return trimmedText, nil
			}
			out := make(map[string]any, len(attrs)+len(children)+1)
			for k, v := range attrs {
				out[k] = v
			}
			for k, v := range children {
				out[k] = v
			}
			if trimmedText != "" {
				out["#text"] = trimmedText
			}
			return out, nil
		}
	}
}

// mergeChild handles repeated sibling elements by promoting the value to a
// list on the second occurrence, matching xmltodict's behavior.
func mergeChild(children map[string]any, name string, value any) {
	existing, ok := children[name]
	if !ok {
		children[name] = value
		return
	}
	if list, ok := existing.([]any); ok {
		children[name] = append(list, value)
		return
	}
	children[name] = []any{existing, value}
}
