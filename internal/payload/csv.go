package payload

import (
	"encoding/csv"
	"strings"
)

// ParseQuotedCSV parses a single line of RFC4180-style quoted CSV into an
// ordered list of fields. Returns nil if the message is empty or not valid
// CSV.
//
// Grounded on ziggiz_courier_handler_core's csv_parser.parse_quoted_csv_message,
// which defers to Python's stdlib csv module; stdlib encoding/csv is the
// direct Go analogue and no pack library offers anything better suited to
// a single-line RFC4180 read (see DESIGN.md).
func ParseQuotedCSV(message string) []string {
	if message == "" {
		return nil
	}
	r := csv.NewReader(strings.NewReader(message))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if err != nil || len(fields) == 0 {
		return nil
	}
	return fields
}
