package decoder

import (
	"regexp"
	"strings"
	"time"

	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
	"github.com/ziggiz-courier/courier-decode/internal/priority"
	"github.com/ziggiz-courier/courier-decode/internal/textcase"
	"github.com/ziggiz-courier/courier-decode/internal/timestamp"
)

var messagePattern = regexp.MustCompile(
	`^(?P<version>1) (?P<timestamp>\S+) ` +
		`(?P<hostname>\S+) (?P<app_name>\S+) (?P<proc_id>\S+) ` +
		`(?P<msg_id>\S+) (?P<structured_data>(?:\[.+?\])+|-) (?P<message>.*)$`)

var sdParamPattern = regexp.MustCompile(`(\S+)="((?:[^"\\]|\\.)*)"`)

// DecodeRFC5424 decodes a residual against the fixed RFC5424 grammar.
// Returns nil if the residual does not match at all.
func DecodeRFC5424(line string, cache *plugin.Cache) *model.RFC5424Message {
	return decodeRFC5424(line, time.Now(), cache)
}

func decodeRFC5424(line string, now time.Time, cache *plugin.Cache) *model.RFC5424Message {
	priStr, hasPri, residual, err := priority.Extract(line)
	if err != nil {
		return nil
	}
	facility, severity := priority.Decode(priStr, hasPri)

	m := messagePattern.FindStringSubmatch(residual)
	if m == nil {
		return nil
	}
	names := messagePattern.SubexpNames()
	field := func(name string) string {
		for i, n := range names {
			if n == name {
				return m[i]
			}
		}
		return ""
	}

	ts, ok := rfc5424Timestamp(field("timestamp"), now)
	if !ok {
		return nil
	}

	hostname := field("hostname")
	if hostname == "-" {
		hostname = ""
	} else {
		hostname = textcase.Lower(hostname)
	}

	appName := nilDash(field("app_name"))
	procID := nilDash(field("proc_id"))
	msgID := nilDash(field("msg_id"))
	structuredData := parseStructuredData(field("structured_data"))

	env := model.NewEnvelope(now, field("message"))
	env.Timestamp = ts

	out := &model.RFC5424Message{
		SyslogCommon: model.SyslogCommon{
			SyslogBase: model.SyslogBase{
				Envelope: *env,
				Facility: facility,
				Severity: severity,
			},
			Hostname: hostname,
			AppName:  appName,
			ProcID:   procID,
		},
		MsgID:          msgID,
		StructuredData: structuredData,
	}

	if cache == nil {
		cache = plugin.NewCache()
	}
	plugin.Run(plugin.RFC5424Type, out, cache)
	return out
}

func nilDash(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

func rfc5424Timestamp(s string, now time.Time) (time.Time, bool) {
	if s == "-" {
		return now, true
	}
	return timestamp.ParseISO8601(s, now)
}

// parseStructuredData parses "[ID k1="v1" k2="v2"][ID2 ...]" into a
// mapping of identifier to parameter mapping. Returns nil for "-".
func parseStructuredData(sd string) map[string]map[string]string {
	if sd == "-" {
		return nil
	}
	trimmed := strings.TrimSuffix(strings.TrimPrefix(sd, "["), "]")
	elements := strings.Split(trimmed, "][")

	result := make(map[string]map[string]string)
	for _, element := range elements {
		if element == "" {
			continue
		}
		id, rest, found := strings.Cut(element, " ")
		if !found {
			continue
		}
		params := make(map[string]string)
		for _, m := range sdParamPattern.FindAllStringSubmatch(rest, -1) {
			params[m[1]] = m[2]
		}
		result[id] = params
	}
	return result
}
