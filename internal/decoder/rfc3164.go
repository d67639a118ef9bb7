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

// tagPattern recognises the "[HOST ]{APP[PROCID]: }REMAINDER" shape of a
// BSD-style syslog body once the timestamp has already been stripped.
var tagPattern = regexp.MustCompile(
	`^(?:(?P<host>[A-Fa-f0-9:]{6,}|[A-Za-z0-9\-.]+) )?(?:(?P<app>[^\[ ]+)?(?:\[(?P<procid>[^\]]+)\])?: )?(?P<remaining>.*)$`)

var commonWords = map[string]bool{
	"this": true, "these": true, "that": true, "those": true, "the": true,
	"test": true, "testing": true, "invalid": true, "error": true,
	"warning": true, "trace": true, "debug": true, "info": true,
	"notice": true, "alert": true, "critical": true, "emergency": true,
	"panic": true,
}

// parseHostnameTag splits message into (hostname, appName, procID,
// remaining message), rejecting a hostname hypothesis that is a common
// English word with no tag to corroborate it.
func parseHostnameTag(message string) (hostname, appName, procID, remaining string, found bool) {
	m := tagPattern.FindStringSubmatch(message)
	if m == nil {
		return "", "", "", message, false
	}
	names := tagPattern.SubexpNames()
	group := func(name string) string {
		for i, n := range names {
			if n == name {
				return m[i]
			}
		}
		return ""
	}

	hostname = group("host")
	appName = group("app")
	procID = group("procid")
	remaining = group("remaining")

	if appName == "" && procID == "" && hostname != "" &&
		strings.HasPrefix(message, hostname+" "+remaining) {
		if commonWords[strings.ToLower(hostname)] {
			return "", "", "", message, false
		}
	}

	if hostname != "" {
		hostname = textcase.Lower(hostname)
	}
	return hostname, appName, procID, remaining, hostname != "" || appName != "" || procID != ""
}

// DecodeRFC3164 decodes a BSD-style syslog line. Returns nil if no
// timestamp and no hostname/tag component could be recognised at all,
// deferring to the base decoder.
func DecodeRFC3164(line string, cache *plugin.Cache) *model.RFC3164Message {
	return decodeRFC3164(line, time.Now(), cache)
}

func decodeRFC3164(line string, now time.Time, cache *plugin.Cache) *model.RFC3164Message {
	priStr, hasPri, residual, err := priority.Extract(line)
	if err != nil {
		return nil
	}
	facility, severity := priority.Decode(priStr, hasPri)

	ts, remaining, tsOK := timestamp.ParsePrefixed(residual, now)

	var hostname, appName, procID, message string
	var haveTag bool
	if tsOK {
		hostname, appName, procID, message, haveTag = parseHostnameTag(remaining)
	} else {
		message = residual
	}

	if !tsOK && !haveTag {
		return nil
	}

	env := model.NewEnvelope(now, message)
	if tsOK {
		env.Timestamp = ts
	}

	m := &model.RFC3164Message{
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
	}

	if cache == nil {
		cache = plugin.NewCache()
	}
	plugin.Run(plugin.RFC3164Type, m, cache)
	return m
}
