// Package decoder implements the framing decoders and the unknown-format
// dispatcher built on top of priority extraction, timestamp parsing, and
// the plugin registry.
//
// Grounded on gastrolog's internal/ingester/syslogparse package for the
// overall "parse framing, build a typed record, hand off" shape, and on
// ziggiz_courier_handler_core's syslog_rfc_base_decoder /
// syslog_rfc3164_decoder / syslog_rfc5424_decoder for the framing
// semantics each function below reproduces.
package decoder

import (
	"time"

	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
	"github.com/ziggiz-courier/courier-decode/internal/priority"
)

// DecodeBase extracts the PRI field and builds a bare SyslogBase model
// from the residual, then runs the plugins registered for SyslogBaseType.
// Returns nil only if the priority field itself is malformed.
func DecodeBase(line string, now time.Time, cache *plugin.Cache) *model.SyslogBase {
	priStr, hasPri, residual, err := priority.Extract(line)
	if err != nil {
		return nil
	}
	facility, severity := priority.Decode(priStr, hasPri)

	m := &model.SyslogBase{
		Envelope: *model.NewEnvelope(now, residual),
		Facility: facility,
		Severity: severity,
	}
	if cache == nil {
		cache = plugin.NewCache()
	}
	plugin.Run(plugin.SyslogBaseType, m, cache)
	return m
}
