package decoder

import (
	"time"

	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
)

// Dispatcher holds the clock used when no framing decoder recognises a
// line and a plain envelope is returned instead. Production code should
// use NewDispatcher(time.Now); tests pin it to a fixed clock.
//
// Grounded on SPEC_FULL's clock-injection note (§9): the envelope's
// fallback Timestamp must come from an injected func() time.Time, not a
// bare call to time.Now, so decode behaviour is deterministic under test.
type Dispatcher struct {
	clock func() time.Time
}

// NewDispatcher builds a Dispatcher using clock for both CourierTimestamp
// construction and the plain-envelope fallback path.
func NewDispatcher(clock func() time.Time) *Dispatcher {
	return &Dispatcher{clock: clock}
}

// DecodeUnknown tries RFC5424, then RFC3164, then the base decoder, in
// that fixed order, returning the first non-nil result. If all three
// decline, it returns a plain envelope carrying the raw line as its
// Message.
func (d *Dispatcher) DecodeUnknown(line string) *model.Envelope {
	now := d.clock()
	cache := plugin.NewCache()

	if m := decodeRFC5424(line, now, cache); m != nil {
		return &m.Envelope
	}
	if m := decodeRFC3164(line, now, cache); m != nil {
		return &m.Envelope
	}
	if m := DecodeBase(line, now, cache); m != nil {
		return &m.Envelope
	}

	env := model.NewEnvelope(now, line)
	env.Timestamp = now
	return env
}

var defaultDispatcher = NewDispatcher(time.Now)

// DecodeUnknown is the package-level entry point, using the real
// wall-clock. Tests needing a fixed clock should construct their own
// Dispatcher via NewDispatcher instead.
func DecodeUnknown(line string) *model.Envelope {
	return defaultDispatcher.DecodeUnknown(line)
}
