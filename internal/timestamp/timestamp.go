// Package timestamp parses the timestamp formats that appear in syslog
// payloads, resolving missing years against a reference instant.
//
// Grounded on gastrolog's internal/digester/timestamp package: the same
// "find a prefix, then try a format-specific parser" shape, rebuilt around
// the decoding core's fixed probing order and its own year-resolution
// contract (which the teacher's digester does not need, since it always
// has a concrete current year to fall back on).
package timestamp

import (
	"regexp"
	"strconv"
	"time"
)

// monthByAbbrev maps 3-letter month abbreviations to time.Month.
var monthByAbbrev = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

var (
	isoRe = regexp.MustCompile(
		`^(?P<ts>(?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})T(?P<hour>\d{2}):(?P<minute>\d{2}):(?P<second>\d{2})(?:\.(?P<frac>\d{1,9}))?(?P<tz>Z|[+-]\d{2}:\d{2}))(?: (?P<remaining>.*))?$`)

	yearFirstRe = regexp.MustCompile(
		`^(?P<ts>(?P<year>\d{4}) (?P<month>[A-Z][a-z]{2}) (?P<day>[ 0-3]\d) (?P<hour>\d{2}):(?P<minute>\d{2}):(?P<second>\d{2})(?:\.(?P<frac>\d{1,6}))?)(?: (?P<remaining>.*))?$`)

	yearLastRe = regexp.MustCompile(
		`^(?P<ts>(?P<month>[A-Z][a-z]{2}) (?P<day>[ 0-3]\d) (?P<hour>\d{2}):(?P<minute>\d{2}):(?P<second>\d{2})(?:\.(?P<frac>\d{1,6}))? (?P<year>\d{4}))(?: (?P<remaining>.*))?$`)

	bsdRe = regexp.MustCompile(
		`^(?P<ts>(?P<month>[A-Z][a-z]{2}) (?P<day>[ 0-3]\d)(?: (?P<year>20\d{2}))? (?P<hour>\d{2}):(?P<minute>\d{2}):(?P<second>\d{2})(?:\.(?P<frac>\d{1,6}))?)(?: (?P<remaining>.*))?$`)

	epochRe = regexp.MustCompile(
		`^(?P<ts>(?P<epoch>\d{10,19})(?:(?P<sep>[.,])(?P<frac>\d{1,9}))?)(?: (?P<remaining>.*))?$`)
)

// ParseISO8601 parses a standalone ISO-8601 timestamp (as used verbatim by
// the RFC5424 TIMESTAMP field, already isolated by that grammar).
func ParseISO8601(s string, ref time.Time) (time.Time, bool) {
	m := matchNamed(isoRe, s)
	if m == nil || m["remaining"] != "" {
		return time.Time{}, false
	}
	return parseISO(m, ref)
}

// ParsePrefixed tries each supported family, in the probing order used by
// RFC3164, against the start of content. On a match it returns the parsed
// instant and whatever followed the timestamp (possibly empty).
func ParsePrefixed(content string, ref time.Time) (ts time.Time, remaining string, ok bool) {
	if m := matchNamed(isoRe, content); m != nil {
		if t, ok := parseISO(m, ref); ok {
			return t, m["remaining"], true
		}
	}
	if m := matchNamed(yearFirstRe, content); m != nil {
		if t, ok := parseYearFirst(m, ref); ok {
			return t, m["remaining"], true
		}
	}
	if m := matchNamed(yearLastRe, content); m != nil {
		if t, ok := parseYearLast(m, ref); ok {
			return t, m["remaining"], true
		}
	}
	if m := matchNamed(bsdRe, content); m != nil {
		if t, ok := parseBSD(m, ref); ok {
			return t, m["remaining"], true
		}
	}
	if m := matchNamed(epochRe, content); m != nil {
		if t, ok := parseEpoch(m); ok {
			return t, m["remaining"], true
		}
	}
	return time.Time{}, content, false
}

func matchNamed(re *regexp.Regexp, s string) map[string]string {
	match := re.FindStringSubmatch(s)
	if match == nil {
		return nil
	}
	out := make(map[string]string, len(match))
	for i, name := range re.SubexpNames() {
		if name != "" {
			out[name] = match[i]
		}
	}
	return out
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	v, _ := strconv.Atoi(s)
	return v
}

func refLocation(ref time.Time) *time.Location {
	if loc := ref.Location(); loc != nil {
		return loc
	}
	return time.UTC
}

func fracNanos(frac string) int {
	if frac == "" {
		return 0
	}
	for len(frac) < 9 {
		frac += "0"
	}
	n, _ := strconv.Atoi(frac[:9])
	return n
}

func parseISO(m map[string]string, ref time.Time) (time.Time, bool) {
	loc := time.UTC
	tz := m["tz"]
	if tz != "" && tz != "Z" {
		t, err := time.Parse("-07:00", tz)
		if err != nil {
			return time.Time{}, false
		}
		_, offset := t.Zone()
		loc = time.FixedZone(tz, offset)
	} else if tz == "" {
		loc = refLocation(ref)
	}
	t := time.Date(
		atoi(m["year"]), time.Month(atoi(m["month"])), atoi(m["day"]),
		atoi(m["hour"]), atoi(m["minute"]), atoi(m["second"]),
		fracNanos(m["frac"]), loc,
	)
	return t, true
}

func parseYearFirst(m map[string]string, ref time.Time) (time.Time, bool) {
	mon, ok := monthByAbbrev[m["month"]]
	if !ok {
		return time.Time{}, false
	}
	t := time.Date(
		atoi(m["year"]), mon, atoi(trimLeadingSpace(m["day"])),
		atoi(m["hour"]), atoi(m["minute"]), atoi(m["second"]),
		fracMicrosToNanos(m["frac"]), refLocation(ref),
	)
	return t, true
}

func parseYearLast(m map[string]string, ref time.Time) (time.Time, bool) {
	mon, ok := monthByAbbrev[m["month"]]
	if !ok {
		return time.Time{}, false
	}
	t := time.Date(
		atoi(m["year"]), mon, atoi(trimLeadingSpace(m["day"])),
		atoi(m["hour"]), atoi(m["minute"]), atoi(m["second"]),
		fracMicrosToNanos(m["frac"]), refLocation(ref),
	)
	return t, true
}

// parseBSD implements the year-optional family and, when the year is
// absent, the year-resolution contract: parse against ref.Year first; if
// the result is strictly after ref, or its month is strictly after ref's
// month and the gap from ref is not within 24 hours, reparse against
// ref.Year-1.
func parseBSD(m map[string]string, ref time.Time) (time.Time, bool) {
	mon, ok := monthByAbbrev[m["month"]]
	if !ok {
		return time.Time{}, false
	}
	day := atoi(trimLeadingSpace(m["day"]))
	hour, minute, second := atoi(m["hour"]), atoi(m["minute"]), atoi(m["second"])
	nanos := fracMicrosToNanos(m["frac"])
	loc := refLocation(ref)

	if m["year"] != "" {
		return time.Date(atoi(m["year"]), mon, day, hour, minute, second, nanos, loc), true
	}

	build := func(year int) time.Time {
		return time.Date(year, mon, day, hour, minute, second, nanos, loc)
	}

	year := ref.Year()
	t := build(year)
	if t.After(ref) {
		return build(year - 1), true
	}
	if mon > ref.Month() {
		diff := ref.Sub(t)
		if diff < 0 || diff >= 24*time.Hour {
			return build(year - 1), true
		}
	}
	return t, true
}

func parseEpoch(m map[string]string) (time.Time, bool) {
	epochStr := m["epoch"]
	frac := m["frac"]
	sep := m["sep"]

	epochVal, err := strconv.ParseInt(epochStr, 10, 64)
	if err != nil {
		return time.Time{}, false
	}

	if sep != "" {
		// Fractional seconds given explicitly with '.' or ',': epoch field
		// is seconds (or milliseconds when >= 13 digits, matching the
		// source's quirk of overlapping millisecond timestamps with a
		// decimal tail).
		if len(epochStr) >= 13 {
			seconds, err := strconv.ParseInt(epochStr[:10], 10, 64)
			if err != nil {
				return time.Time{}, false
			}
			millis := atoi(epochStr[10:13])
			micros := millis*1000 + atoi(padRight(frac, 3)[:3])
			return time.Unix(seconds, 0).UTC().Add(time.Duration(micros) * time.Microsecond), true
		}
		micros := atoi(padRight(frac, 6)[:6])
		return time.Unix(epochVal, 0).UTC().Add(time.Duration(micros) * time.Microsecond), true
	}

	switch {
	case len(epochStr) >= 19: // nanoseconds
		seconds, _ := strconv.ParseInt(epochStr[:10], 10, 64)
		micros := atoi(epochStr[10:16])
		nanoFraction := atoi(epochStr[16:19])
		if nanoFraction >= 500 {
			micros++
		}
		return time.Unix(seconds, 0).UTC().Add(time.Duration(micros) * time.Microsecond), true
	case len(epochStr) >= 16: // microseconds
		seconds, _ := strconv.ParseInt(epochStr[:10], 10, 64)
		micros := atoi(epochStr[10:16])
		return time.Unix(seconds, 0).UTC().Add(time.Duration(micros) * time.Microsecond), true
	case len(epochStr) >= 13: // milliseconds
		seconds, _ := strconv.ParseInt(epochStr[:10], 10, 64)
		millis := atoi(epochStr[10:13])
		return time.Unix(seconds, 0).UTC().Add(time.Duration(millis) * time.Millisecond), true
	default: // seconds
		return time.Unix(epochVal, 0).UTC(), true
	}
}

func trimLeadingSpace(s string) string {
	for len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	return s
}

func padRight(s string, n int) string {
	for len(s) < n {
		s += "0"
	}
	return s
}

// fracMicrosToNanos converts a decimal fraction of up to 6 digits
// (microsecond precision, as used by the year-first/year-last/BSD
// families) into nanoseconds.
func fracMicrosToNanos(frac string) int {
	if frac == "" {
		return 0
	}
	micros := atoi(padRight(frac, 6)[:6])
	return micros * 1000
}
