// Package timespan parses, formats and edits elapsed-time text of the form
// d:hh:mm:ss.sss. Fields are read right to left, so "90" is ninety seconds
// and "2:00" is two minutes. The codec is pure; the owning UI translates
// caret offsets to field indices and back.
package timespan

import (
	"math"
	"strconv"
	"strings"
)

// State classifies a span text during editing.
type State int

// Validation states. Intermediate text is still being typed and must not be
// committed as-is; Invalid text can never become valid by appending.
const (
	Invalid State = iota
	Intermediate
	Acceptable
)

// String returns the state name for logging
func (s State) String() string {
	switch s {
	case Invalid:
		return "invalid"
	case Intermediate:
		return "intermediate"
	case Acceptable:
		return "acceptable"
	default:
		return "unknown"
	}
}

// Field identifies one colon-separated component of a span
type Field int

// Fields, ordered from the rightmost text position outward
const (
	FieldSeconds Field = iota
	FieldMinutes
	FieldHours
	FieldDays
)

// Span is a non-negative elapsed time decomposed into calendar-free fields.
// A normalized Span keeps Hours in 0..23, Minutes in 0..59 and Seconds in
// [0, 60) with sub-millisecond precision.
type Span struct {
	Days    uint64
	Hours   int
	Minutes int
	Seconds float64
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400

	maxFields = 4

	// commitEpsilon is the tolerance for treating two spans as equal
	commitEpsilon = 1e-3
)

// fieldScale returns the size of one field unit in seconds
func fieldScale(f Field) float64 {
	switch f {
	case FieldMinutes:
		return secondsPerMinute
	case FieldHours:
		return secondsPerHour
	case FieldDays:
		return secondsPerDay
	default:
		return 1
	}
}

// TotalSeconds returns the span collapsed to elapsed seconds
func (s Span) TotalSeconds() float64 {
	return float64(s.Days)*secondsPerDay +
		float64(s.Hours)*secondsPerHour +
		float64(s.Minutes)*secondsPerMinute +
		s.Seconds
}

// FromSeconds decomposes elapsed seconds into a normalized Span. Negative
// input clamps to zero.
func FromSeconds(total float64) Span {
	if total < 0 || math.IsNaN(total) {
		total = 0
	}

	whole := math.Floor(total)
	frac := total - whole
	rest := uint64(whole)

	s := Span{
		Days:    rest / secondsPerDay,
		Hours:   int(rest / secondsPerHour % 24),
		Minutes: int(rest / secondsPerMinute % 60),
	}
	s.Seconds = float64(rest%secondsPerMinute) + frac

	return s
}

// Normalize redistributes out-of-range field carries, e.g. 61 seconds
// becomes one minute and one second
func (s Span) Normalize() Span {
	return FromSeconds(s.TotalSeconds())
}

// Sanitize strips every character that cannot occur in a span from text,
// shifting cursor so it stays on the same remaining character. The decimal
// separator is kept so a seconds fraction survives.
func Sanitize(text string, cursor int) (string, int) {
	var b strings.Builder

	out := cursor

	for i, r := range text {
		if (r >= '0' && r <= '9') || r == ':' || r == '.' {
			b.WriteRune(r)
			continue
		}

		if i < cursor {
			out--
		}
	}

	clean := b.String()
	if out < 0 {
		out = 0
	}

	if out > len(clean) {
		out = len(clean)
	}

	return clean, out
}

// Parse validates span text and extracts its value. The returned span is
// meaningful for Acceptable and for Intermediate text whose fields all
// parsed; it is zero otherwise.
func Parse(text string) (State, Span) {
	text, _ = Sanitize(text, 0)

	if text == "" {
		return Intermediate, Span{}
	}

	parts := strings.Split(text, ":")
	if len(parts) > maxFields {
		return Invalid, Span{}
	}

	for _, p := range parts {
		if p == "" {
			// a field has not been entered yet
			return Intermediate, Span{}
		}
	}

	var span Span

	state := Acceptable

	seconds, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil {
		return Invalid, Span{}
	}
	if seconds > 60 {
		state = Intermediate
	}
	span.Seconds = seconds

	if len(parts) >= 2 {
		minutes, err := strconv.ParseUint(parts[len(parts)-2], 10, 16)
		if err != nil {
			return Invalid, Span{}
		}
		if minutes > 60 {
			state = Intermediate
		}
		span.Minutes = int(minutes)
	}

	if len(parts) >= 3 {
		hours, err := strconv.ParseUint(parts[len(parts)-3], 10, 16)
		if err != nil {
			return Invalid, Span{}
		}
		if hours > 24 {
			state = Intermediate
		}
		span.Hours = int(hours)
	}

	if len(parts) >= 4 {
		days, err := strconv.ParseUint(parts[len(parts)-4], 10, 64)
		if err != nil {
			return Invalid, Span{}
		}
		span.Days = days
	}

	return state, span
}

// Format renders a span in its shortest form, omitting leading all-zero
// fields: d:hh:mm:ss, hh:mm:ss, mm:ss or bare seconds. Seconds render as two
// integer digits unless a real fraction is present, then as 00.000. Totals
// within the commit tolerance of a whole second snap to it before the fields
// are cut, so a near-sixty seconds value carries into minutes instead of
// rendering as "60".
func Format(s Span) string {
	total := s.TotalSeconds()
	if snapped := math.Round(total); math.Abs(total-snapped) < commitEpsilon {
		total = snapped
	}

	s = FromSeconds(total)

	seconds := formatSeconds(s.Seconds)

	switch {
	case s.Days > 0:
		return strconv.FormatUint(s.Days, 10) + ":" + pad2(s.Hours) + ":" + pad2(s.Minutes) + ":" + seconds
	case s.Hours > 0:
		return pad2(s.Hours) + ":" + pad2(s.Minutes) + ":" + seconds
	case s.Minutes > 0:
		return pad2(s.Minutes) + ":" + seconds
	default:
		return seconds
	}
}

func formatSeconds(seconds float64) string {
	_, frac := math.Modf(seconds)
	if math.Min(frac, 1-frac) < commitEpsilon {
		return pad2(int(math.Round(seconds)))
	}

	out := strconv.FormatFloat(seconds, 'f', 3, 64)
	if seconds < 10 {
		out = "0" + out
	}

	return out
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}

	return strconv.Itoa(v)
}

// Step adds delta units of the given field and renormalizes, carrying or
// borrowing across the other fields. The result never goes below zero.
func Step(s Span, field Field, delta float64) Span {
	total := s.TotalSeconds() + delta*fieldScale(field)
	if total < 0 {
		total = 0
	}

	return FromSeconds(total)
}

// FieldAt maps a cursor offset in span text to the field it sits in by
// counting the colons to its right
func FieldAt(text string, cursor int) Field {
	text, cursor = Sanitize(text, cursor)

	colons := 0

	for i := cursor; i < len(text); i++ {
		if text[i] == ':' {
			colons++
		}
	}

	if colons > int(FieldDays) {
		colons = int(FieldDays)
	}

	return Field(colons)
}

// Commit settles span text at the end of an edit. Text that does not parse
// cleanly is fixed up: empty fields become "00" and fully empty text becomes
// "00:00". If the fix-up still fails the last good value wins. The second
// result reports whether the settled value differs from lastGood.
func Commit(lastGood Span, text string) (Span, bool) {
	state, span := Parse(text)
	if state != Acceptable {
		state, span = Parse(fixUp(text))
	}

	if state == Invalid {
		span = lastGood
	}

	span = span.Normalize()
	changed := math.Abs(span.TotalSeconds()-lastGood.Normalize().TotalSeconds()) > commitEpsilon

	return span, changed
}

// fixUp fills the holes in partially typed text so it can be re-parsed
func fixUp(text string) string {
	text, _ = Sanitize(text, 0)
	if text == "" {
		return "00:00"
	}

	parts := strings.Split(text, ":")
	for i, p := range parts {
		if p == "" {
			parts[i] = "00"
		}
	}

	return strings.Join(parts, ":")
}
