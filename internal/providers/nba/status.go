package nba

import (
	"strconv"
	"strings"
	"time"
)

// StatusInput carries the upstream fields that describe a game's state.
// Period 0 and an empty Clock or ScheduledUTC mean the field was absent.
type StatusInput struct {
	Code         int
	Text         string
	Period       int
	Clock        string
	ScheduledUTC string
}

// StatusFormatter renders upstream game states as display strings.
type StatusFormatter struct {
	loc   *time.Location
	label string
}

// NewStatusFormatter renders tip-off times in loc, suffixed with label.
// An empty label falls back to the zone abbreviation.
func NewStatusFormatter(loc *time.Location, label string) StatusFormatter {
	if loc == nil {
		loc = time.UTC
	}
	return StatusFormatter{loc: loc, label: label}
}

// Format returns the display status. It is pure and never fails; anything it
// cannot parse degrades to the upstream text or a fixed fallback.
func (f StatusFormatter) Format(in StatusInput) string {
	switch in.Code {
	case statusNotStarted:
		if tip, ok := f.tipOff(in.ScheduledUTC); ok {
			return tip
		}
		return textOr(in.Text, statusScheduledText)
	case statusInProgress:
		if in.Period > 0 && in.Clock != "" {
			return formatPeriod(in.Period) + " " + formatClock(in.Clock)
		}
		return textOr(in.Text, "In Progress")
	case statusFinal:
		return "Final"
	default:
		return textOr(in.Text, "Unknown")
	}
}

func (f StatusFormatter) tipOff(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		ts, err = time.ParseInLocation("2006-01-02T15:04:05", raw, time.UTC)
		if err != nil {
			return "", false
		}
	}
	local := ts.In(f.loc)
	label := f.label
	if label == "" {
		label = local.Format("MST")
	}
	return local.Format("3:04 PM") + " " + label, true
}

// formatPeriod renders regulation quarters as Q1-Q4, then OT, OT2, OT3...
func formatPeriod(period int) string {
	if period <= 4 {
		return "Q" + strconv.Itoa(period)
	}
	if ot := period - 4; ot > 1 {
		return "OT" + strconv.Itoa(ot)
	}
	return "OT"
}

// formatClock turns an ISO-8601 duration like PT11M30.00S into 11:30.
// Seconds are not zero padded: PT0M5S renders as 0:5.
func formatClock(raw string) string {
	clock := strings.TrimPrefix(strings.TrimSpace(raw), "PT")
	clock = strings.ReplaceAll(clock, "M", ":")
	clock = strings.ReplaceAll(clock, "S", "")
	if i := strings.IndexByte(clock, '.'); i >= 0 {
		clock = clock[:i]
	}
	if strings.HasPrefix(clock, ":") {
		clock = "0" + clock
	}
	return clock
}

func textOr(text, fallback string) string {
	if text = strings.TrimSpace(text); text != "" {
		return text
	}
	return fallback
}
