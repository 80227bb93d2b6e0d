package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// reportTimeLayout is the timestamp format of the feed's reporting time,
// after the trailing timezone abbreviation has been stripped.
const reportTimeLayout = "02-Jan-2006 15:04"

// ParseReportTime parses the feed's reporting timestamp. The feed has used
// both " PST" and " PKT" timezone suffixes; both are stripped before parsing.
func ParseReportTime(s string) (time.Time, error) {
	s = strings.TrimSuffix(s, " PST")
	s = strings.TrimSuffix(s, " PKT")
	return time.Parse(reportTimeLayout, s)
}

// HeaderDateTime returns the date and time lines rendered in the report
// header, e.g. ("09 Sep 2025", "1:30 PM"). If the reporting timestamp does
// not parse, the clock's current time is substituted.
func HeaderDateTime(reported string, clock clockwork.Clock) (dateText, timeText string) {
	t, err := ParseReportTime(reported)
	if err != nil {
		t = clock.Now()
	}
	return t.Format("02 Jan 2006"), t.Format("3:04 PM")
}

// Filename derives the output image name from the reporting timestamp:
// day of month without leading zero, abbreviated month, 12-hour clock with
// AM/PM, minutes hyphen-joined to the hour and omitted when zero.
// "09-Sep-2025 13:00 PKT" yields "9 Sep 1 PM.png" and "09-Sep-2025 13:30 PKT"
// yields "9 Sep 1-30 PM.png". A timestamp that fails to parse falls back to
// the clock's current time for the name only.
func Filename(reported string, clock clockwork.Clock) string {
	t, err := ParseReportTime(reported)
	if err != nil {
		t = clock.Now()
	}

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "AM"
	if t.Hour() >= 12 {
		meridiem = "PM"
	}

	if t.Minute() == 0 {
		return fmt.Sprintf("%d %s %d %s.png", t.Day(), t.Format("Jan"), hour, meridiem)
	}
	return fmt.Sprintf("%d %s %d-%02d %s.png", t.Day(), t.Format("Jan"), hour, t.Minute(), meridiem)
}
