package coerce

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"sheet-mapper/typetag"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"

	// maxExcelSerial is the serial day number of 9999-12-31.
	maxExcelSerial = 2958466

	// maxSpanDays is the largest whole day count a time.Duration holds.
	maxSpanDays = math.MaxInt64 / int64(24*time.Hour)
)

var (
	dateTimeLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		dateLayout,
		"1/2/2006 15:04:05",
		"1/2/2006 15:04",
		"1/2/2006",
		"01-02-06",
		"1/2/06 15:04",
	}

	dateLayouts = []string{
		dateLayout,
		"2006/01/02",
		"1/2/2006",
		"01-02-06",
		time.RFC3339Nano,
		"2006-01-02 15:04:05",
	}

	timeLayouts = []string{
		timeLayout,
		"15:04",
		"3:04:05 PM",
		"3:04 PM",
	}

	// [-][d.]hh:mm[:ss[.fffffffff]]
	clockSpan = regexp.MustCompile(`^(-)?(?:(\d+)\.)?(\d{1,2}):(\d{2})(?::(\d{2})(?:\.(\d{1,9}))?)?$`)

	errNoLayout = errors.New("no known layout matches")
)

var (
	dateTimeCodec = codec[time.Time]{
		parse: func(s string) (time.Time, error) {
			if t, ok := parseLayouts(s, dateTimeLayouts); ok {
				return t, nil
			}

			return parseSerial(s)
		},
		format: func(t time.Time) string { return t.Format(time.RFC3339Nano) },
	}

	timeSpanCodec = codec[time.Duration]{
		parse:  parseTimeSpan,
		format: time.Duration.String,
	}

	dateOnlyCodec = codec[typetag.Date]{
		parse: func(s string) (typetag.Date, error) {
			if t, ok := parseLayouts(s, dateLayouts); ok {
				return typetag.DateOf(t), nil
			}

			t, err := parseSerial(s)
			if err != nil {
				return typetag.Date{}, err
			}

			return typetag.DateOf(t), nil
		},
		// the zero Date is not a calendar date; it renders as an absent cell
		format: func(d typetag.Date) string {
			if d.IsZero() {
				return ""
			}

			return d.String()
		},
	}

	timeOnlyCodec = codec[typetag.TimeOfDay]{
		parse: func(s string) (typetag.TimeOfDay, error) {
			if t, ok := parseLayouts(strings.ToUpper(s), timeLayouts); ok {
				return typetag.TimeOf(t), nil
			}

			return typetag.TimeOfDay{}, errNoLayout
		},
		format: typetag.TimeOfDay.String,
	}
)

func parseLayouts(s string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseSerial interprets s as an Excel serial day number, the raw form of
// date cells that carry no date number format.
func parseSerial(s string) (time.Time, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 || f >= maxExcelSerial {
		return time.Time{}, errNoLayout
	}

	return excelize.ExcelDateToTime(f, false)
}

// parseTimeSpan accepts Go durations (1h30m) and clock spans (1.02:03:04.5).
func parseTimeSpan(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	m := clockSpan.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("expected a duration like 1h30m or [d.]hh:mm:ss")
	}

	var days time.Duration

	if m[2] != "" {
		n, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil || n > maxSpanDays {
			return 0, fmt.Errorf("days out of range: %s", m[2])
		}

		days = time.Duration(n) * 24 * time.Hour
	}

	hours, _ := strconv.Atoi(m[3])
	minutes, _ := strconv.Atoi(m[4])
	if minutes > 59 {
		return 0, fmt.Errorf("minutes out of range: %d", minutes)
	}

	rest := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute

	if m[5] != "" {
		seconds, _ := strconv.Atoi(m[5])
		if seconds > 59 {
			return 0, fmt.Errorf("seconds out of range: %d", seconds)
		}

		rest += time.Duration(seconds) * time.Second
	}

	if m[6] != "" {
		frac := m[6] + strings.Repeat("0", 9-len(m[6]))
		nanos, _ := strconv.Atoi(frac)
		rest += time.Duration(nanos)
	}

	if days > math.MaxInt64-rest {
		return 0, fmt.Errorf("timespan out of range: %s", s)
	}

	d := days + rest

	if m[1] == "-" {
		d = -d
	}

	return d, nil
}
