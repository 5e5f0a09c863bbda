package timecode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// returned when input does not match the timecode grammar
var ErrInvalidTimeCode = errors.New("invalid timecode")

// optional 2-4 digit hour field, two-digit minutes and seconds capped
// at 59, three-digit milliseconds after either '.' or ','
var timecodeRegex = regexp.MustCompile(
	`^((\d{2,4}):)?([0-5][0-9]):([0-5][0-9])[.,](\d{3})$`,
)

// represents single SRT or WebVTT timestamp such as
// "00:01:14.815" or "01:14,815"
type TimeCode struct {
	Source  string // exact string the timecode was parsed from
	Hours   int
	Minutes int
	Seconds int
	Millis  int
}

// parses a timestamp string into a TimeCode
//
// An absent hour field means zero hours: "01:14.815" and
// "00:01:14.815" describe the same moment.
func Parse(s string) (TimeCode, error) {
	matches := timecodeRegex.FindStringSubmatch(s)
	if matches == nil {
		return TimeCode{}, fmt.Errorf("%w: %q", ErrInvalidTimeCode, s)
	}

	hours := 0
	if matches[2] != "" {
		h, err := strconv.Atoi(matches[2])
		if err != nil {
			return TimeCode{}, fmt.Errorf("%w: %q", ErrInvalidTimeCode, s)
		}
		hours = h
	}

	// minutes, seconds and millis are digit-only capture groups, so
	// Atoi cannot fail on them
	minutes, _ := strconv.Atoi(matches[3])
	seconds, _ := strconv.Atoi(matches[4])
	millis, _ := strconv.Atoi(matches[5])

	return TimeCode{
		Source:  s,
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
		Millis:  millis,
	}, nil
}

// total seconds from the hour, minute and second fields, with
// milliseconds truncated rather than rounded
func (tc TimeCode) ToSeconds() int {
	return tc.Hours*3600 + tc.Minutes*60 + tc.Seconds
}

func (tc TimeCode) String() string {
	return tc.Source
}
