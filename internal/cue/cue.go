package cue

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mgpai22/titleparse/internal/timecode"
)

// returned when a block does not contain exactly one well-formed
// timing line, or when one of its timestamps fails to parse
var ErrMalformedCue = errors.New("malformed cue")

// two timecode candidates around the arrow token, with an optional
// cue-settings tail that is never kept
var timingLineRegex = regexp.MustCompile(
	`^([0-9:.,]{9,}) --> ([0-9:.,]{9,})( .*)?$`,
)

// represents single SRT or WebVTT cue extracted from a subtitle
// file, e.g.
//
//	14
//	00:01:14.815 --> 00:01:18.114
//	- This line belongs to a subtitle cue.
//	- This line is also a member of the same cue.
type Cue struct {
	Start timecode.TimeCode
	End   timecode.TimeCode
	Text  string
}

// parses one cue-block into a Cue
//
// A block holds an optional identifier line, exactly one timing line,
// and any number of text lines. Anything trailing the end timestamp
// on the timing line (WebVTT cue settings such as position or
// alignment) is discarded. Text lines are sanitized individually and
// joined with newlines in their original order.
func Parse(block string) (Cue, error) {
	lines := strings.Split(strings.TrimSpace(block), "\n")

	timingIdx := -1
	for i, line := range lines {
		if !timingLineRegex.MatchString(line) {
			continue
		}
		if timingIdx >= 0 {
			return Cue{}, fmt.Errorf(
				"%w: multiple timing lines",
				ErrMalformedCue,
			)
		}
		timingIdx = i
	}
	if timingIdx < 0 {
		return Cue{}, fmt.Errorf("%w: no timing line", ErrMalformedCue)
	}
	// at most one identifier line may precede the timing line
	if timingIdx > 1 {
		return Cue{}, fmt.Errorf(
			"%w: timing line at line %d",
			ErrMalformedCue,
			timingIdx+1,
		)
	}

	matches := timingLineRegex.FindStringSubmatch(lines[timingIdx])
	start, err := timecode.Parse(matches[1])
	if err != nil {
		return Cue{}, fmt.Errorf("%w: %v", ErrMalformedCue, err)
	}
	end, err := timecode.Parse(matches[2])
	if err != nil {
		return Cue{}, fmt.Errorf("%w: %v", ErrMalformedCue, err)
	}

	textLines := lines[timingIdx+1:]
	cleanLines := make([]string, len(textLines))
	for i, line := range textLines {
		cleanLines[i] = Sanitize(line)
	}

	return Cue{
		Start: start,
		End:   end,
		Text:  strings.Join(cleanLines, "\n"),
	}, nil
}
