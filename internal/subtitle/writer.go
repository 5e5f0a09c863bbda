package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mgpai22/titleparse/internal/timecode"
)

// SubRip format
type SRTWriter struct {
	// added to every timestamp on output; negative offsets clamp
	// at zero rather than producing negative timestamps
	Offset time.Duration
}

// WebVTT format
type VTTWriter struct {
	Offset time.Duration
}

func NewWriter(format Format, offset time.Duration) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{Offset: offset}, nil
	case FormatVTT:
		return &VTTWriter{Offset: offset}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// writes the track to an SRT file
func (w *SRTWriter) Write(track *Track, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder
	for i, c := range track.Cues {
		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTime(shift(c.Start, w.Offset)),
			formatSRTTime(shift(c.End, w.Offset))))

		// text
		sb.WriteString(c.Text)
		sb.WriteString("\n\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// writes the track to a VTT file
func (w *VTTWriter) Write(track *Track, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder

	// VTT header
	sb.WriteString("WEBVTT\n\n")

	for i, c := range track.Cues {
		// optional cue identifier
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00.000 --> 00:00:00.000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatVTTTime(shift(c.Start, w.Offset)),
			formatVTTTime(shift(c.End, w.Offset))))

		// text
		sb.WriteString(c.Text)
		sb.WriteString("\n\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func shift(tc timecode.TimeCode, offset time.Duration) time.Duration {
	d := time.Duration(tc.Hours)*time.Hour +
		time.Duration(tc.Minutes)*time.Minute +
		time.Duration(tc.Seconds)*time.Second +
		time.Duration(tc.Millis)*time.Millisecond +
		offset
	if d < 0 {
		return 0
	}
	return d
}

func formatSRTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

func formatVTTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
