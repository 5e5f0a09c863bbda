package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/titleparse/internal/cue"
)

func Open(path string) (*Track, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return ParseReader(file, format)
}

// splits the input into cue-blocks on blank lines and parses each
// block independently
//
// For VTT input the WEBVTT header line and NOTE / STYLE blocks are
// skipped before splitting. Blocks that fail to parse are recorded on
// the returned track, not returned as errors.
func ParseReader(r io.Reader, format Format) (*Track, error) {
	scanner := bufio.NewScanner(r)

	var blocks []string
	var current []string
	lineNum := 0
	headerParsed := format != FormatVTT

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		trimmed := strings.TrimSpace(line)

		if !headerParsed {
			if strings.HasPrefix(trimmed, "WEBVTT") {
				headerParsed = true
				continue
			}
		}

		if format == FormatVTT && len(current) == 0 &&
			(strings.HasPrefix(trimmed, "NOTE") ||
				strings.HasPrefix(trimmed, "STYLE")) {
			for scanner.Scan() {
				if strings.TrimSpace(scanner.Text()) == "" {
					break
				}
			}
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		current = append(current, line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading subtitle file: %w", err)
	}

	track := &Track{Format: format}
	for i, block := range blocks {
		c, err := cue.Parse(block)
		if err != nil {
			track.Skipped = append(track.Skipped, BlockError{
				Block:   i + 1,
				Excerpt: excerpt(block),
				Err:     err,
			})
			continue
		}
		track.Cues = append(track.Cues, c)
	}

	return track, nil
}

// first line of the block, for error reporting
func excerpt(block string) string {
	if i := strings.IndexByte(block, '\n'); i >= 0 {
		return block[:i]
	}
	return block
}

func formatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return FormatSRT, nil
	case ".vtt":
		return FormatVTT, nil
	default:
		return "", fmt.Errorf("unsupported subtitle format: %s", ext)
	}
}

// subtitle format based on file extension, defaulting to SRT
func GetFormatFromExtension(path string) Format {
	format, err := formatForPath(path)
	if err != nil {
		return FormatSRT
	}
	return format
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatVTT:
		return ".vtt"
	default:
		return ".srt"
	}
}
