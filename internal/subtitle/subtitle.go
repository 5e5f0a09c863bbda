package subtitle

import (
	"fmt"

	"github.com/mgpai22/titleparse/internal/cue"
)

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// represents complete parsed subtitle file
//
// Malformed cue-blocks never fail the whole file; they are recorded
// on Skipped so the caller can report them individually.
type Track struct {
	Cues    []cue.Cue
	Format  Format
	Skipped []BlockError
}

// describes one cue-block that failed to parse
type BlockError struct {
	Block   int // 1-based position of the block within the file
	Excerpt string
	Err     error
}

func (e BlockError) Error() string {
	return fmt.Sprintf("block %d (%q): %v", e.Block, e.Excerpt, e.Err)
}

func (e BlockError) Unwrap() error {
	return e.Err
}

// interface for writing tracks to files
type Writer interface {
	Write(track *Track, path string) error
}
