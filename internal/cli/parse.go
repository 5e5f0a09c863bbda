package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mgpai22/titleparse/internal/subtitle"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [subtitle_file]",
	Short: "Parse a subtitle file into cues",
	Long: `Parse an SRT or WebVTT file and print its cues.

Cue text is printed after sanitization: inline styling tags, leading
dialogue dashes, and HTML escapes are removed. Malformed cue-blocks
are reported and skipped; they never abort the rest of the file.

Examples:
  titleparse parse movie.srt
  titleparse parse movie.vtt --json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

// cue shape for --json output
type cueJSON struct {
	Index        int    `json:"index"`
	Start        string `json:"start"`
	End          string `json:"end"`
	StartSeconds int    `json:"start_seconds"`
	EndSeconds   int    `json:"end_seconds"`
	Text         string `json:"text"`
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().Bool("json", false, "Print cues as JSON")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	asJSON, _ := cmd.Flags().GetBool("json")

	logger.Debugw("Parsing subtitle file", "path", path)

	track, err := subtitle.Open(path)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	for _, skipped := range track.Skipped {
		logger.Warnw("Skipped malformed cue-block",
			"block", skipped.Block,
			"excerpt", skipped.Excerpt,
			"error", skipped.Err.Error(),
		)
	}

	if asJSON {
		out := make([]cueJSON, len(track.Cues))
		for i, c := range track.Cues {
			out[i] = cueJSON{
				Index:        i + 1,
				Start:        c.Start.Source,
				End:          c.End.Source,
				StartSeconds: c.Start.ToSeconds(),
				EndSeconds:   c.End.ToSeconds(),
				Text:         c.Text,
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for i, c := range track.Cues {
		fmt.Printf("%d\n%s --> %s\n%s\n\n", i+1, c.Start, c.End, c.Text)
	}

	logger.Infow("Parsed subtitle file",
		"path", path,
		"format", track.Format,
		"cues", len(track.Cues),
		"skipped", len(track.Skipped),
	)

	return nil
}
