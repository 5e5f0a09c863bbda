package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mgpai22/titleparse/internal/subtitle"
	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [subtitle_file]",
	Short: "Re-time a subtitle file by a fixed offset",
	Long: `Shift every cue in a subtitle file by a fixed duration and
write the result.

The offset accepts Go duration syntax and may be negative; timestamps
that would shift below zero are clamped at zero. The output format
follows the output file extension.

Examples:
  titleparse shift movie.srt --by 1.5s
  titleparse shift movie.srt --by -750ms -o fixed.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().
		StringP("by", "b", "", "Offset to apply, e.g. 1.5s, -750ms (required)")
	_ = shiftCmd.MarkFlagRequired("by")
}

func runShift(cmd *cobra.Command, args []string) error {
	path := args[0]

	by, _ := cmd.Flags().GetString("by")
	outputPath, _ := cmd.Flags().GetString("output")

	offset, err := time.ParseDuration(by)
	if err != nil {
		return fmt.Errorf("invalid offset %q: %w", by, err)
	}

	track, err := subtitle.Open(path)
	if err != nil {
		return fmt.Errorf("shift failed: %w", err)
	}

	for _, skipped := range track.Skipped {
		logger.Warnw("Skipped malformed cue-block",
			"block", skipped.Block,
			"excerpt", skipped.Excerpt,
			"error", skipped.Err.Error(),
		)
	}

	outFormat := track.Format
	if outputPath == "" {
		ext := filepath.Ext(path)
		outputPath = strings.TrimSuffix(path, ext) + ".shifted" + ext
	} else {
		outFormat = subtitle.GetFormatFromExtension(outputPath)
	}

	logger.Infow("Shifting subtitle file",
		"path", path,
		"output", outputPath,
		"offset", offset.String(),
		"cues", len(track.Cues),
	)

	writer, err := subtitle.NewWriter(outFormat, offset)
	if err != nil {
		return err
	}
	if err := writer.Write(track, outputPath); err != nil {
		return fmt.Errorf("shift failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Shifted subtitles written: %s\n", absOutput)

	return nil
}
