package cli

import (
	"fmt"

	"github.com/mgpai22/titleparse/internal/timecode"
	"github.com/spf13/cobra"
)

var timecodeCmd = &cobra.Command{
	Use:   "timecode [timestamp]",
	Short: "Parse and validate a single timestamp",
	Long: `Parse one SRT or WebVTT timestamp and print its fields.

Accepts HH:MM:SS.mmm, MM:SS.mmm, and the comma millisecond separator
used by SRT. An absent hour field means zero hours.

Examples:
  titleparse timecode 00:01:14.815
  titleparse timecode 01:14,815`,
	Args: cobra.ExactArgs(1),
	RunE: runTimecode,
}

func init() {
	rootCmd.AddCommand(timecodeCmd)
}

func runTimecode(cmd *cobra.Command, args []string) error {
	tc, err := timecode.Parse(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("source:  %s\n", tc.Source)
	fmt.Printf("hours:   %d\n", tc.Hours)
	fmt.Printf("minutes: %d\n", tc.Minutes)
	fmt.Printf("seconds: %d\n", tc.Seconds)
	fmt.Printf("millis:  %d\n", tc.Millis)
	fmt.Printf("total:   %ds\n", tc.ToSeconds())

	return nil
}
