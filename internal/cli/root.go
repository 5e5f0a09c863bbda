package cli

import (
	"github.com/mgpai22/titleparse/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "titleparse",
	Short: "Extract cues from SRT and WebVTT subtitle files",
	Long: `Titleparse is a CLI tool that parses SRT and WebVTT subtitle
files into structured cues.

It validates timestamps, strips inline styling tags and HTML escapes
from cue text, and can re-time a subtitle track.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
