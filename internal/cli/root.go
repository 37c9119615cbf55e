package cli

import (
	"github.com/spf13/cobra"

	"subtext/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subtext",
	Short: "Caption translation and conversion toolkit",
	Long: `Subtext parses, translates, converts, and burns caption files.

It reads SRT, VTT, and plain-text captions, translates them with an AI
provider while preserving the original timing, and writes the result in
any supported format.`,
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
	rootCmd.PersistentFlags().
		StringP("language", "l", "", "Language code (e.g., en, es, fr)")
}
