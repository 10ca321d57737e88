package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/chronos/internal/tui/viewer"
)

var viewWatchInterval time.Duration

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Show a document in the terminal viewer",
	Long: `Opens an interactive terminal view of a chronos document. The file
is reloaded when it changes.

Keys:
  1-3         toggle events, periods, points
  0           show all kinds
  d           toggle descriptions
  p / Space   pause/resume watching
  r           reload
  g / G       top / bottom
  PgUp/PgDn   scroll
  q, Ctrl+C   quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().DurationVar(&viewWatchInterval, "watch-interval", 2*time.Second, "how often to check the file for changes")
}

func runView(cmd *cobra.Command, args []string) error {
	return viewer.Run(viewer.Config{
		Path:          args[0],
		Service:       newService(cmd.Context(), cmd),
		WatchInterval: viewWatchInterval,
	})
}
