package cli

import (
	"travelrec/tui"

	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Search interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, searcher, err := newSearcher()
		if err != nil {
			return err
		}
		return tui.Run(searcher)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
