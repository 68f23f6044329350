package cli

import (
	"travelrec/web"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the travel recommendation page",
	Long:  "Starts the web server with the search page, the results partial and the search API.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, searcher, err := newSearcher()
	if err != nil {
		return err
	}

	srv := web.NewServer(cfg, searcher)
	return web.Run(srv, cfg)
}
