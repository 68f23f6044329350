package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"travelrec/models"
	"travelrec/web/pages/landing"

	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the dataset once and print the results",
	Long: `Runs one search and prints the matching recommendations.
The term is "countries", "temples", "beaches" (or their singular forms) or a country name.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Bool("json", false, "Print the result as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	_, searcher, err := newSearcher()
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	term := strings.Join(args, " ")

	out, err := searcher.Run(context.Background(), term)
	if err != nil {
		return serr.Wrap(err, landing.ErrorMessage)
	}

	return printOutcome(cmd.OutOrStdout(), out, asJSON)
}

// printOutcome writes the outcome as plain text cards or JSON
func printOutcome(w io.Writer, out models.Outcome, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out.ToPayload())
	}

	if out.Blank {
		fmt.Fprintln(w, "Please enter a search term.")
		return nil
	}

	if len(out.Results) == 0 {
		fmt.Fprintln(w, landing.NoResultsMessage)
		if out.Suggestion != "" {
			fmt.Fprintf(w, "Did you mean %s?\n", out.Suggestion)
		}
		return nil
	}

	for i, d := range out.Results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n  %s\n  %s\n", d.Name, d.Description, d.ImageURL)
	}
	return nil
}
