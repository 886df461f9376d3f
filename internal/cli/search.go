package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"mydahanu/directory/internal/container"
	"mydahanu/directory/internal/domain"
)

var (
	searchCategory string
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search services",
	Long: `Lists services whose name or description contains the query, ignoring
case. --category restricts the results to one category id.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "only services of this category id")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	return withApp(cmd.Context(), func(app *container.Container) error {
		results := app.Catalog.SearchServices(args[0], searchCategory)

		if searchJSON {
			return outputSearchJSON(cmd, results)
		}
		outputSearchTable(cmd, results)
		return nil
	})
}

func outputSearchJSON(cmd *cobra.Command, results []domain.Service) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func outputSearchTable(cmd *cobra.Command, results []domain.Service) {
	if len(results) == 0 {
		cmd.Println("No services found.")
		return
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, s := range results {
		cmd.Printf("  [%d] %s (%.1f, %d reviews)\n", i+1, s.Name, s.Rating, s.Reviews)
		cmd.Printf("      %s · %s\n", s.Category, s.Location)
		if s.Phone != "" {
			cmd.Printf("      %s\n", s.Phone)
		}
		cmd.Println()
	}
}
