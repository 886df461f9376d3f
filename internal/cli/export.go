package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mydahanu/directory/internal/container"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog as a snapshot document",
	Long: `Writes categories, services and banners as one JSON snapshot, to stdout
or to the file given with --output. The document can be loaded back with
"directory import".`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	return withApp(cmd.Context(), func(app *container.Container) error {
		data, err := json.MarshalIndent(app.Catalog.Export(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}

		if exportOutput == "" {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		}

		if err := os.WriteFile(exportOutput, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		cmd.Printf("Exported snapshot to %s\n", exportOutput)
		return nil
	})
}
