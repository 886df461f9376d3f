package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mydahanu/directory/internal/container"
	"mydahanu/directory/internal/domain"
)

var importURL string

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the catalog with a snapshot document",
	Long: `Replaces categories, services and banners with the contents of a
snapshot document read from a file or fetched from --url. The snapshot is
validated first; nothing changes when it is rejected.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importURL, "url", "", "fetch the snapshot from this URL")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if (len(args) == 0) == (importURL == "") {
		return errors.New("give either a file or --url")
	}

	return withApp(cmd.Context(), func(app *container.Container) error {
		var snap domain.Snapshot
		if importURL != "" {
			fetched, err := app.Client.FetchSnapshot(cmd.Context(), importURL)
			if err != nil {
				return err
			}
			snap = fetched
		} else {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			if err := json.Unmarshal(data, &snap); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
			}
		}

		if err := app.Catalog.Import(cmd.Context(), snap); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		st := app.Catalog.Stats()
		cmd.Printf("Imported %d categories, %d subcategories, %d services, %d banners\n",
			st.Categories, st.Subcategories, st.Services, st.Banners)
		return nil
	})
}
