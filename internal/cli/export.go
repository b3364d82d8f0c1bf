package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export <dataset>",
	Short: "Write a dataset's feature and meta tables as CSV files",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "Output directory (defaults to the dataset's data directory)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	eng, err := newEngine(false)
	if err != nil {
		return err
	}

	outDir, err := eng.ExportDataset(args[0], flagExportOut)
	if err != nil {
		return err
	}

	fmt.Printf("exported dataset %q to %s\n", args[0], outDir)
	return nil
}
