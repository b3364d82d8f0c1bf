package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List stored datasets",
	RunE:  runDatasets,
}

var datasetsDeleteCmd = &cobra.Command{
	Use:   "delete <dataset>",
	Short: "Delete a stored dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetsDelete,
}

func init() {
	datasetsCmd.AddCommand(datasetsDeleteCmd)
	rootCmd.AddCommand(datasetsCmd)
}

func runDatasets(_ *cobra.Command, _ []string) error {
	eng, err := newEngine(false)
	if err != nil {
		return err
	}

	infos := eng.ListDatasets()
	if len(infos) == 0 {
		fmt.Println("no datasets stored")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPROFILE\tSERVICE\tROWS\tTOTAL\tFETCHED")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			info.Name, info.Profile, info.ServiceID, info.Rows, info.TotalCount, info.FetchedAt)
	}
	return w.Flush()
}

func runDatasetsDelete(_ *cobra.Command, args []string) error {
	eng, err := newEngine(false)
	if err != nil {
		return err
	}

	if err := eng.DeleteDataset(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted dataset %q\n", args[0])
	return nil
}
