package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <dataset>",
	Short: "Print the diagnostic validation report for a dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	eng, err := newEngine(false)
	if err != nil {
		return err
	}

	rep, err := eng.ValidateDataset(args[0])
	if err != nil {
		return err
	}

	fmt.Print(rep.String())
	if rep.Healthy() {
		fmt.Println("status: healthy")
	} else {
		fmt.Println("status: issues found")
	}
	return nil
}
