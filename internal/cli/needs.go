package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var flagNeedsProfile string

var needsCmd = &cobra.Command{
	Use:   "needs",
	Short: "List the need keys and keyword weights of a profile",
	RunE:  runNeeds,
}

func init() {
	needsCmd.Flags().StringVar(&flagNeedsProfile, "profile", "supplement", "Profile tag to inspect")
	rootCmd.AddCommand(needsCmd)
}

func runNeeds(_ *cobra.Command, _ []string) error {
	eng, err := newEngine(false)
	if err != nil {
		return err
	}

	profile, err := eng.Profile(flagNeedsProfile)
	if err != nil {
		return err
	}

	fmt.Printf("profile %q: %d needs, %d keywords\n\n", profile.Tag, len(profile.Needs), len(profile.Keywords))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, need := range profile.NeedKeys() {
		weights := profile.Needs[need]
		keys := make([]string, 0, len(weights))
		for key := range weights {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Fprintf(w, "%s\t", need)
		for i, key := range keys {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%s:%d", key, weights[key])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
