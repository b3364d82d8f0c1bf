package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nutrireco/go-reco-engine/model"
)

var (
	flagRecoNeed string
	flagRecoTopN int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <dataset>",
	Short: "Rank a dataset against a health need",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&flagRecoNeed, "need", "", "Need key to rank by (required)")
	recommendCmd.Flags().IntVar(&flagRecoTopN, "k", 0, "Number of results to show (default 10)")
	_ = recommendCmd.MarkFlagRequired("need")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, args []string) error {
	eng, err := newEngine(false)
	if err != nil {
		return err
	}

	rec, err := eng.RecommendByNeed(args[0], flagRecoNeed, flagRecoTopN)
	if err != nil {
		return err
	}

	printRecommendation(os.Stdout, rec)
	return nil
}

func printRecommendation(out io.Writer, rec *model.Recommendation) {
	fmt.Fprintf(out, "\nreco recommend --need %s\n\n", rec.Need)
	fmt.Fprintf(out, "Results (%d of %d, %dms):\n", len(rec.Items), rec.Total, rec.Took)
	if len(rec.Items) == 0 {
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, item := range rec.Items {
		name, _ := item.Meta.GetString("PRDLST_NM")
		company, _ := item.Meta.GetString("BSSH_NM")
		fmt.Fprintf(w, "  %d.\t[%d]\t%s\t%s\n", i+1, item.Score, name, company)
	}
	_ = w.Flush()
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintf(out, "query %s\n", rec.QueryID)
}
