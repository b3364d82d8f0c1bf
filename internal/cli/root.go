// Package cli implements the offline command-line interface. It drives the
// same engine as the HTTP server against a local data directory.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nutrireco/go-reco-engine/config"
	"github.com/nutrireco/go-reco-engine/internal/engine"
	"github.com/nutrireco/go-reco-engine/internal/registry"
)

var (
	flagDataDir  string
	flagAPIKey   string
	flagProfiles string
)

var rootCmd = &cobra.Command{
	Use:          "reco",
	Short:        "Reco — fetch registry rows and rank supplements by health need",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Reco fetches rows from the food safety registry, extracts keyword
features, and ranks products against need profiles. Datasets are stored
as snapshots under the data directory and can be queried offline.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "./reco_data", "Directory holding dataset snapshots")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Registry API key (defaults to RECO_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&flagProfiles, "profiles", "", "Optional YAML file with profile overrides")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newEngine wires the engine from the persistent flags. The API key is only
// required by commands that fetch; offline commands pass requireKey=false.
func newEngine(requireKey bool) (*engine.Engine, error) {
	key := flagAPIKey
	if key == "" {
		key = os.Getenv("RECO_API_KEY")
	}
	if key == "" && requireKey {
		return nil, fmt.Errorf("no registry API key provided\n" +
			"  Use --api-key or set RECO_API_KEY.")
	}

	profiles, err := config.LoadProfiles(flagProfiles)
	if err != nil {
		return nil, fmt.Errorf("cannot load profiles: %w", err)
	}

	return engine.NewEngine(flagDataDir, profiles, registry.NewClient(key)), nil
}
