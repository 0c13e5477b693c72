package cmd

import (
	"fmt"
	"io"
	"strings"

	"coffeeQuizBot/pkg/recommend"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Lists the engine profiles, including the ones from RECOMMEND_PROFILES_FILE",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := recommend.BuildRegistry()
		if err != nil {
			return err
		}

		printProfiles(cmd.OutOrStdout(), registry)

		return nil
	},
}

func initProfilesCmd() {
	rootCmd.AddCommand(profilesCmd)
}

func printProfiles(out io.Writer, registry *recommend.Registry) {
	for _, name := range registry.Names() {
		engine, _ := registry.Get(name)
		p := engine.Profile()

		marker := ""
		if name == registry.DefaultName() {
			marker = " (default)"
		}

		weights := make([]string, 0, len(p.Features))
		for _, f := range p.Features {
			weights = append(weights, fmt.Sprintf("%s=%g", f, p.Weights[f]))
		}

		fmt.Fprintf(out, "%s%s: %s\n", name, marker, p.Description)
		fmt.Fprintf(out, "  catalog: %s (%d drinks)\n", p.Catalog.Name(), p.Catalog.Len())
		fmt.Fprintf(out, "  policy: %s, confidence scale: %g, shortlist: %d\n", p.Policy.Name(), p.ConfidenceScale, p.ShortlistSize)
		fmt.Fprintf(out, "  weights: %s\n", strings.Join(weights, ", "))
	}
}
