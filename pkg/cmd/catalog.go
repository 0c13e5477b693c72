package cmd

import (
	"fmt"
	"io"

	"coffeeQuizBot/pkg/catalog"
	"coffeeQuizBot/pkg/present"
	"coffeeQuizBot/pkg/recommend"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:       "catalog [name]",
	Short:     "Lists the drinks of the built-in catalogs",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: catalog.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := catalog.Names()
		if len(args) == 1 {
			names = args
		}

		return printCatalogs(cmd.OutOrStdout(), names)
	},
}

func initCatalogCmd() {
	rootCmd.AddCommand(catalogCmd)
}

func printCatalogs(out io.Writer, names []string) error {
	resolver := present.NewTableResolver(recommend.TokenYes)

	for _, name := range names {
		c, ok := catalog.Builtin(name)
		if !ok {
			return errors.Errorf("unknown catalog %q, available catalogs: %v", name, catalog.Names())
		}

		fmt.Fprintf(out, "%s: %d drinks, features %v\n", c.Name(), c.Len(), c.Features())
		for _, item := range c.All() {
			tempToken := recommend.TokenNo
			if item.IsCold() {
				tempToken = recommend.TokenYes
			}

			fmt.Fprintf(out, "  %-30s %s  %s\n", item.String(), item.Vector.String(), resolver.Resolve(item.Name, tempToken).Label)
		}
		fmt.Fprintln(out)
	}

	return nil
}
