package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coffeequiz",
	Short: "Coffee quiz recommends a drink from a few taste questions, as a Telegram bot or from the command line",
}

func Execute() error {
	initVersionCmd()
	initTelegramCmd()
	initRecommendCmd()
	initCatalogCmd()
	initProfilesCmd()
	initBcryptCmd()

	return rootCmd.Execute()
}
