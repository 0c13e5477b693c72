package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

var bcryptCmd = &cobra.Command{
	Use:   "bcrypt",
	Short: "Generates bcrypt hash from the prompted password input, use it as password_hash in AUTH_ADMINS",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("Enter password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Println()

		if len(password) == 0 {
			return errors.New("password cannot be empty")
		}

		hashedPassword, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
		if err != nil {
			return errors.WithStack(err)
		}

		fmt.Println(string(hashedPassword))

		return nil
	},
}

func initBcryptCmd() {
	rootCmd.AddCommand(bcryptCmd)
}
