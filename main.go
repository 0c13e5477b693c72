package main

import (
	"os"

	"coffeeQuizBot/pkg/cmd"
	"coffeeQuizBot/pkg/errs"
	"coffeeQuizBot/pkg/logging"

	"github.com/joho/godotenv"
)

var envFiles = []string{".env.default", ".env.secret", ".env.local"}

func main() {
	existingEnvFiles := make([]string, 0, len(envFiles))
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existingEnvFiles = append(existingEnvFiles, f)
		}
	}

	if len(existingEnvFiles) > 0 {
		err := godotenv.Overload(existingEnvFiles...)
		errs.Handle(err, true)
	}

	logCfg, err := logging.LoadConfig()
	errs.Handle(err, true)

	err = logging.Init(logCfg)
	errs.Handle(err, true)

	err = cmd.Execute()
	errs.Handle(err, true)
}
