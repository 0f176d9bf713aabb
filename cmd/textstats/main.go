package main

import (
	"fmt"
	"os"

	"github.com/temirov/textstats/internal/cli"
	"github.com/temirov/textstats/internal/utils"
)

// main is the entry point for the textstats command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()

	applicationExecutionError := cli.Execute(cli.Dependencies{Logger: loggerInstance})
	switch cli.ExitCode(applicationExecutionError) {
	case cli.ExitSuccess:
		return
	case cli.ExitUsage:
		_ = loggerInstance.Sync()
		os.Exit(cli.ExitUsage)
	default:
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
