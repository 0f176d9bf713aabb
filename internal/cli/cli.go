// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/textstats/internal/analysis"
	"github.com/temirov/textstats/internal/config"
	"github.com/temirov/textstats/internal/input"
	"github.com/temirov/textstats/internal/output"
	"github.com/temirov/textstats/internal/services/clipboard"
	"github.com/temirov/textstats/internal/tokenizer"
	"github.com/temirov/textstats/internal/types"
	"github.com/temirov/textstats/internal/utils"
)

const (
	// ExitSuccess is returned when the report was printed.
	ExitSuccess = 0
	// ExitFailure is returned for input, configuration and output failures.
	ExitFailure = 1
	// ExitUsage is returned for a malformed command line.
	ExitUsage   = 2

	helpArgument      = "--help"
	shortHelpArgument = "-h"
	versionArgument   = "--version"
	versionTemplate   = utils.ApplicationName + " version: %s\n"

	rootUse              = utils.ApplicationName + " " + argumentsSynopsis
	rootShortDescription = "report line, word and character counts and the most frequent words"
	rootLongDescription  = `textstats reads text from a file or standard input and reports
line, word and character counts followed by the most frequent words.
Words are runs of ASCII letters and digits compared case-insensitively.
--top N must be the first argument; N defaults to 10 and 0 hides the ranking.
Defaults for top, format (raw, json, xml, yaml), color (auto, always, never),
clipboard and token estimates are read from ~/.textstats/config.yaml and ./.textstats.yaml.`
	rootUsageExample = `  # Analyze a file
  textstats README.md

  # Read standard input
  cat README.md | textstats

  # Show the five most frequent words
  textstats --top 5 notes.txt`

	tokenEstimateFailedMessage  = "token estimate skipped"
	clipboardCopyFailedMessage  = "clipboard copy failed"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	writeReportErrorFormat      = "write report: %w"
)

// Dependencies are the collaborators of the root command. Nil members get production defaults.
type Dependencies struct {
	Logger           *zap.Logger
	Copier           clipboard.Copier
	NewTokenCounter  tokenizer.Factory
	WorkingDirectory string
}

func (dependencies Dependencies) withDefaults() Dependencies {
	resolved := dependencies
	if resolved.Logger == nil {
		resolved.Logger = zap.NewNop()
	}
	if resolved.Copier == nil {
		resolved.Copier = clipboard.NewService()
	}
	if resolved.NewTokenCounter == nil {
		resolved.NewTokenCounter = tokenizer.NewCounter
	}
	return resolved
}

// Execute runs the textstats application with os.Args.
func Execute(dependencies Dependencies) error {
	return executeCommand(NewRootCommand(dependencies), os.Args[1:])
}

// executeCommand runs rootCommand with arguments. Cobra intercepts its hidden
// completion request commands before RunE, so those names go to RunE directly
// and are treated as file paths.
func executeCommand(rootCommand *cobra.Command, arguments []string) error {
	if len(arguments) > 0 && isCompletionRequest(arguments[0]) {
		return rootCommand.RunE(rootCommand, arguments)
	}
	rootCommand.SetArgs(arguments)
	return rootCommand.Execute()
}

func isCompletionRequest(argument string) bool {
	return argument == cobra.ShellCompRequestCmd || argument == cobra.ShellCompNoDescRequestCmd
}

// ExitCode maps an Execute error to the process exit status.
func ExitCode(executionError error) int {
	if executionError == nil {
		return ExitSuccess
	}
	var usageError *UsageError
	if errors.As(executionError, &usageError) {
		return ExitUsage
	}
	return ExitFailure
}

// NewRootCommand builds the root Cobra command. Flag parsing is left to ParseInvocation
// so that only a leading --top is recognized and trailing arguments are ignored.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	resolved := dependencies.withDefaults()

	rootCommand := &cobra.Command{
		Use:                rootUse,
		Short:              rootShortDescription,
		Long:               rootLongDescription,
		Example:            rootUsageExample,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if len(arguments) > 0 {
				switch arguments[0] {
				case helpArgument, shortHelpArgument:
					return command.Help()
				case versionArgument:
					_, err := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
					return err
				}
			}
			invocation, parseError := ParseInvocation(arguments)
			if parseError != nil {
				fmt.Fprintln(command.ErrOrStderr(), usageLine)
				return parseError
			}
			return runAnalysis(command.InOrStdin(), command.OutOrStdout(), invocation, resolved)
		},
	}
	return rootCommand
}

// runAnalysis wires configuration, reader, analyzer and formatter for one invocation.
func runAnalysis(standardInput io.Reader, standardOutput io.Writer, invocation Invocation, dependencies Dependencies) error {
	workingDirectory := dependencies.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{WorkingDirectory: workingDirectory})
	if configurationError != nil {
		return configurationError
	}
	settings := applicationConfiguration.Settings()

	text, readError := input.ReadText(invocation.Path, standardInput)
	if readError != nil {
		return readError
	}

	report := analysis.Analyze(text, invocation.ResolveTop(settings.Top))
	if settings.TokensEnabled {
		attachTokenEstimate(&report, text, settings.TokenizerModel, dependencies)
	}

	colorize := output.ShouldColorize(standardOutput, settings.Color)
	rendered, renderError := output.Render(report, settings.Format, output.RawOptions{Colorize: colorize})
	if renderError != nil {
		return renderError
	}
	if _, writeError := fmt.Fprintln(standardOutput, rendered); writeError != nil {
		return fmt.Errorf(writeReportErrorFormat, writeError)
	}

	if settings.Clipboard {
		copyReport(report, settings.Format, rendered, colorize, dependencies)
	}
	return nil
}

func attachTokenEstimate(report *types.Report, text string, model string, dependencies Dependencies) {
	counter, resolvedModel, counterError := dependencies.NewTokenCounter(tokenizer.Config{Model: model})
	if counterError != nil {
		dependencies.Logger.Warn(tokenEstimateFailedMessage, zap.String("model", model), zap.Error(counterError))
		return
	}
	result, countError := tokenizer.CountText(counter, resolvedModel, text)
	if countError != nil {
		dependencies.Logger.Warn(tokenEstimateFailedMessage, zap.String("model", resolvedModel), zap.Error(countError))
		return
	}
	report.Tokens = result.Tokens
	report.Model = result.Model
}

// copyReport places the uncolored rendering on the clipboard. Failures only produce a warning.
func copyReport(report types.Report, format string, rendered string, colorized bool, dependencies Dependencies) {
	clipboardText := rendered
	if colorized {
		plainText, renderError := output.Render(report, format, output.RawOptions{})
		if renderError != nil {
			dependencies.Logger.Warn(clipboardCopyFailedMessage, zap.Error(renderError))
			return
		}
		clipboardText = plainText
	}
	if copyError := dependencies.Copier.Copy(clipboardText); copyError != nil {
		dependencies.Logger.Warn(clipboardCopyFailedMessage, zap.Error(copyError))
	}
}
