// Package commands defines the roger command tree and its presentation:
// parse, validate, invoke the API client, render, exit.
package commands

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/audioforge/roger/internal/cliconfig"
	"github.com/audioforge/roger/pkg/client"
)

var longHelp = strings.TrimSpace(`
roger - CLI for the Jeannie Bitwig controller (Audio Forge RS)

Talks to the Jeannie controller REST API to search indexed content and
drive tracks in the current project. Responses print as human-readable
summaries; pass --raw for the unmodified JSON envelope.
`)

var exampleUsage = strings.TrimSpace(`
  roger health
  roger content search "analog kick" --fuzzy --type Sample
  roger track volume 75
  roger --api-url http://studio.local:3000 --raw track list
`)

// app carries the per-invocation state shared by all command handlers. The
// API client is built in PersistentPreRunE once flags are parsed.
type app struct {
	cfg    cliconfig.Config
	logger zerolog.Logger
	api    *client.Client
}

// NewRootCommand builds the roger command tree.
func NewRootCommand(logger zerolog.Logger) *cobra.Command {
	a := &app{cfg: cliconfig.DefaultConfig(), logger: logger}
	var verbose bool

	root := &cobra.Command{
		Use:           "roger",
		Short:         "CLI for the Jeannie Bitwig controller",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", client.Version, runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				a.logger = a.logger.Level(zerolog.DebugLevel)
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			a.api = client.New(a.cfg.APIURL, nil, a.logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfg.APIURL, "api-url", a.cfg.APIURL, "Jeannie API URL")
	root.PersistentFlags().BoolVar(&a.cfg.Raw, "raw", false, "output raw JSON response")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.AddCommand(
		a.helloCommand(),
		a.healthCommand(),
		a.versionCommand(),
		a.configCommand(),
		a.updateConfigCommand(),
		a.contentCommand(),
		a.trackCommand(),
	)

	return root
}

// Execute runs the command tree and maps any failure to exit code 1.
// Failures already reported by a handler are not printed again.
func Execute() {
	root := NewRootCommand(cliconfig.Logger())
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errCommandFailed) {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}
