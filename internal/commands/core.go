package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/audioforge/roger/internal/cliconfig"
	"github.com/audioforge/roger/pkg/client"
)

func (a *app) helloCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Get hello world message from Jeannie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printEnvelope(cmd, a.api.Hello())
		},
	}
}

func (a *app) healthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check Jeannie API health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printEnvelope(cmd, a.api.Health())
		},
	}
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Get version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printEnvelope(cmd, a.api.Version())
		},
	}
}

func (a *app) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Get current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printEnvelope(cmd, a.api.Config())
		},
	}
}

func (a *app) updateConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update-config",
		Short: "Update config file with roger info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cliconfig.DefaultSnapshotPath()
			if err == nil {
				err = cliconfig.WriteSnapshot(path, cliconfig.NewSnapshot(client.Version, time.Now()))
			}
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "✗ Failed to update config: %v\n", err)
				return errCommandFailed
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Config updated: %s\n", path)
			fmt.Fprintf(out, "\nroger v%s config written to %s\n", client.Version, path)
			fmt.Fprintln(out, "Jeannie API will automatically detect the change.")
			return nil
		},
	}
}
