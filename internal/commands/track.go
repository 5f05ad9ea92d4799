package commands

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/audioforge/roger/internal/cliconfig"
	"github.com/audioforge/roger/pkg/client"
)

func (a *app) trackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Track management commands",
	}
	cmd.AddCommand(
		a.trackListCommand(),
		a.trackCurrentCommand(),
		a.trackCreateCommand(),
		a.trackSelectCommand(),
		a.trackNavigateCommand("next", "Select next track", "next", "✓ Moved to track: %s\n"),
		a.trackNavigateCommand("prev", "Select previous track", "previous", "✓ Moved to track: %s\n"),
		a.trackNavigateCommand("first", "Select first track", "first", "✓ Moved to first track: %s\n"),
		a.trackNavigateCommand("last", "Select last track", "last", "✓ Moved to last track: %s\n"),
		a.trackRenameCommand(),
		a.trackMuteCommand(),
		a.trackSoloCommand(),
		a.trackVolumeCommand(),
		a.trackPanCommand(),
		a.trackDeviceCommand(),
	)
	return cmd
}

func (a *app) trackListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := a.api.TrackList()
			data := env.DataObject()
			if a.cfg.Raw || !env.Success || data == nil {
				return a.printEnvelope(cmd, env)
			}
			out := cmd.OutOrStdout()
			tracks := asObjects(data["tracks"])
			fmt.Fprintf(out, "✓ %d track(s) in project:\n\n", len(tracks))
			for _, track := range tracks {
				index := "?"
				if n, ok := track["index"].(float64); ok {
					index = strconv.Itoa(int(n))
				}
				muted := "   "
				if asBool(track["muted"]) {
					muted = "[M]"
				}
				soloed := "   "
				if asBool(track["soloed"]) {
					soloed = "[S]"
				}
				fmt.Fprintf(out, "  %s: %s%s %s\n", index, muted, soloed, asString(track["name"], "Unnamed"))
			}
			return nil
		},
	}
}

func (a *app) trackCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Get current track info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := a.api.TrackCurrent()
			data := env.DataObject()
			if a.cfg.Raw || !env.Success || data == nil {
				return a.printEnvelope(cmd, env)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "✓ Current track:")
			fmt.Fprintf(out, "  Name: %s\n", asString(data["name"], "Unknown"))
			position := "?"
			if n, ok := data["position"].(float64); ok {
				position = strconv.Itoa(int(n))
			}
			fmt.Fprintf(out, "  Position: %s\n", position)
			fmt.Fprintf(out, "  Muted: %v\n", asBool(data["muted"]))
			fmt.Fprintf(out, "  Soloed: %v\n", asBool(data["soloed"]))
			return nil
		},
	}
}

func (a *app) trackCreateCommand() *cobra.Command {
	opts := client.CreateTrackOptions{Type: "instrument", Position: -1}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cliconfig.ValidateStruct(opts); err != nil {
				return fmt.Errorf("invalid track type %q (want instrument, audio or effect)", opts.Type)
			}
			env := a.api.TrackCreate(opts)
			if a.cfg.Raw || !env.Success {
				return a.printEnvelope(cmd, env)
			}
			name := opts.Name
			if name == "" {
				name = fmt.Sprintf("New %s track", opts.Type)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s track: %s\n", opts.Type, name)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Type, "type", opts.Type, "track type (instrument, audio, effect)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "track name")
	cmd.Flags().IntVar(&opts.Position, "position", opts.Position, "position to insert (-1 for end)")
	return cmd
}

func (a *app) trackSelectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "select <index>",
		Short: "Select track by index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid track index %q", args[0])
			}
			env := a.api.TrackSelect(index)
			data := env.DataObject()
			if a.cfg.Raw || !env.Success || data == nil {
				return a.printEnvelope(cmd, env)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Selected track %d: %s\n", index, asString(data["name"], "Unknown"))
			return nil
		},
	}
}

func (a *app) trackNavigateCommand(use, short, direction, confirmation string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := a.api.TrackNavigate(direction)
			data := env.DataObject()
			if a.cfg.Raw || !env.Success || data == nil {
				return a.printEnvelope(cmd, env)
			}
			fmt.Fprintf(cmd.OutOrStdout(), confirmation, asString(data["name"], "Unknown"))
			return nil
		},
	}
}

func (a *app) trackRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name>",
		Short: "Rename current track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := a.api.TrackRename(args[0])
			if a.cfg.Raw || !env.Success {
				return a.printEnvelope(cmd, env)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Track renamed to: %s\n", args[0])
			return nil
		},
	}
}

func (a *app) trackMuteCommand() *cobra.Command {
	var off bool
	cmd := &cobra.Command{
		Use:   "mute",
		Short: "Mute current track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mute := !off
			env := a.api.TrackMute(mute)
			if a.cfg.Raw || !env.Success {
				return a.printEnvelope(cmd, env)
			}
			state := "muted"
			if !mute {
				state = "unmuted"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Track %s\n", state)
			return nil
		},
	}
	cmd.Flags().BoolVar(&off, "off", false, "unmute instead of mute")
	return cmd
}

func (a *app) trackSoloCommand() *cobra.Command {
	var off bool
	cmd := &cobra.Command{
		Use:   "solo",
		Short: "Solo current track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			solo := !off
			env := a.api.TrackSolo(solo)
			if a.cfg.Raw || !env.Success {
				return a.printEnvelope(cmd, env)
			}
			state := "enabled"
			if !solo {
				state = "disabled"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Track solo %s\n", state)
			return nil
		},
	}
	cmd.Flags().BoolVar(&off, "off", false, "unsolo instead of solo")
	return cmd
}

func (a *app) trackVolumeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "volume <value>",
		Short: "Set track volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid volume %q", args[0])
			}
			volume := normalizeVolume(value)
			env := a.api.TrackVolume(volume)
			if a.cfg.Raw || !env.Success {
				return a.printEnvelope(cmd, env)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Track volume set to %d%%\n", int(volume*100))
			return nil
		},
	}
}

func (a *app) trackPanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pan <value>",
		Short: "Set track pan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid pan %q", args[0])
			}
			pan := clampPan(value)
			env := a.api.TrackPan(pan)
			if a.cfg.Raw || !env.Success {
				return a.printEnvelope(cmd, env)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Track pan set to %s\n", panLabel(pan))
			return nil
		},
	}
}

func (a *app) trackDeviceCommand() *cobra.Command {
	var opts client.DeviceOptions
	opts.Type = "vst3"
	cmd := &cobra.Command{
		Use:   "device <device-id>",
		Short: "Insert device into current track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cliconfig.ValidateStruct(opts); err != nil {
				return fmt.Errorf("invalid device type %q (want vst3, vst2 or bitwig)", opts.Type)
			}
			env := a.api.TrackDevice(args[0], opts)
			if a.cfg.Raw || !env.Success {
				return a.printEnvelope(cmd, env)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Device inserted: %s (%s)\n", args[0], opts.Type)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Type, "type", opts.Type, "device type (vst3, vst2, bitwig)")
	return cmd
}

// normalizeVolume maps user input to the controller's [0,1] range. Values
// above 1.0 are read as percentages.
func normalizeVolume(v float64) float64 {
	if v > 1.0 {
		v = v / 100.0
	}
	return math.Max(0.0, math.Min(1.0, v))
}

// clampPan bounds pan to [-1,1].
func clampPan(v float64) float64 {
	return math.Max(-1.0, math.Min(1.0, v))
}

// panLabel renders a pan position as "center", "NN% left" or "NN% right".
func panLabel(pan float64) string {
	switch {
	case pan == 0:
		return "center"
	case pan < 0:
		return fmt.Sprintf("%d%% left", int(-pan*100))
	default:
		return fmt.Sprintf("%d%% right", int(pan*100))
	}
}
