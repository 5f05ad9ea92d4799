package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/audioforge/roger/pkg/client"
)

// listLimit caps how many entries the type/creator/category listings print
// before cutting off with an "... and N more" note.
const listLimit = 50

func (a *app) contentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Content search and management",
	}
	cmd.AddCommand(
		a.contentSearchCommand(),
		a.contentListCommand(),
		a.contentStatsCommand(),
		a.contentTypesCommand(),
		a.contentCreatorsCommand(),
		a.contentCategoriesCommand(),
		a.contentStatusCommand(),
		a.contentRescanCommand(),
	)
	return cmd
}

func (a *app) contentSearchCommand() *cobra.Command {
	var opts client.SearchOptions
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := a.api.ContentSearch(args[0], opts)
			data := env.DataObject()
			if a.cfg.Raw || !env.Success || data == nil {
				return a.printEnvelope(cmd, env)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Found %d results for '%s'\n\n", asInt(data["total"]), asString(data["query"], args[0]))
			for _, result := range asObjects(data["results"]) {
				fmt.Fprintf(out, "  [%.2f] %s (%s)",
					asFloat(result["score"], 1.0),
					asString(result["name"], "Unknown"),
					asString(result["contentType"], "Unknown"))
				if creator := asString(result["creator"], ""); creator != "" {
					fmt.Fprintf(out, " - %s", creator)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Fuzzy, "fuzzy", false, "use fuzzy search")
	cmd.Flags().StringVar(&opts.Type, "type", "", "filter by content type (Device, Preset, Sample)")
	cmd.Flags().StringVar(&opts.Creator, "creator", "", "filter by creator")
	cmd.Flags().StringVar(&opts.Category, "category", "", "filter by category")
	cmd.Flags().IntVar(&opts.Limit, "limit", client.DefaultLimit, "maximum results")
	return cmd
}

func (a *app) contentListCommand() *cobra.Command {
	var opts client.ListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := a.api.ContentList(opts)
			data := env.DataObject()
			if a.cfg.Raw || !env.Success || data == nil {
				return a.printEnvelope(cmd, env)
			}
			out := cmd.OutOrStdout()
			items := asObjects(data["results"])
			fmt.Fprintf(out, "✓ %d items (showing %d)\n\n", asInt(data["total"]), len(items))
			for _, item := range items {
				fmt.Fprintf(out, "  %s (%s)",
					asString(item["name"], "Unknown"),
					asString(item["contentType"], "Unknown"))
				if creator := asString(item["creator"], ""); creator != "" {
					fmt.Fprintf(out, " - %s", creator)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Type, "type", "", "filter by content type")
	cmd.Flags().StringVar(&opts.Creator, "creator", "", "filter by creator")
	cmd.Flags().StringVar(&opts.Category, "category", "", "filter by category")
	cmd.Flags().IntVar(&opts.Limit, "limit", client.DefaultLimit, "maximum results")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "offset for pagination")
	return cmd
}

func (a *app) contentStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Get content statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printEnvelope(cmd, a.api.ContentStats())
		},
	}
}

func (a *app) contentTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List available content types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printNameList(cmd, a.api.ContentTypes(), "Available content types")
		},
	}
}

func (a *app) contentCreatorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "creators",
		Short: "List available creators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printNameList(cmd, a.api.ContentCreators(), "Available creators")
		},
	}
}

func (a *app) contentCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List available categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printNameList(cmd, a.api.ContentCategories(), "Available categories")
		},
	}
}

func (a *app) contentStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get content index status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printEnvelope(cmd, a.api.ContentStatus())
		},
	}
}

func (a *app) contentRescanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rescan",
		Short: "Trigger content rescan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printEnvelope(cmd, a.api.ContentRescan())
		},
	}
}

// printNameList renders an envelope whose data is an array of names, one per
// line, truncated at listLimit entries.
func (a *app) printNameList(cmd *cobra.Command, env client.Envelope, label string) error {
	items, ok := env.Data.([]any)
	if a.cfg.Raw || !env.Success || !ok {
		return a.printEnvelope(cmd, env)
	}
	renderNameList(cmd.OutOrStdout(), label, items)
	return nil
}

func renderNameList(w io.Writer, label string, items []any) {
	fmt.Fprintf(w, "✓ %s (%d):\n\n", label, len(items))
	shown := items
	if len(shown) > listLimit {
		shown = shown[:listLimit]
	}
	for _, item := range shown {
		fmt.Fprintf(w, "  - %v\n", item)
	}
	if rest := len(items) - listLimit; rest > 0 {
		fmt.Fprintf(w, "\n  ... and %d more\n", rest)
	}
}
