package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/audioforge/roger/pkg/client"
)

// errCommandFailed marks failures that were already reported to the user;
// Execute maps it to exit code 1 without printing again.
var errCommandFailed = errors.New("command failed")

// printEnvelope is the default rendering: raw mode pretty-prints the whole
// envelope, formatted mode prints a success marker plus data, and failures
// go to the error stream with a non-zero exit.
func (a *app) printEnvelope(cmd *cobra.Command, env client.Envelope) error {
	if a.cfg.Raw {
		return printJSON(cmd.OutOrStdout(), env)
	}
	if !env.Success {
		return a.fail(cmd, env)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ Success")
	if env.Data != nil {
		return printJSON(cmd.OutOrStdout(), env.Data)
	}
	return nil
}

// fail reports a failed envelope on the error stream.
func (a *app) fail(cmd *cobra.Command, env client.Envelope) error {
	msg := env.Error
	if msg == "" {
		msg = "Unknown error"
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "✗ Error: %s\n", msg)
	return errCommandFailed
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}

// asString reads a string field from free-form envelope data.
func asString(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

// asInt reads a JSON number (decoded as float64) as an int.
func asInt(v any) int {
	f, _ := v.(float64)
	return int(f)
}

// asFloat reads a JSON number with a fallback for absent fields.
func asFloat(v any, fallback float64) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return fallback
}

// asBool reads a JSON bool, absent fields read false.
func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

// asObjects reads an array of JSON objects, skipping entries of other shapes.
func asObjects(v any) []map[string]any {
	arr, _ := v.([]any)
	out := make([]map[string]any, 0, len(arr))
	for _, it := range arr {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
