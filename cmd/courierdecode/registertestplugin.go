package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziggiz-courier/courier-decode/internal/decoder"
	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
)

// markerPlugin is a trivial demonstration plugin: it recognises a single
// literal marker string anywhere in the message and stamps a constant
// msgclass, solely to exercise the registration primitive (plugin.Register)
// from the CLI at runtime rather than from a package init().
type markerPlugin struct{ marker string }

func (p markerPlugin) Decode(m model.Model, cache *plugin.Cache) bool {
	if !strings.Contains(m.GetMessage(), p.marker) {
		return false
	}
	plugin.ApplyFieldMapping(m, plugin.Identity(p), map[string]any{"marker": p.marker}, "demo_marker", nil)
	return true
}

// registerTestPluginCmd demonstrates C6's registration primitive: it
// registers a throwaway plugin against the base model type at FirstPass,
// then decodes one example line to show the registration took effect.
func registerTestPluginCmd(logger *slog.Logger) *cobra.Command {
	var marker string
	var example string

	cmd := &cobra.Command{
		Use:   "register-test-plugin",
		Short: "Register a demo plugin at runtime and decode one example line",
		RunE: func(cmd *cobra.Command, args []string) error {
			plugin.Register(plugin.SyslogBaseType, plugin.FirstPass, func() plugin.Plugin {
				return markerPlugin{marker: marker}
			})
			logger.Info("registered demo plugin", "marker", marker)

			env := decoder.DecodeUnknown(example)
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(env)
		},
	}
	cmd.Flags().StringVar(&marker, "marker", "DEMO-PLUGIN", "literal substring the demo plugin matches on")
	cmd.Flags().StringVar(&example, "example", "<13>DEMO-PLUGIN example message", "example line to decode after registering")
	return cmd
}
