package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	scaffold "github.com/goliatone/go-scaffold"
	"github.com/goliatone/go-scaffold/internal/discovery"
	"github.com/goliatone/go-scaffold/pkg/logging"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List available plugins",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := scaffold.NewRegistry()
		if err := discovery.Discover(registry, discovery.Options{
			PluginsDir: cfg.PluginsDir,
			Logger:     logging.GetLogger("discovery"),
		}); err != nil {
			return err
		}

		for _, name := range registry.List() {
			p, err := registry.Get(name)
			if err != nil {
				return err
			}
			line := fmt.Sprintf("%s %s", p.Name(), p.Version())
			if desc := p.Description(); desc != "" {
				line += "  " + desc
			}
			if deps := p.Dependencies(); len(deps) > 0 {
				line += fmt.Sprintf("  (requires %s)", strings.Join(deps, ", "))
			}
			fmt.Println(line)
		}
		return nil
	},
}
