package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	scaffold "github.com/goliatone/go-scaffold"
	"github.com/goliatone/go-scaffold/internal/discovery"
	"github.com/goliatone/go-scaffold/pkg/logging"
	"github.com/goliatone/go-scaffold/pkg/orchestrator"
	"github.com/goliatone/go-scaffold/pkg/plugin"
)

var (
	newTemplate string
	newRef      string
	newOutput   string
	newPackage  string
	newPlugins  []string
	newVars     []string
	newNoInput  bool
)

var newCmd = &cobra.Command{
	Use:   "new [project-name]",
	Short: "Generate a project from a template",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newTemplate, "template", "t", "", "Template name, directory, or git URL")
	newCmd.Flags().StringVar(&newRef, "ref", "", "Git branch or tag to clone (git templates only)")
	newCmd.Flags().StringVarP(&newOutput, "output", "o", "", "Output directory (default: ./<project-name>)")
	newCmd.Flags().StringVar(&newPackage, "package", "", "Base package name, e.g. com.acme.orders")
	newCmd.Flags().StringSliceVarP(&newPlugins, "plugin", "p", nil, "Plugin to apply after generation (repeatable)")
	newCmd.Flags().StringSliceVar(&newVars, "var", nil, "Extra template variable as key=value (repeatable)")
	newCmd.Flags().BoolVar(&newNoInput, "no-input", false, "Fail instead of prompting for missing inputs")
}

func runNew(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cli")

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		if newNoInput {
			return fmt.Errorf("project name is required with --no-input")
		}
		prompt := &survey.Input{Message: "Project name:"}
		if err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	if newTemplate == "" {
		if newNoInput {
			return fmt.Errorf("--template is required with --no-input")
		}
		prompt := &survey.Input{Message: "Template (name, directory, or git URL):"}
		if err := survey.AskOne(prompt, &newTemplate, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	registry := scaffold.NewRegistry()
	if err := discovery.Discover(registry, discovery.Options{
		PluginsDir: cfg.PluginsDir,
		Logger:     logging.GetLogger("discovery"),
	}); err != nil {
		return err
	}

	requested := append(append([]string{}, cfg.DefaultPlugins...), newPlugins...)
	for _, pname := range requested {
		if !registry.Has(pname) {
			logger.Warn().Str("plugin", pname).Msg("requested plugin is not registered and will be skipped")
		}
	}

	if len(requested) == 0 && !newNoInput {
		picked, err := promptPlugins(registry)
		if err != nil {
			return err
		}
		requested = picked
	}

	output := newOutput
	if output == "" {
		output = filepath.Join(".", name)
	}
	if !newNoInput && dirHasEntries(output) {
		overwrite := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Directory %s is not empty. Overwrite matching files?", output),
		}
		if err := survey.AskOne(prompt, &overwrite); err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("aborted")
		}
	}

	vars, err := parseVars(newVars)
	if err != nil {
		return err
	}

	src := resolveSource(newTemplate, newRef, cfg.TemplatesDir)

	rctx := scaffold.Context{
		Name:         name,
		OutputDir:    output,
		PackageName:  newPackage,
		TemplateName: newTemplate,
		Plugins:      requested,
		Vars:         vars,
	}

	err = scaffold.Generate(cmd.Context(), src, rctx,
		orchestrator.WithRegistry(registry),
		orchestrator.WithLogger(logging.GetLogger("orchestrator")),
	)
	if err != nil {
		return err
	}

	fmt.Printf("Project %s generated in %s\n", name, output)
	return nil
}

func promptPlugins(registry *plugin.Registry) ([]string, error) {
	names := registry.List()
	if len(names) == 0 {
		return nil, nil
	}
	prompt := &survey.MultiSelect{
		Message: "Plugins to apply:",
		Options: names,
	}
	var picked []string
	if err := survey.AskOne(prompt, &picked); err != nil {
		return nil, err
	}
	return picked, nil
}

// resolveSource maps the template argument to a Source: git URLs clone,
// existing paths read in place, and bare names are looked up under the
// configured templates directory.
func resolveSource(template, ref, templatesDir string) scaffold.Source {
	if strings.HasPrefix(template, "http://") ||
		strings.HasPrefix(template, "https://") ||
		strings.HasPrefix(template, "git@") {
		return scaffold.SourceFromGit(template, ref)
	}
	if _, err := os.Stat(template); err == nil {
		return scaffold.SourceFromDir(template)
	}
	return scaffold.SourceFromDir(filepath.Join(templatesDir, template))
}

func dirHasEntries(path string) bool {
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) > 0
}

func parseVars(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	vars := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --var %q, expected key=value", pair)
		}
		vars[key] = value
	}
	return vars, nil
}
