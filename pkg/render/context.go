package render

import "strings"

// Context carries the substitution environment for one generation run.
// It is assembled by the CLI/config layer before generation starts and
// must not be mutated once the run begins; plugins receive it read-only.
type Context struct {
	// Name is the project name, e.g. "orders-api".
	Name string

	// OutputDir is the root under which the project tree is materialized.
	OutputDir string

	// PackageName is an optional dotted identifier, e.g. "com.acme.orders".
	PackageName string

	// TemplateName identifies the template being rendered.
	TemplateName string

	// Plugins lists the requested plugin names in user priority order.
	// Duplicates are allowed; the resolver de-duplicates.
	Plugins []string

	// Vars holds user and config supplied values. They are visible to
	// expression spans and override plugin defaults on key collision.
	Vars map[string]any
}

// PackageDir returns the package name with dots converted to forward
// slashes, or "" when no package name is set.
func (c Context) PackageDir() string {
	if c.PackageName == "" {
		return ""
	}
	return strings.ReplaceAll(c.PackageName, ".", "/")
}

// fields returns the lookup map expression spans evaluate against. Core
// context fields win over user vars of the same name.
func (c Context) fields() map[string]any {
	out := make(map[string]any, len(c.Vars)+5)
	for key, value := range c.Vars {
		out[key] = value
	}
	if c.Name != "" {
		out["name"] = c.Name
		out["projectName"] = c.Name
	}
	if c.PackageName != "" {
		out["packageName"] = c.PackageName
		out["packageDir"] = c.PackageDir()
	}
	if c.TemplateName != "" {
		out["template"] = c.TemplateName
	}
	return out
}
